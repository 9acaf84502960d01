// Пакет checkout оформляет заказы: фиксирует снимки товаров,
// считает суммы и атомарно сохраняет заказ.
package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// Повторные попытки при коллизии случайного номера заказа.
const maxNumberAttempts = 3

// EventPublisher публикует события заказов во внешнюю шину.
type EventPublisher interface {
	PublishEvent(topic string, key string, event interface{}) error
}

// Config — расчётные параметры оформления.
type Config struct {
	// TaxRate — ставка налога от промежуточной суммы, например 0.18.
	TaxRate float64
	// FlatShippingFee — фиксированная стоимость доставки для заказов без waiver.
	FlatShippingFee domain.Money
}

// Request — вход оформления заказа. Discount заполняется только
// внутренними вызывающими (промо-механики); HTTP-слой его не принимает,
// чтобы клиент не мог влиять на сумму заказа.
type Request struct {
	UserID          string
	Prime           bool
	Discount        domain.Money
	ShippingAddress domain.ShippingAddress
	Items           []domain.LineRequest
}

// Service оформляет заказы поверх каталога и хранилища заказов.
type Service struct {
	catalog domain.CatalogStore
	orders  domain.OrderRepository
	events  EventPublisher // опциональная шина событий
	cfg     Config
	logger  *log.Entry
	metrics *metrics.StorefrontMetrics

	// Переопределяются в тестах.
	now       func() time.Time
	newID     func() string
	newNumber func() string
}

// NewService создаёт рабочий экземпляр сервиса оформления.
func NewService(catalog domain.CatalogStore, orders domain.OrderRepository, cfg Config, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &Service{
		catalog:   catalog,
		orders:    orders,
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics.NewStorefrontMetrics(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		newNumber: NewOrderNumber,
	}
}

// NewServiceWithEvents создаёт сервис, публикующий события заказов в Kafka.
func NewServiceWithEvents(catalog domain.CatalogStore, orders domain.OrderRepository, events EventPublisher, cfg Config, logger *log.Entry) *Service {
	svc := NewService(catalog, orders, cfg, logger)
	svc.events = events
	return svc
}

// BuildOrder собирает заказ без сохранения: валидирует вход, фиксирует
// снимки товаров и считает суммы. Цены берутся из каталога, а не из запроса.
func (s *Service) BuildOrder(req Request) (domain.Order, error) {
	if req.UserID == "" {
		return domain.Order{}, domain.ErrUserRequired
	}
	if len(req.Items) == 0 {
		return domain.Order{}, domain.ErrEmptyOrder
	}
	if req.Discount < 0 {
		return domain.Order{}, domain.ErrDiscountInvalid
	}

	orderID := s.newID()
	items := make([]domain.OrderItem, 0, len(req.Items))
	lines := make([]domain.PriceLine, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return domain.Order{}, domain.ErrItemQtyInvalid
		}
		product, err := s.catalog.GetProduct(line.ProductID)
		if err != nil {
			return domain.Order{}, err
		}
		items = append(items, domain.OrderItem{
			ID:        s.newID(),
			OrderID:   orderID,
			ProductID: product.ID,
			Snapshot: domain.ProductSnapshot{
				ID:    product.ID,
				Title: product.Title,
				Image: product.Image,
				Brand: product.Brand,
				Price: product.Price,
			},
			Quantity:   line.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: product.Price.MulQty(line.Quantity),
		})
		lines = append(lines, domain.PriceLine{UnitPrice: product.Price, Quantity: line.Quantity})
	}

	totals, err := domain.ComputeTotals(lines, s.cfg.TaxRate, req.Prime, s.cfg.FlatShippingFee, req.Discount)
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		ID:              orderID,
		Number:          s.newNumber(),
		UserID:          req.UserID,
		Status:          domain.OrderStatusPending,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		ShippingFee:     totals.ShippingFee,
		Discount:        req.Discount,
		Total:           totals.Total,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       s.now(),
		Items:           items,
	}, nil
}

// PlaceOrder собирает и сохраняет заказ. При коллизии случайного номера
// генерирует новый номер и повторяет сохранение. Репозиторий при этом
// ничего не повторяет сам: номер создаётся только здесь, поэтому повтор
// не может замаскировать дубль клиентской отправки — у неё будет свой
// заказ со своим номером.
func (s *Service) PlaceOrder(req Request) (domain.Order, error) {
	started := s.now()

	order, err := s.BuildOrder(req)
	if err != nil {
		s.metrics.RecordOrderRejected(rejectionReason(err))
		return domain.Order{}, err
	}

	for attempt := 1; ; attempt++ {
		err = s.orders.Create(order)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateOrderNumber) || attempt >= maxNumberAttempts {
			s.metrics.RecordOrderRejected(rejectionReason(err))
			s.logger.WithError(err).WithField("order_id", order.ID).Error("failed to persist order")
			return domain.Order{}, err
		}
		s.logger.WithFields(log.Fields{
			"order_id":     order.ID,
			"order_number": order.Number,
			"attempt":      attempt,
		}).Warn("order number collision, regenerating")
		order.Number = s.newNumber()
	}

	s.metrics.RecordOrderCreated()
	s.metrics.RecordCheckoutDuration(s.now().Sub(started))
	s.logger.WithFields(log.Fields{
		"order_id":     order.ID,
		"order_number": order.Number,
		"user_id":      order.UserID,
		"total_minor":  order.Total.Minor(),
	}).Info("order placed")

	s.publishOrderCreated(order)

	return order, nil
}

// GetOrder возвращает заказ пользователя по идентификатору.
func (s *Service) GetOrder(userID, orderID string) (domain.Order, error) {
	if userID == "" {
		return domain.Order{}, domain.ErrUserRequired
	}
	return s.orders.GetForUser(userID, orderID)
}

// ListOrders возвращает заказы пользователя, новые первыми.
func (s *Service) ListOrders(userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, domain.ErrUserRequired
	}
	return s.orders.ListByUser(userID)
}

// Публикация событий не влияет на результат оформления:
// заказ уже сохранён, ошибка шины только логируется.
func (s *Service) publishOrderCreated(order domain.Order) {
	if s.events == nil {
		return
	}
	event := kafka.NewOrderEvent(
		kafka.EventTypeOrderCreated,
		order.ID,
		order.Number,
		order.UserID,
		string(order.Status),
		order.Total.Minor(),
	)
	if err := s.events.PublishEvent(kafka.TopicOrderEvents, order.ID, event); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("failed to publish order event")
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyOrder):
		return "empty_order"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domain.ErrDuplicateOrderNumber):
		return "duplicate_order_number"
	case domain.IsInvalidInput(err):
		return "invalid_input"
	default:
		return "persistence_failure"
	}
}
