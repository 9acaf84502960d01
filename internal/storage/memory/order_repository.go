package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu      sync.RWMutex
	orders  map[string]domain.Order
	numbers map[string]struct{}
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		orders:  make(map[string]domain.Order),
		numbers: make(map[string]struct{}),
	}
}

// Create сохраняет заказ целиком; карта обновляется под одним локом,
// поэтому частично записанный заказ снаружи не наблюдаем.
func (r *orderRepositoryInMemory) Create(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return domain.ErrDuplicateOrderNumber
	}
	if _, exists := r.numbers[order.Number]; exists {
		return domain.ErrDuplicateOrderNumber
	}

	// Сохраняем глубокую копию, чтобы мутации у вызывающей стороны
	// не меняли уже записанную историю.
	r.orders[order.ID] = cloneOrder(order)
	r.numbers[order.Number] = struct{}{}
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

// GetForUser возвращает заказ, только если он принадлежит пользователю.
// Чужой заказ неотличим от отсутствующего.
func (r *orderRepositoryInMemory) GetForUser(userID, id string) (domain.Order, error) {
	order, err := r.Get(id)
	if err != nil {
		return domain.Order{}, err
	}
	if order.UserID != userID {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// ListByUser возвращает заказы пользователя: новые первыми, при равном
// created_at порядок фиксируется по id.
func (r *orderRepositoryInMemory) ListByUser(userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range r.orders {
		if order.UserID != userID {
			continue
		}
		result = append(result, cloneOrder(order))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}

func cloneOrder(order domain.Order) domain.Order {
	clone := order
	clone.Items = append([]domain.OrderItem(nil), order.Items...)
	if order.DeliveredAt != nil {
		deliveredAt := *order.DeliveredAt
		clone.DeliveredAt = &deliveredAt
	}
	return clone
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
