package domain

import "time"

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан и ожидает обработки.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing — заказ собирается на складе.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered — заказ доставлен покупателю.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled — заказ отменён до отгрузки.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Terminal сообщает, является ли статус конечным.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo проверяет допустимость перехода между статусами.
// Линейная цепочка pending → processing → shipped → delivered;
// отмена возможна только из pending и processing.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// LineRequest — входная позиция оформления заказа: товар и количество.
type LineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

// ProductSnapshot — неизменяемая копия отображаемых полей товара,
// зафиксированная в момент создания заказа. История заказов читается
// только из снимка и не зависит от последующих правок каталога.
type ProductSnapshot struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Brand string `json:"brand"`
	Price Money  `json:"price"`
}

// ShippingAddress — встроенный снимок адреса доставки.
// Хранится вместе с заказом, а не ссылкой, чтобы правка адреса
// не меняла задним числом уже оформленные заказы.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Phone    string `json:"phone"`
}

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Snapshot  ProductSnapshot `json:"product_snapshot"`
	Quantity  int32           `json:"quantity"`
	// UnitPrice копируется из каталога в момент оформления.
	UnitPrice Money `json:"unit_price"`
	// TotalPrice = UnitPrice × Quantity.
	TotalPrice Money `json:"total_price"`
}

// Order агрегирует шапку заказа и его позиции.
type Order struct {
	ID              string          `json:"id"`
	Number          string          `json:"order_number"`
	UserID          string          `json:"user_id"`
	Status          OrderStatus     `json:"status"`
	Subtotal        Money           `json:"subtotal"`
	Tax             Money           `json:"tax"`
	ShippingFee     Money           `json:"shipping_fee"`
	Discount        Money           `json:"discount"`
	Total           Money           `json:"total"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	Items           []OrderItem     `json:"items"`
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.UserID == "" {
		errs = append(errs, ErrUserRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrEmptyOrder)
	}

	var itemsSum Money
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.UnitPrice < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
		if item.TotalPrice != item.UnitPrice.MulQty(item.Quantity) {
			errs = append(errs, ErrLineTotalMismatch)
		}
		itemsSum += item.TotalPrice
	}
	if itemsSum != o.Subtotal {
		errs = append(errs, ErrAmountMismatch)
	}
	if o.Total != o.Subtotal+o.Tax+o.ShippingFee-o.Discount {
		errs = append(errs, ErrAmountMismatch)
	}

	return errs
}
