package domain

import (
	"errors"
	"fmt"
)

var (
	// Ошибка отсутствующего идентификатора пользователя/сессии.
	ErrUserRequired = errors.New("user_id is required")
	// Ошибка отсутствующего идентификатора сессии корзины.
	ErrSessionRequired = errors.New("session_id is required")
	// Ошибка заказа без единой позиции.
	ErrEmptyOrder = errors.New("order must contain at least one item")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrItemQtyInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка, если цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка, если скидка отрицательная.
	ErrDiscountInvalid = errors.New("discount must be non-negative")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrAmountMismatch = errors.New("order subtotal does not match items sum")
	// Ошибка несоответствия суммы позиции произведению цены и количества.
	ErrLineTotalMismatch = errors.New("item total does not match unit price and quantity")
	// Ошибка разбора денежной суммы.
	ErrMoneyInvalid = errors.New("invalid money value")
	// ErrProductNotFound возвращается, если товар отсутствует в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber сигнализирует о нарушении уникальности номера заказа.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
	// ErrReviewNotFound возвращается, если отзыв не найден.
	ErrReviewNotFound = errors.New("review not found")
	// Ошибка оценки отзыва вне диапазона 1..5.
	ErrRatingInvalid = errors.New("review rating must be between 1 and 5")
)

// ProductNotFoundError уточняет, какой именно товар не найден при сборке заказа.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrProductNotFound).
func (e *ProductNotFoundError) Unwrap() error {
	return ErrProductNotFound
}

// IsInvalidInput проверяет, относится ли ошибка к классу ошибок валидации входа.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrItemQtyInvalid) ||
		errors.Is(err, ErrItemPriceInvalid) ||
		errors.Is(err, ErrDiscountInvalid) ||
		errors.Is(err, ErrMoneyInvalid) ||
		errors.Is(err, ErrRatingInvalid) ||
		errors.Is(err, ErrUserRequired) ||
		errors.Is(err, ErrSessionRequired)
}
