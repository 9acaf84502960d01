package domain

import "time"

// CartLine — позиция корзины: товар и количество в рамках сессии.
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

// WishlistEntry — товар в списке желаний с моментом добавления.
type WishlistEntry struct {
	ProductID int64     `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}
