package domain

import "time"

// CatalogStore описывает требования к хранилищу каталога.
// Каталог — медленно меняющиеся справочные данные; транзакционность не требуется.
type CatalogStore interface {
	// GetProduct возвращает товар или ErrProductNotFound, если его нет.
	GetProduct(id int64) (Product, error)
	// ListProducts возвращает товары, опционально фильтруя по слагу категории.
	ListProducts(category string) ([]Product, error)
	// SearchProducts ищет по подстроке в названии/категории с фильтром категории.
	SearchProducts(query, category string) ([]Product, error)
	// ListCategories возвращает разделы каталога.
	ListCategories() ([]Category, error)
	// ListHeroSlides возвращает слайды главной карусели.
	ListHeroSlides() ([]HeroSlide, error)
	// ListGridCards возвращает промо-карточки в порядке display_order.
	ListGridCards() ([]GridCard, error)
	// ListDeals возвращает акции; EndsAt вычисляется от переданного момента времени.
	ListDeals(now time.Time) ([]Deal, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет шапку заказа и все позиции одной атомарной записью.
	// Возвращает ErrDuplicateOrderNumber при конфликте номера заказа.
	Create(order Order) error
	// Get возвращает заказ с позициями в порядке добавления или ErrOrderNotFound.
	Get(id string) (Order, error)
	// GetForUser возвращает заказ, только если он принадлежит пользователю.
	GetForUser(userID, id string) (Order, error)
	// ListByUser возвращает заказы пользователя: новые первыми,
	// при равном created_at порядок фиксируется по id.
	ListByUser(userID string) ([]Order, error)
}

// CartStore хранит корзины, привязанные к сессии.
type CartStore interface {
	// Add добавляет товар в корзину; повторное добавление увеличивает количество.
	Add(sessionID string, productID int64, qty int32) error
	// Items возвращает позиции корзины сессии.
	Items(sessionID string) ([]CartLine, error)
	// SetQuantity выставляет количество; значение <= 0 удаляет позицию.
	SetQuantity(sessionID string, productID int64, qty int32) error
	// Remove удаляет позицию из корзины.
	Remove(sessionID string, productID int64) error
	// Clear очищает корзину сессии.
	Clear(sessionID string) error
}

// WishlistStore хранит списки желаний, привязанные к сессии.
type WishlistStore interface {
	// Add добавляет товар в список; повторное добавление — no-op.
	Add(sessionID string, productID int64) error
	// Items возвращает записи списка желаний сессии.
	Items(sessionID string) ([]WishlistEntry, error)
	// Remove удаляет товар из списка.
	Remove(sessionID string, productID int64) error
}

// ReviewRepository хранит отзывы о товарах.
type ReviewRepository interface {
	// Create сохраняет новый отзыв.
	Create(review Review) error
	// ListByProduct возвращает отзывы товара, новые первыми.
	ListByProduct(productID int64) ([]Review, error)
	// AddHelpful изменяет счётчик полезности отзыва на delta.
	AddHelpful(reviewID string, delta int) error
}
