package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// cartStoreInMemory — in-memory корзины по сессиям.
type cartStoreInMemory struct {
	mu sync.RWMutex
	// session -> product -> quantity
	carts map[string]map[int64]int32
}

// NewCartStore возвращает in-memory хранилище корзин.
func NewCartStore() domain.CartStore {
	return &cartStoreInMemory{
		carts: make(map[string]map[int64]int32),
	}
}

// Add увеличивает количество товара; новой позиции — создаёт её.
func (s *cartStoreInMemory) Add(sessionID string, productID int64, qty int32) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}
	if qty <= 0 {
		return domain.ErrItemQtyInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = make(map[int64]int32)
		s.carts[sessionID] = cart
	}
	cart[productID] += qty
	return nil
}

// Items возвращает позиции корзины в стабильном порядке по product_id.
func (s *cartStoreInMemory) Items(sessionID string) ([]domain.CartLine, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := s.carts[sessionID]
	lines := make([]domain.CartLine, 0, len(cart))
	for productID, qty := range cart {
		lines = append(lines, domain.CartLine{ProductID: productID, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines, nil
}

// SetQuantity выставляет количество; значение <= 0 удаляет позицию.
func (s *cartStoreInMemory) SetQuantity(sessionID string, productID int64, qty int32) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		if qty <= 0 {
			return nil
		}
		cart = make(map[int64]int32)
		s.carts[sessionID] = cart
	}
	if qty <= 0 {
		delete(cart, productID)
		return nil
	}
	cart[productID] = qty
	return nil
}

// Remove удаляет позицию из корзины.
func (s *cartStoreInMemory) Remove(sessionID string, productID int64) error {
	return s.SetQuantity(sessionID, productID, 0)
}

// Clear очищает корзину сессии.
func (s *cartStoreInMemory) Clear(sessionID string) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

var _ domain.CartStore = (*cartStoreInMemory)(nil)
