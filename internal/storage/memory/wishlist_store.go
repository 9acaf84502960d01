package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// wishlistStoreInMemory — in-memory списки желаний по сессиям.
type wishlistStoreInMemory struct {
	mu sync.RWMutex
	// session -> product -> момент добавления
	lists map[string]map[int64]time.Time
	now   func() time.Time
}

// NewWishlistStore возвращает in-memory хранилище списков желаний.
func NewWishlistStore() domain.WishlistStore {
	return &wishlistStoreInMemory{
		lists: make(map[string]map[int64]time.Time),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Add добавляет товар; повторное добавление не меняет момент добавления.
func (s *wishlistStoreInMemory) Add(sessionID string, productID int64) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[sessionID]
	if !ok {
		list = make(map[int64]time.Time)
		s.lists[sessionID] = list
	}
	if _, exists := list[productID]; !exists {
		list[productID] = s.now()
	}
	return nil
}

// Items возвращает записи в порядке добавления (старые первыми).
func (s *wishlistStoreInMemory) Items(sessionID string) ([]domain.WishlistEntry, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[sessionID]
	entries := make([]domain.WishlistEntry, 0, len(list))
	for productID, addedAt := range list {
		entries = append(entries, domain.WishlistEntry{ProductID: productID, AddedAt: addedAt})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].AddedAt.Equal(entries[j].AddedAt) {
			return entries[i].AddedAt.Before(entries[j].AddedAt)
		}
		return entries[i].ProductID < entries[j].ProductID
	})
	return entries, nil
}

// Remove удаляет товар из списка.
func (s *wishlistStoreInMemory) Remove(sessionID string, productID int64) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if list, ok := s.lists[sessionID]; ok {
		delete(list, productID)
	}
	return nil
}

var _ domain.WishlistStore = (*wishlistStoreInMemory)(nil)
