package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const wishlistTTL = 90 * 24 * time.Hour

type wishlistStore struct {
	client *Client
	now    func() time.Time
}

// NewWishlistStore создаёт Redis-реализацию WishlistStore.
// Список хранится хешем wishlist:{session} product_id → момент добавления.
func NewWishlistStore(client *Client) domain.WishlistStore {
	return &wishlistStore{client: client, now: time.Now}
}

func wishlistKey(sessionID string) string {
	return "wishlist:" + sessionID
}

// Add добавляет товар в список; повторное добавление не меняет момент добавления.
func (s *wishlistStore) Add(sessionID string, productID int64) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	key := wishlistKey(sessionID)
	addedAt := s.now().UTC().Format(time.RFC3339Nano)
	pipe := s.client.rdb.TxPipeline()
	pipe.HSetNX(ctx, key, strconv.FormatInt(productID, 10), addedAt)
	pipe.Expire(ctx, key, wishlistTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}

	return nil
}

// Items возвращает записи списка, старые первыми.
func (s *wishlistStore) Items(sessionID string) ([]domain.WishlistEntry, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionRequired
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := s.client.rdb.HGetAll(ctx, wishlistKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read wishlist: %w", err)
	}

	entries := make([]domain.WishlistEntry, 0, len(raw))
	for field, value := range raw {
		productID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse wishlist product id %q: %w", field, err)
		}
		addedAt, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return nil, fmt.Errorf("parse wishlist timestamp %q: %w", value, err)
		}
		entries = append(entries, domain.WishlistEntry{ProductID: productID, AddedAt: addedAt})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AddedAt.Equal(entries[j].AddedAt) {
			return entries[i].ProductID < entries[j].ProductID
		}
		return entries[i].AddedAt.Before(entries[j].AddedAt)
	})

	return entries, nil
}

// Remove удаляет товар из списка.
func (s *wishlistStore) Remove(sessionID string, productID int64) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.client.rdb.HDel(ctx, wishlistKey(sessionID), strconv.FormatInt(productID, 10)).Err(); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}

	return nil
}

var _ domain.WishlistStore = (*wishlistStore)(nil)
