package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Сессионная корзина живёт месяц с момента последнего изменения.
const cartTTL = 30 * 24 * time.Hour

type cartStore struct {
	client *Client
}

// NewCartStore создаёт Redis-реализацию CartStore.
// Корзина сессии хранится хешем cart:{session} product_id → quantity.
func NewCartStore(client *Client) domain.CartStore {
	return &cartStore{client: client}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Add увеличивает количество товара в корзине.
func (s *cartStore) Add(sessionID string, productID int64, qty int32) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}
	if qty <= 0 {
		return domain.ErrItemQtyInvalid
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	key := cartKey(sessionID)
	pipe := s.client.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, strconv.FormatInt(productID, 10), int64(qty))
	pipe.Expire(ctx, key, cartTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	return nil
}

// Items возвращает позиции корзины, отсортированные по id товара.
func (s *cartStore) Items(sessionID string) ([]domain.CartLine, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionRequired
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := s.client.rdb.HGetAll(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	lines := make([]domain.CartLine, 0, len(raw))
	for field, value := range raw {
		productID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse cart product id %q: %w", field, err)
		}
		qty, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse cart quantity %q: %w", value, err)
		}
		if qty <= 0 {
			continue
		}
		lines = append(lines, domain.CartLine{ProductID: productID, Quantity: int32(qty)})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

	return lines, nil
}

// SetQuantity выставляет количество; значение <= 0 удаляет позицию.
func (s *cartStore) SetQuantity(sessionID string, productID int64, qty int32) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}
	if qty <= 0 {
		return s.Remove(sessionID, productID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	key := cartKey(sessionID)
	pipe := s.client.rdb.TxPipeline()
	pipe.HSet(ctx, key, strconv.FormatInt(productID, 10), int64(qty))
	pipe.Expire(ctx, key, cartTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set cart quantity: %w", err)
	}

	return nil
}

// Remove удаляет позицию из корзины.
func (s *cartStore) Remove(sessionID string, productID int64) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.client.rdb.HDel(ctx, cartKey(sessionID), strconv.FormatInt(productID, 10)).Err(); err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}

	return nil
}

// Clear очищает корзину сессии.
func (s *cartStore) Clear(sessionID string) error {
	if sessionID == "" {
		return domain.ErrSessionRequired
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.client.rdb.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}

var _ domain.CartStore = (*cartStore)(nil)
