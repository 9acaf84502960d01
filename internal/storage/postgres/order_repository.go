package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const (
	opTimeout = 5 * time.Second
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

// Create пишет шапку и позиции в одной транзакции: читатель никогда
// не увидит заказ без позиций или позиции без шапки.
func (r *orderRepository) Create(order domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("marshal shipping address: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, order_number, user_id, status,
			subtotal_minor, tax_minor, shipping_fee_minor, discount_minor, total_minor,
			shipping_address, created_at, delivered_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		order.ID, order.Number, order.UserID, string(order.Status),
		order.Subtotal.Minor(), order.Tax.Minor(), order.ShippingFee.Minor(),
		order.Discount.Minor(), order.Total.Minor(),
		address, order.CreatedAt, order.DeliveredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateOrderNumber
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for position, item := range order.Items {
		var snapshot []byte
		snapshot, err = json.Marshal(item.Snapshot)
		if err != nil {
			return fmt.Errorf("marshal product snapshot: %w", err)
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				id, order_id, product_id, product_snapshot,
				quantity, unit_price_minor, total_price_minor, position
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`,
			item.ID, order.ID, item.ProductID, snapshot,
			item.Quantity, item.UnitPrice.Minor(), item.TotalPrice.Minor(), position,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create order: %w", err)
	}

	return nil
}

// Get возвращает заказ с позициями или ErrOrderNotFound.
func (r *orderRepository) Get(id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	order, err := r.scanOrder(r.db.QueryRowContext(ctx, `
		SELECT id, order_number, user_id, status,
		       subtotal_minor, tax_minor, shipping_fee_minor, discount_minor, total_minor,
		       shipping_address, created_at, delivered_at
		FROM orders
		WHERE id = $1
	`, id))
	if err != nil {
		return domain.Order{}, err
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items

	return order, nil
}

// GetForUser возвращает заказ, только если он принадлежит пользователю.
// Чужой заказ неотличим от отсутствующего.
func (r *orderRepository) GetForUser(userID, id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	order, err := r.scanOrder(r.db.QueryRowContext(ctx, `
		SELECT id, order_number, user_id, status,
		       subtotal_minor, tax_minor, shipping_fee_minor, discount_minor, total_minor,
		       shipping_address, created_at, delivered_at
		FROM orders
		WHERE id = $1
		  AND user_id = $2
	`, id, userID))
	if err != nil {
		return domain.Order{}, err
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items

	return order, nil
}

// ListByUser возвращает заказы пользователя: новые первыми,
// при равном created_at порядок фиксируется по id.
func (r *orderRepository) ListByUser(userID string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_number, user_id, status,
		       subtotal_minor, tax_minor, shipping_fee_minor, discount_minor, total_minor,
		       shipping_address, created_at, delivered_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *orderRepository) scanOrder(row rowScanner) (domain.Order, error) {
	var order domain.Order
	var status string
	var subtotal, tax, shippingFee, discount, total int64
	var address []byte
	var deliveredAt sql.NullTime

	err := row.Scan(
		&order.ID, &order.Number, &order.UserID, &status,
		&subtotal, &tax, &shippingFee, &discount, &total,
		&address, &order.CreatedAt, &deliveredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("scan order row: %w", err)
	}

	order.Status = domain.OrderStatus(status)
	order.Subtotal = domain.MoneyFromMinor(subtotal)
	order.Tax = domain.MoneyFromMinor(tax)
	order.ShippingFee = domain.MoneyFromMinor(shippingFee)
	order.Discount = domain.MoneyFromMinor(discount)
	order.Total = domain.MoneyFromMinor(total)

	if err := json.Unmarshal(address, &order.ShippingAddress); err != nil {
		return domain.Order{}, fmt.Errorf("unmarshal shipping address: %w", err)
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		order.DeliveredAt = &t
	}

	return order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_snapshot,
		       quantity, unit_price_minor, total_price_minor
		FROM order_items
		WHERE order_id = $1
		ORDER BY position ASC, id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var (
			item                 domain.OrderItem
			snapshot             []byte
			unitPrice, lineTotal int64
		)
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &snapshot,
			&item.Quantity, &unitPrice, &lineTotal,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if err := json.Unmarshal(snapshot, &item.Snapshot); err != nil {
			return nil, fmt.Errorf("unmarshal product snapshot: %w", err)
		}
		item.UnitPrice = domain.MoneyFromMinor(unitPrice)
		item.TotalPrice = domain.MoneyFromMinor(lineTotal)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

var _ domain.OrderRepository = (*orderRepository)(nil)
