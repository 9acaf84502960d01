package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository создаёт PostgreSQL-реализацию CatalogStore.
func NewCatalogRepository(store *Store) domain.CatalogStore {
	return &catalogRepository{db: store.DB()}
}

const productColumns = `
	id, title, price_minor, original_price_minor, rating, review_count,
	image, is_prime, category, in_stock, brand, about, specs, offers`

// GetProduct возвращает товар или ErrProductNotFound.
func (r *catalogRepository) GetProduct(id int64) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	product, err := r.scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{ProductID: id}
		}
		return domain.Product{}, err
	}

	return product, nil
}

// ListProducts возвращает товары, опционально фильтруя по слагу категории.
func (r *catalogRepository) ListProducts(category string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY id ASC`

	return r.queryProducts(ctx, query, args...)
}

// SearchProducts ищет по подстроке в названии и категории без учёта регистра.
func (r *catalogRepository) SearchProducts(query, category string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	sqlQuery := `SELECT ` + productColumns + ` FROM products
		WHERE (LOWER(title) LIKE $1 OR LOWER(category) LIKE $1)`
	args := []any{pattern}
	if category != "" {
		sqlQuery += ` AND category = $2`
		args = append(args, category)
	}
	sqlQuery += ` ORDER BY id ASC`

	return r.queryProducts(ctx, sqlQuery, args...)
}

// ListCategories возвращает разделы каталога.
func (r *catalogRepository) ListCategories() ([]domain.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, image, link FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.Link); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

// ListHeroSlides возвращает слайды главной карусели.
func (r *catalogRepository) ListHeroSlides() ([]domain.HeroSlide, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, image, title, link, background_color FROM hero_slides ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list hero slides: %w", err)
	}
	defer rows.Close()

	slides := make([]domain.HeroSlide, 0)
	for rows.Next() {
		var s domain.HeroSlide
		if err := rows.Scan(&s.ID, &s.Image, &s.Title, &s.Link, &s.BackgroundColor); err != nil {
			return nil, fmt.Errorf("scan hero slide: %w", err)
		}
		slides = append(slides, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hero slides: %w", err)
	}

	return slides, nil
}

// ListGridCards возвращает промо-карточки в порядке display_order.
func (r *catalogRepository) ListGridCards() ([]domain.GridCard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, link_text, link_url, display_order, items
		FROM grid_cards
		ORDER BY display_order ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list grid cards: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.GridCard, 0)
	for rows.Next() {
		var c domain.GridCard
		var items []byte
		if err := rows.Scan(&c.ID, &c.Title, &c.LinkText, &c.LinkURL, &c.DisplayOrder, &items); err != nil {
			return nil, fmt.Errorf("scan grid card: %w", err)
		}
		if err := json.Unmarshal(items, &c.Items); err != nil {
			return nil, fmt.Errorf("unmarshal grid card items: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grid cards: %w", err)
	}

	return cards, nil
}

// ListDeals возвращает акции; EndsAt отсчитывается от переданного момента.
func (r *catalogRepository) ListDeals(now time.Time) ([]domain.Deal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, product, ends_in_minutes, claimed FROM deals ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	deals := make([]domain.Deal, 0)
	for rows.Next() {
		var w domain.DealWindow
		var product []byte
		if err := rows.Scan(&w.ID, &w.Title, &product, &w.EndsInMinutes, &w.Claimed); err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		if err := json.Unmarshal(product, &w.Product); err != nil {
			return nil, fmt.Errorf("unmarshal deal product: %w", err)
		}
		deals = append(deals, w.Materialize(now))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deals: %w", err)
	}

	return deals, nil
}

func (r *catalogRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (r *catalogRepository) scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	var price, originalPrice int64
	var about, specs, offers []byte

	err := row.Scan(
		&p.ID, &p.Title, &price, &originalPrice, &p.Rating, &p.ReviewCount,
		&p.Image, &p.IsPrime, &p.Category, &p.InStock, &p.Brand,
		&about, &specs, &offers,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("scan product row: %w", err)
	}

	p.Price = domain.MoneyFromMinor(price)
	p.OriginalPrice = domain.MoneyFromMinor(originalPrice)
	if err := json.Unmarshal(about, &p.About); err != nil {
		return domain.Product{}, fmt.Errorf("unmarshal product about: %w", err)
	}
	if err := json.Unmarshal(specs, &p.Specs); err != nil {
		return domain.Product{}, fmt.Errorf("unmarshal product specs: %w", err)
	}
	if err := json.Unmarshal(offers, &p.Offers); err != nil {
		return domain.Product{}, fmt.Errorf("unmarshal product offers: %w", err)
	}

	return p, nil
}

var _ domain.CatalogStore = (*catalogRepository)(nil)
