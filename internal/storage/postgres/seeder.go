package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/seed"
)

// SeedCatalog загружает справочные данные каталога одной транзакцией,
// предварительно очищая справочные таблицы. Заказы и отзывы не трогает.
func SeedCatalog(ctx context.Context, store *Store, data seed.Data) error {
	tx, err := store.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"deals", "grid_cards", "hero_slides", "products", "categories"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}

	for _, c := range data.Categories {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, image, link) VALUES ($1,$2,$3,$4)
		`, c.ID, c.Name, c.Image, c.Link); err != nil {
			return fmt.Errorf("insert category %d: %w", c.ID, err)
		}
	}

	for _, p := range data.Products {
		var about, specs, offers []byte
		if about, err = json.Marshal(valueOrEmptyList(p.About)); err != nil {
			return fmt.Errorf("marshal product about: %w", err)
		}
		if specs, err = json.Marshal(valueOrEmptyMap(p.Specs)); err != nil {
			return fmt.Errorf("marshal product specs: %w", err)
		}
		if offers, err = json.Marshal(valueOrEmptyOffers(p.Offers)); err != nil {
			return fmt.Errorf("marshal product offers: %w", err)
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO products (
				id, title, price_minor, original_price_minor, rating, review_count,
				image, is_prime, category, in_stock, brand, about, specs, offers
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		`,
			p.ID, p.Title, p.Price.Minor(), p.OriginalPrice.Minor(), p.Rating, p.ReviewCount,
			p.Image, p.IsPrime, p.Category, p.InStock, p.Brand, about, specs, offers,
		); err != nil {
			return fmt.Errorf("insert product %d: %w", p.ID, err)
		}
	}

	for _, s := range data.HeroSlides {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO hero_slides (id, image, title, link, background_color)
			VALUES ($1,$2,$3,$4,$5)
		`, s.ID, s.Image, s.Title, s.Link, s.BackgroundColor); err != nil {
			return fmt.Errorf("insert hero slide %d: %w", s.ID, err)
		}
	}

	for _, c := range data.GridCards {
		var items []byte
		if items, err = json.Marshal(c.Items); err != nil {
			return fmt.Errorf("marshal grid card items: %w", err)
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO grid_cards (id, title, link_text, link_url, display_order, items)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, c.ID, c.Title, c.LinkText, c.LinkURL, c.DisplayOrder, items); err != nil {
			return fmt.Errorf("insert grid card %d: %w", c.ID, err)
		}
	}

	for _, d := range data.Deals {
		var product []byte
		if product, err = json.Marshal(d.Product); err != nil {
			return fmt.Errorf("marshal deal product: %w", err)
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO deals (id, title, product, ends_in_minutes, claimed)
			VALUES ($1,$2,$3,$4,$5)
		`, d.ID, d.Title, product, d.EndsInMinutes, d.Claimed); err != nil {
			return fmt.Errorf("insert deal %d: %w", d.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func valueOrEmptyList(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func valueOrEmptyMap(v map[string]string) map[string]string {
	if v == nil {
		return map[string]string{}
	}
	return v
}

func valueOrEmptyOffers(v []domain.Offer) []domain.Offer {
	if v == nil {
		return []domain.Offer{}
	}
	return v
}
