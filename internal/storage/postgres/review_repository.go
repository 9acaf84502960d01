package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository создаёт PostgreSQL-реализацию ReviewRepository.
func NewReviewRepository(store *Store) domain.ReviewRepository {
	return &reviewRepository{db: store.DB()}
}

// Create сохраняет новый отзыв.
func (r *reviewRepository) Create(review domain.Review) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (
			id, product_id, rating, title, content,
			user_name, user_id, created_at, verified_purchase, helpful_count
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		review.ID, review.ProductID, review.Rating, review.Title, review.Content,
		review.UserName, review.UserID, review.CreatedAt, review.VerifiedPurchase,
		review.HelpfulCount,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// ListByProduct возвращает отзывы товара, новые первыми.
func (r *reviewRepository) ListByProduct(productID int64) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, rating, title, content,
		       user_name, user_id, created_at, verified_purchase, helpful_count
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID, &review.ProductID, &review.Rating, &review.Title, &review.Content,
			&review.UserName, &review.UserID, &review.CreatedAt, &review.VerifiedPurchase,
			&review.HelpfulCount,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}

// AddHelpful изменяет счётчик полезности отзыва на delta.
func (r *reviewRepository) AddHelpful(reviewID string, delta int) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `
		UPDATE reviews
		SET helpful_count = GREATEST(helpful_count + $2, 0)
		WHERE id = $1
	`, reviewID, delta)
	if err != nil {
		return fmt.Errorf("update review helpful count: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrReviewNotFound
	}

	return nil
}

var _ domain.ReviewRepository = (*reviewRepository)(nil)
