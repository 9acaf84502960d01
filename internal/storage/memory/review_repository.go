package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// reviewRepositoryInMemory — in-memory реализация ReviewRepository.
type reviewRepositoryInMemory struct {
	mu      sync.RWMutex
	reviews map[string]domain.Review
}

// NewReviewRepository возвращает in-memory репозиторий отзывов.
func NewReviewRepository() domain.ReviewRepository {
	return &reviewRepositoryInMemory{
		reviews: make(map[string]domain.Review),
	}
}

// Create сохраняет новый отзыв.
func (r *reviewRepositoryInMemory) Create(review domain.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews[review.ID] = review
	return nil
}

// ListByProduct возвращает отзывы товара: новые первыми, стабильный порядок по id.
func (r *reviewRepositoryInMemory) ListByProduct(productID int64) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Review, 0)
	for _, review := range r.reviews {
		if review.ProductID != productID {
			continue
		}
		result = append(result, review)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}

// AddHelpful изменяет счётчик полезности на delta.
func (r *reviewRepositoryInMemory) AddHelpful(reviewID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review, ok := r.reviews[reviewID]
	if !ok {
		return domain.ErrReviewNotFound
	}
	review.HelpfulCount += delta
	r.reviews[reviewID] = review
	return nil
}

var _ domain.ReviewRepository = (*reviewRepositoryInMemory)(nil)
