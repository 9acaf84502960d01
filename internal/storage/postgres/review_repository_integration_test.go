package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestReviewRepository_PostgresCreateListHelpful(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewReviewRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	first := domain.Review{
		ID:               "review-1",
		ProductID:        3,
		Rating:           5,
		Title:            "Отличный звук",
		Content:          "Шумоподавление работает как надо.",
		UserName:         "Priya",
		UserID:           "user-1",
		CreatedAt:        now.Add(-time.Hour),
		VerifiedPurchase: true,
	}
	second := domain.Review{
		ID:        "review-2",
		ProductID: 3,
		Rating:    3,
		Title:     "Нормально",
		UserName:  "Rahul",
		UserID:    "user-2",
		CreatedAt: now,
	}

	if err := repo.Create(first); err != nil {
		t.Fatalf("create first review: %v", err)
	}
	if err := repo.Create(second); err != nil {
		t.Fatalf("create second review: %v", err)
	}

	reviews, err := repo.ListByProduct(3)
	if err != nil {
		t.Fatalf("list reviews: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].ID != "review-2" || reviews[1].ID != "review-1" {
		t.Fatalf("expected newest first, got: %s, %s", reviews[0].ID, reviews[1].ID)
	}
	if !reviews[1].VerifiedPurchase {
		t.Fatalf("verified purchase flag lost: %+v", reviews[1])
	}

	if err := repo.AddHelpful("review-1", 1); err != nil {
		t.Fatalf("add helpful: %v", err)
	}
	if err := repo.AddHelpful("review-1", 1); err != nil {
		t.Fatalf("add helpful again: %v", err)
	}

	reviews, err = repo.ListByProduct(3)
	if err != nil {
		t.Fatalf("list reviews after helpful: %v", err)
	}
	if reviews[1].HelpfulCount != 2 {
		t.Fatalf("expected helpful count 2, got %d", reviews[1].HelpfulCount)
	}

	// Счётчик не уходит в минус.
	if err := repo.AddHelpful("review-2", -5); err != nil {
		t.Fatalf("decrement helpful: %v", err)
	}
	reviews, err = repo.ListByProduct(3)
	if err != nil {
		t.Fatalf("list reviews after decrement: %v", err)
	}
	if reviews[0].HelpfulCount != 0 {
		t.Fatalf("expected helpful count 0, got %d", reviews[0].HelpfulCount)
	}

	if err := repo.AddHelpful("missing-review", 1); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got: %v", err)
	}
}
