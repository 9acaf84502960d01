package domain

import "time"

// Review — отзыв покупателя о товаре.
type Review struct {
	ID               string    `json:"id"`
	ProductID        int64     `json:"product_id"`
	Rating           int       `json:"rating"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	UserName         string    `json:"user_name"`
	UserID           string    `json:"user_id"`
	CreatedAt        time.Time `json:"created_at"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	HelpfulCount     int       `json:"helpful_count"`
}

// Validate проверяет обязательные поля отзыва.
func (r *Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return ErrRatingInvalid
	}
	if r.UserID == "" {
		return ErrUserRequired
	}
	return nil
}
