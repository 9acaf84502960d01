package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func (s *Server) handleListReviews(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	productID, ok := parseProductID(params)
	if !ok {
		writeBadRequest(w, "invalid product id")
		return
	}

	if _, err := s.catalog.GetProduct(productID); err != nil {
		writeDomainError(w, err)
		return
	}

	reviews, err := s.reviews.ListByProduct(productID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

type createReviewRequest struct {
	Rating           int    `json:"rating"`
	Title            string `json:"title"`
	Content          string `json:"content"`
	UserName         string `json:"user_name"`
	UserID           string `json:"user_id"`
	VerifiedPurchase bool   `json:"verified_purchase"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	productID, ok := parseProductID(params)
	if !ok {
		writeBadRequest(w, "invalid product id")
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if _, err := s.catalog.GetProduct(productID); err != nil {
		writeDomainError(w, err)
		return
	}

	review := domain.Review{
		ID:               s.newID(),
		ProductID:        productID,
		Rating:           req.Rating,
		Title:            req.Title,
		Content:          req.Content,
		UserName:         req.UserName,
		UserID:           req.UserID,
		CreatedAt:        s.now(),
		VerifiedPurchase: req.VerifiedPurchase,
	}
	if err := review.Validate(); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.reviews.Create(review); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

type markHelpfulRequest struct {
	Helpful *bool `json:"helpful"`
}

// handleMarkReviewHelpful голосует за полезность отзыва: {"helpful": true}
// или пустое тело прибавляют 1, {"helpful": false} отнимает 1.
func (s *Server) handleMarkReviewHelpful(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	reviewID := params.ByName("reviewId")
	if reviewID == "" {
		writeBadRequest(w, "invalid review id")
		return
	}

	var req markHelpfulRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, "invalid request body")
		return
	}

	delta := 1
	if req.Helpful != nil && !*req.Helpful {
		delta = -1
	}

	if err := s.reviews.AddHelpful(reviewID, delta); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
