package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type wishlistItemResponse struct {
	domain.Product
	AddedAt time.Time `json:"addedAt"`
}

type wishlistResponse struct {
	SessionID string                 `json:"session_id"`
	Items     []wishlistItemResponse `json:"items"`
	Count     int                    `json:"count"`
}

func (s *Server) buildWishlistResponse(sessionID string) (wishlistResponse, error) {
	entries, err := s.wishlist.Items(sessionID)
	if err != nil {
		return wishlistResponse{}, err
	}

	resp := wishlistResponse{SessionID: sessionID, Items: make([]wishlistItemResponse, 0, len(entries))}
	for _, entry := range entries {
		product, err := s.catalog.GetProduct(entry.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return wishlistResponse{}, err
		}
		resp.Items = append(resp.Items, wishlistItemResponse{Product: product, AddedAt: entry.AddedAt})
	}
	resp.Count = len(resp.Items)

	return resp, nil
}

func (s *Server) handleGetWishlist(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	resp, err := s.buildWishlistResponse(params.ByName("sessionId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type addToWishlistRequest struct {
	ProductID int64 `json:"product_id"`
}

func (s *Server) handleAddToWishlist(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	var req addToWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if _, err := s.catalog.GetProduct(req.ProductID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.wishlist.Add(params.ByName("sessionId"), req.ProductID); err != nil {
		writeDomainError(w, err)
		return
	}

	resp, err := s.buildWishlistResponse(params.ByName("sessionId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRemoveFromWishlist(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	productID, ok := parseProductID(params)
	if !ok {
		writeBadRequest(w, "invalid product id")
		return
	}

	if err := s.wishlist.Remove(params.ByName("sessionId"), productID); err != nil {
		writeDomainError(w, err)
		return
	}

	resp, err := s.buildWishlistResponse(params.ByName("sessionId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
