package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// cartItemResponse — позиция корзины вместе с карточкой товара.
type cartItemResponse struct {
	domain.Product
	Quantity  int32        `json:"quantity"`
	LineTotal domain.Money `json:"lineTotal"`
}

type cartResponse struct {
	SessionID string             `json:"session_id"`
	Items     []cartItemResponse `json:"items"`
	Subtotal  domain.Money       `json:"subtotal"`
	Count     int32              `json:"count"`
}

// Товары, удалённые из каталога после добавления в корзину, выпадают из
// выдачи: корзина хранит только идентификаторы, а не снимки.
func (s *Server) buildCartResponse(sessionID string) (cartResponse, error) {
	lines, err := s.cart.Items(sessionID)
	if err != nil {
		return cartResponse{}, err
	}

	resp := cartResponse{SessionID: sessionID, Items: make([]cartItemResponse, 0, len(lines))}
	for _, line := range lines {
		product, err := s.catalog.GetProduct(line.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return cartResponse{}, err
		}
		lineTotal := product.Price.MulQty(line.Quantity)
		resp.Items = append(resp.Items, cartItemResponse{
			Product:   product,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		resp.Subtotal += lineTotal
		resp.Count += line.Quantity
	}

	return resp, nil
}

func (s *Server) handleGetCart(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	resp, err := s.buildCartResponse(params.ByName("sessionId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	// Добавить можно только существующий товар.
	if _, err := s.catalog.GetProduct(req.ProductID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.cart.Add(params.ByName("sessionId"), req.ProductID, req.Quantity); err != nil {
		writeDomainError(w, err)
		return
	}

	resp, err := s.buildCartResponse(params.ByName("sessionId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

type setQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

func (s *Server) handleSetCartQuantity(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	productID, ok := parseProductID(params)
	if !ok {
		writeBadRequest(w, "invalid product id")
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if err := s.cart.SetQuantity(params.ByName("sessionId"), productID, req.Quantity); err != nil {
		writeDomainError(w, err)
		return
	}

	resp, err := s.buildCartResponse(params.ByName("sessionId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	productID, ok := parseProductID(params)
	if !ok {
		writeBadRequest(w, "invalid product id")
		return
	}

	if err := s.cart.Remove(params.ByName("sessionId"), productID); err != nil {
		writeDomainError(w, err)
		return
	}

	resp, err := s.buildCartResponse(params.ByName("sessionId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearCart(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	if err := s.cart.Clear(params.ByName("sessionId")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{
		SessionID: params.ByName("sessionId"),
		Items:     []cartItemResponse{},
	})
}
