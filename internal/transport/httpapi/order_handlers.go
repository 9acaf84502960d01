package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/checkout"
)

// Суммы заказа считаются исключительно из каталога и конфигурации,
// поэтому тело запроса не содержит денежных полей: лишние поля
// (например discount) декодер молча отбрасывает.
type placeOrderRequest struct {
	UserID          string                 `json:"user_id"`
	Prime           bool                   `json:"prime"`
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	Items           []domain.LineRequest   `json:"items"`
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	order, err := s.checkout.PlaceOrder(checkout.Request{
		UserID:          req.UserID,
		Prime:           req.Prime,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) handleListOrders(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	orders, err := s.checkout.ListOrders(params.ByName("userId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	order, err := s.checkout.GetOrder(params.ByName("userId"), params.ByName("orderId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
