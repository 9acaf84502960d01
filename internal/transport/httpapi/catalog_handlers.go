package httpapi

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	category := domain.NormalizeCategorySlug(r.URL.Query().Get("category"))

	products, err := s.catalog.ListProducts(category)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	id, ok := parseProductID(params)
	if !ok {
		writeBadRequest(w, "invalid product id")
		return
	}

	product, err := s.catalog.GetProduct(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeBadRequest(w, "query parameter q is required")
		return
	}
	category := domain.NormalizeCategorySlug(r.URL.Query().Get("category"))

	products, err := s.catalog.SearchProducts(query, category)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Query:    query,
		Category: category,
		Results:  products,
		Count:    len(products),
	})
}

type searchResponse struct {
	Query    string           `json:"query"`
	Category string           `json:"category,omitempty"`
	Results  []domain.Product `json:"results"`
	Count    int              `json:"count"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	categories, err := s.catalog.ListCategories()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleListHeroSlides(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	slides, err := s.catalog.ListHeroSlides()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slides)
}

func (s *Server) handleListGridCards(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	cards, err := s.catalog.ListGridCards()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleListDeals(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	deals, err := s.catalog.ListDeals(s.now())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deals)
}
