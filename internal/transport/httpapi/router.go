// Пакет httpapi содержит browser-facing JSON API магазина.
package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/checkout"
)

// Server связывает HTTP-маршруты с хранилищами и сервисом оформления.
type Server struct {
	catalog  domain.CatalogStore
	cart     domain.CartStore
	wishlist domain.WishlistStore
	reviews  domain.ReviewRepository
	checkout *checkout.Service
	logger   *log.Entry
	metrics  *metrics.StorefrontMetrics

	// Переопределяются в тестах.
	now   func() time.Time
	newID func() string
}

// NewServer создаёт HTTP-сервер API поверх переданных зависимостей.
func NewServer(
	catalog domain.CatalogStore,
	cart domain.CartStore,
	wishlist domain.WishlistStore,
	reviews domain.ReviewRepository,
	checkoutSvc *checkout.Service,
	logger *log.Entry,
) *Server {
	if logger == nil {
		logger = log.New().WithField("component", "httpapi")
	}
	return &Server{
		catalog:  catalog,
		cart:     cart,
		wishlist: wishlist,
		reviews:  reviews,
		checkout: checkoutSvc,
		logger:   logger,
		metrics:  metrics.NewStorefrontMetrics(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Router собирает все маршруты API.
// Поиск живёт на /api/search, а не /api/products/search: httprouter
// не допускает соседство статического сегмента с параметром :productId.
func (s *Server) Router() *httprouter.Router {
	router := httprouter.New()

	// Каталог
	router.GET("/api/products", s.handleListProducts)
	router.GET("/api/products/:productId", s.handleGetProduct)
	router.GET("/api/search", s.handleSearch)
	router.GET("/api/categories", s.handleListCategories)
	router.GET("/api/hero-slides", s.handleListHeroSlides)
	router.GET("/api/grid-cards", s.handleListGridCards)
	router.GET("/api/deals", s.handleListDeals)
	router.GET("/api/search-categories", s.handleSearchCategories)
	router.GET("/api/footer-links", s.handleFooterLinks)

	// Корзина
	router.GET("/api/cart/:sessionId", s.handleGetCart)
	router.POST("/api/cart/:sessionId/items", s.handleAddToCart)
	router.PATCH("/api/cart/:sessionId/items/:productId", s.handleSetCartQuantity)
	router.DELETE("/api/cart/:sessionId/items/:productId", s.handleRemoveFromCart)
	router.DELETE("/api/cart/:sessionId", s.handleClearCart)

	// Список желаний
	router.GET("/api/wishlist/:sessionId", s.handleGetWishlist)
	router.POST("/api/wishlist/:sessionId/items", s.handleAddToWishlist)
	router.DELETE("/api/wishlist/:sessionId/items/:productId", s.handleRemoveFromWishlist)

	// Отзывы
	router.GET("/api/products/:productId/reviews", s.handleListReviews)
	router.POST("/api/products/:productId/reviews", s.handleCreateReview)
	router.POST("/api/reviews/:reviewId/helpful", s.handleMarkReviewHelpful)

	// Заказы
	router.POST("/api/orders", s.handlePlaceOrder)
	router.GET("/api/orders/:userId", s.handleListOrders)
	router.GET("/api/orders/:userId/:orderId", s.handleGetOrder)

	return router
}

// Handler оборачивает маршруты логирующей и метрической прослойкой.
func (s *Server) Handler() http.Handler {
	return s.loggingMiddleware(s.Router())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		duration := time.Since(start)

		s.metrics.RecordHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(recorder.status), duration)
		s.logger.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   recorder.status,
			"duration": duration.String(),
			"remote":   r.RemoteAddr,
		}).Info("request handled")
	})
}

func parseProductID(params httprouter.Params) (int64, bool) {
	id, err := strconv.ParseInt(params.ByName("productId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
