package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/checkout"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	"github.com/vladislavdragonenkov/storefront/internal/storage/seed"
	"github.com/vladislavdragonenkov/storefront/internal/transport/httpapi"
)

// overlayCatalog подменяет отдельные товары поверх базового каталога,
// имитируя изменение каталога после оформления заказа.
type overlayCatalog struct {
	domain.CatalogStore
	mu        sync.RWMutex
	overrides map[int64]domain.Product
}

func newOverlayCatalog(base domain.CatalogStore) *overlayCatalog {
	return &overlayCatalog{
		CatalogStore: base,
		overrides:    make(map[int64]domain.Product),
	}
}

func (c *overlayCatalog) GetProduct(id int64) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if p, ok := c.overrides[id]; ok {
		return p, nil
	}
	return c.CatalogStore.GetProduct(id)
}

func (c *overlayCatalog) SetProduct(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overrides[p.ID] = p
}

// CheckoutFlowTestSuite тестирует полный сценарий покупки через HTTP API.
type CheckoutFlowTestSuite struct {
	suite.Suite
	catalog *overlayCatalog
	orders  domain.OrderRepository
	server  *httptest.Server
}

func (suite *CheckoutFlowTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel) // Уменьшаем шум в тестах
	logger := baseLogger.WithField("component", "integration-test")

	data := seed.MustLoad()
	base := memory.NewCatalogStore(data.Products, data.Categories, data.HeroSlides, data.GridCards, data.Deals)
	suite.catalog = newOverlayCatalog(base)
	suite.orders = memory.NewOrderRepository()

	checkoutSvc := checkout.NewService(suite.catalog, suite.orders, checkout.Config{
		TaxRate:         0.18,
		FlatShippingFee: domain.MoneyFromMinor(4000),
	}, logger)

	server := httpapi.NewServer(
		suite.catalog,
		memory.NewCartStore(),
		memory.NewWishlistStore(),
		memory.NewReviewRepository(),
		checkoutSvc,
		logger,
	)
	suite.server = httptest.NewServer(server.Handler())
	suite.T().Cleanup(suite.server.Close)
}

func (suite *CheckoutFlowTestSuite) do(method, path string, body interface{}) (*http.Response, []byte) {
	suite.T().Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, suite.server.URL+path, reader)
	require.NoError(suite.T(), err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(suite.T(), err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(suite.T(), err)

	return resp, raw
}

// TestBrowseCartCheckout проходит путь покупателя: каталог → корзина → заказ.
func (suite *CheckoutFlowTestSuite) TestBrowseCartCheckout() {
	// Покупатель смотрит каталог.
	resp, raw := suite.do(http.MethodGet, "/api/products", nil)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	var products []domain.Product
	suite.Require().NoError(json.Unmarshal(raw, &products))
	suite.Require().NotEmpty(products)
	chosen := products[2]

	// Кладёт товар в корзину.
	resp, raw = suite.do(http.MethodPost, "/api/cart/sess-buy/items", map[string]interface{}{
		"product_id": chosen.ID,
		"quantity":   2,
	})
	suite.Require().Equal(http.StatusCreated, resp.StatusCode)

	var cart struct {
		Items []struct {
			ID       int64 `json:"id"`
			Quantity int32 `json:"quantity"`
		} `json:"items"`
		Subtotal domain.Money `json:"subtotal"`
	}
	suite.Require().NoError(json.Unmarshal(raw, &cart))
	suite.Require().Len(cart.Items, 1)
	suite.Equal(chosen.Price.MulQty(2), cart.Subtotal)

	// Оформляет заказ по содержимому корзины.
	resp, raw = suite.do(http.MethodPost, "/api/orders", map[string]interface{}{
		"user_id": "user-flow",
		"items": []map[string]interface{}{
			{"product_id": chosen.ID, "quantity": 2},
		},
		"shipping_address": map[string]string{
			"full_name": "Priya Sharma",
			"address":   "42 MG Road",
			"city":      "Bengaluru",
			"state":     "Karnataka",
			"pincode":   "560001",
			"phone":     "+91-9000000000",
		},
	})
	suite.Require().Equal(http.StatusCreated, resp.StatusCode)

	var order domain.Order
	suite.Require().NoError(json.Unmarshal(raw, &order))
	suite.Equal(domain.OrderStatusPending, order.Status)
	suite.Equal(chosen.Price.MulQty(2), order.Subtotal)
	suite.Require().Len(order.Items, 1)
	suite.Equal(chosen.Title, order.Items[0].Snapshot.Title)

	// Очищает корзину после оформления.
	resp, _ = suite.do(http.MethodDelete, "/api/cart/sess-buy", nil)
	suite.Equal(http.StatusOK, resp.StatusCode)

	// Заказ виден в истории.
	resp, raw = suite.do(http.MethodGet, "/api/orders/user-flow", nil)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	var listed []domain.Order
	suite.Require().NoError(json.Unmarshal(raw, &listed))
	suite.Require().Len(listed, 1)
	suite.Equal(order.ID, listed[0].ID)
}

// TestOrderHistorySurvivesCatalogChanges проверяет, что история заказов
// читается из снимков и не зависит от живого каталога.
func (suite *CheckoutFlowTestSuite) TestOrderHistorySurvivesCatalogChanges() {
	resp, raw := suite.do(http.MethodPost, "/api/orders", map[string]interface{}{
		"user_id": "user-snap",
		"items": []map[string]interface{}{
			{"product_id": int64(3), "quantity": 1},
		},
		"shipping_address": map[string]string{
			"full_name": "Rahul Verma",
			"address":   "7 Park Street",
			"city":      "Kolkata",
			"state":     "West Bengal",
			"pincode":   "700016",
			"phone":     "+91-9000000001",
		},
	})
	suite.Require().Equal(http.StatusCreated, resp.StatusCode)

	var placed domain.Order
	suite.Require().NoError(json.Unmarshal(raw, &placed))
	snapshotTitle := placed.Items[0].Snapshot.Title
	snapshotPrice := placed.Items[0].Snapshot.Price

	// Каталог меняется после оформления: новая цена и название.
	changed, err := suite.catalog.GetProduct(3)
	suite.Require().NoError(err)
	changed.Title = "Apple AirPods 4 (обновлённая ревизия)"
	changed.Price = changed.Price + 50000
	suite.catalog.SetProduct(changed)

	// Каталог отдаёт обновлённый товар...
	resp, raw = suite.do(http.MethodGet, "/api/products/3", nil)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	var live domain.Product
	suite.Require().NoError(json.Unmarshal(raw, &live))
	suite.Equal(changed.Price, live.Price)

	// ...а история заказа хранит прежний снимок.
	resp, raw = suite.do(http.MethodGet, "/api/orders/user-snap/"+placed.ID, nil)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	var stored domain.Order
	suite.Require().NoError(json.Unmarshal(raw, &stored))
	suite.Equal(snapshotTitle, stored.Items[0].Snapshot.Title)
	suite.Equal(snapshotPrice, stored.Items[0].Snapshot.Price)
	suite.NotEqual(changed.Price, stored.Items[0].Snapshot.Price)
}

// TestCheckoutRejectsBadInput проверяет коды ошибок оформления.
func (suite *CheckoutFlowTestSuite) TestCheckoutRejectsBadInput() {
	// Пустой заказ.
	resp, _ := suite.do(http.MethodPost, "/api/orders", map[string]interface{}{
		"user_id": "user-bad",
		"items":   []map[string]interface{}{},
	})
	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	// Несуществующий товар.
	resp, _ = suite.do(http.MethodPost, "/api/orders", map[string]interface{}{
		"user_id": "user-bad",
		"items": []map[string]interface{}{
			{"product_id": int64(9999), "quantity": 1},
		},
	})
	suite.Equal(http.StatusNotFound, resp.StatusCode)

	// Нулевое количество.
	resp, _ = suite.do(http.MethodPost, "/api/orders", map[string]interface{}{
		"user_id": "user-bad",
		"items": []map[string]interface{}{
			{"product_id": int64(3), "quantity": 0},
		},
	})
	suite.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutFlowTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutFlowTestSuite))
}
