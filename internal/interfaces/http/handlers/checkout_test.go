package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikilo/storefront-backend/internal/domain/cart"
	"github.com/ikilo/storefront-backend/internal/domain/catalog"
	"github.com/ikilo/storefront-backend/internal/domain/checkout"
	"github.com/ikilo/storefront-backend/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storefrontRouter wires cart and checkout the way the route setup does,
// with no database and no redis
func storefrontRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	log := testLogger()

	catalogService := catalog.NewService(nil, cfg, log)
	cartService := cart.NewService(cart.NewMemoryStore(time.Hour), catalogService, log)
	orderService := order.NewService(nil, log)
	checkoutService := checkout.NewService(cartService, orderService, cfg, log)

	cartHandler := NewCartHandler(cartService, cfg)
	checkoutHandler := NewCheckoutHandler(checkoutService, cfg)

	r := gin.New()
	r.POST("/cart/items", cartHandler.AddLine)
	r.GET("/cart", cartHandler.GetCart)
	r.POST("/checkout", checkoutHandler.Checkout)
	return r
}

func TestCheckoutOverHTTP(t *testing.T) {
	r := storefrontRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("POST", "/cart/items",
		`{"product_id":"1","variation":"1 kg","quantity":2}`, nil))
	require.Equal(t, http.StatusOK, w.Code)
	first := w

	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("POST", "/cart/items",
		`{"product_id":"2","variation":"5 kg","quantity":1}`, first))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req := sessionRequest("POST", "/checkout",
		`{"customer_name":"Budi","customer_phone":"081234567890","customer_address":"Jl. A"}`, first)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data checkout.Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, int64(95000), body.Data.Order.TotalPrice)
	assert.True(t, strings.HasPrefix(body.Data.Order.OrderNumber, "ORD-"))
	assert.Contains(t, body.Data.Message, "TOTAL PEMBAYARAN: Rp 95.000")
	assert.True(t, strings.HasPrefix(body.Data.WhatsAppURL, "https://wa.me/6208998771777?text="))
	assert.Equal(t, checkout.DeliveryNavigate, body.Data.Delivery)

	// Cart is emptied after the handoff
	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("GET", "/cart", "", first))
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, w)
	assert.Empty(t, data.Lines)
}

func TestCheckoutEmptyCartOverHTTP(t *testing.T) {
	r := storefrontRouter(t)

	w := httptest.NewRecorder()
	req := sessionRequest("POST", "/checkout",
		`{"customer_name":"Budi","customer_phone":"0812","customer_address":"Jl. A"}`, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutMissingFieldsOverHTTP(t *testing.T) {
	r := storefrontRouter(t)

	w := httptest.NewRecorder()
	req := sessionRequest("POST", "/checkout", `{"customer_name":"Budi"}`, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
