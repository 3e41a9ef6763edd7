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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartRouter serves the cart routes backed by an in-process store and the
// built-in catalog
func cartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	log := testLogger()

	catalogService := catalog.NewService(nil, cfg, log)
	cartService := cart.NewService(cart.NewMemoryStore(time.Hour), catalogService, log)
	h := NewCartHandler(cartService, cfg)

	r := gin.New()
	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddLine)
	r.PUT("/cart/items", h.UpdateLine)
	r.DELETE("/cart/items", h.RemoveLine)
	r.DELETE("/cart", h.ClearCart)
	return r
}

// sessionRequest builds a request carrying the session cookie from a
// previous response
func sessionRequest(method, target, body string, prev *httptest.ResponseRecorder) *http.Request {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if prev != nil {
		for _, c := range prev.Result().Cookies() {
			req.AddCookie(c)
		}
	}
	return req
}

func cartData(t *testing.T, w *httptest.ResponseRecorder) *cart.Response {
	t.Helper()

	var body struct {
		Data cart.Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return &body.Data
}

func TestCartFlow(t *testing.T) {
	r := cartRouter(t)

	// First request creates the session cookie
	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("POST", "/cart/items",
		`{"product_id":"1","variation":"1 kg","quantity":2}`, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Result().Cookies(), "first cart request sets the session cookie")

	data := cartData(t, w)
	assert.Equal(t, int64(30000), data.Totals.TotalPrice)
	assert.Equal(t, 2, data.Totals.ItemCount)

	// Second product on the same session
	first := w
	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("POST", "/cart/items",
		`{"product_id":"2","variation":"5 kg","quantity":1}`, first))
	require.Equal(t, http.StatusOK, w.Code)

	data = cartData(t, w)
	require.Len(t, data.Lines, 2)
	assert.Equal(t, int64(95000), data.Totals.TotalPrice)
	assert.Equal(t, 3, data.Totals.ItemCount)
	assert.Equal(t, "Tomat Segar", data.Lines[0].ProductName)

	// Quantity zero removes the line
	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("PUT", "/cart/items",
		`{"product_id":"1","variation":"1 kg","quantity":0}`, first))
	require.Equal(t, http.StatusOK, w.Code)

	data = cartData(t, w)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, int64(65000), data.Totals.TotalPrice)

	// Clear empties the cart
	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("DELETE", "/cart", "", first))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("GET", "/cart", "", first))
	require.Equal(t, http.StatusOK, w.Code)

	data = cartData(t, w)
	assert.Empty(t, data.Lines)
	assert.Equal(t, int64(0), data.Totals.TotalPrice)
}

func TestCartRejectsUnknownProduct(t *testing.T) {
	r := cartRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("POST", "/cart/items",
		`{"product_id":"999","variation":"1 kg","quantity":1}`, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartRejectsUnknownVariation(t *testing.T) {
	r := cartRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("POST", "/cart/items",
		`{"product_id":"1","variation":"10 kg","quantity":1}`, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	r := cartRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("POST", "/cart/items",
		`{"product_id":"1","variation":"1 kg","quantity":1}`, nil))
	require.Equal(t, http.StatusOK, w.Code)

	// A request without the cookie gets its own empty cart
	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest("GET", "/cart", "", nil))
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, w)
	assert.Empty(t, data.Lines)
}
