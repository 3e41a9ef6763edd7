package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikilo/storefront-backend/internal/config"
	"github.com/ikilo/storefront-backend/internal/domain/catalog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Store.Name = "iKILO"
	cfg.Store.WhatsAppNumber = "6208998771777"
	cfg.Store.WhatsAppBaseURL = "https://wa.me"
	cfg.Store.Timezone = "UTC"
	cfg.Store.CartTTL = 24 * time.Hour
	return cfg
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// catalogRouter serves the catalog routes from the built-in dataset
func catalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler(catalog.NewService(nil, testConfig(), testLogger()))

	r := gin.New()
	r.GET("/products", h.GetProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/categories", h.GetCategories)
	r.GET("/catalog/status", h.GetStatus)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetProducts(t *testing.T) {
	r := catalogRouter(t)

	w, body := doJSON(t, r, httptest.NewRequest("GET", "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Products []catalog.Product `json:"products"`
		Category string            `json:"category"`
		Count    int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body["data"], &data))

	assert.Equal(t, 10, data.Count)
	assert.Equal(t, catalog.CategoryAll, data.Category)
}

func TestGetProductsFiltered(t *testing.T) {
	r := catalogRouter(t)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"by category", "/products?category=buah", []string{"3", "8"}},
		{"by search", "/products?search=segar", []string{"1", "9"}},
		{"category and search", "/products?category=sayur_ikat&search=bayam", []string{"9"}},
		{"no match", "/products?search=durian", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doJSON(t, r, httptest.NewRequest("GET", tt.query, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var data struct {
				Products []catalog.Product `json:"products"`
			}
			require.NoError(t, json.Unmarshal(body["data"], &data))

			ids := []string{}
			for _, p := range data.Products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetProduct(t *testing.T) {
	r := catalogRouter(t)

	w, body := doJSON(t, r, httptest.NewRequest("GET", "/products/2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var product catalog.Product
	require.NoError(t, json.Unmarshal(body["data"], &product))
	assert.Equal(t, "Beras Premium", product.Name)
	require.NotEmpty(t, product.Variations)
	assert.Equal(t, int64(65000), product.Variations[0].Price)
}

func TestGetProductUnknown(t *testing.T) {
	r := catalogRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/products/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCategoriesSentinelFirst(t *testing.T) {
	r := catalogRouter(t)

	w, body := doJSON(t, r, httptest.NewRequest("GET", "/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var categories []catalog.Category
	require.NoError(t, json.Unmarshal(body["data"], &categories))

	require.Len(t, categories, 7)
	assert.Equal(t, catalog.CategoryAll, categories[0].ID)
	assert.Equal(t, "Semua", categories[0].DisplayName)
}

func TestCatalogStatusDegraded(t *testing.T) {
	r := catalogRouter(t)

	w, body := doJSON(t, r, httptest.NewRequest("GET", "/catalog/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Connected bool   `json:"connected"`
		Source    string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(body["data"], &data))
	assert.False(t, data.Connected)
	assert.Equal(t, "builtin", data.Source)
}
