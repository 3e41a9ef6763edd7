// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikilo/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles product and category endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetProducts handles GET /products with optional category and search filters
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products := h.catalogService.GetProducts(c.Request.Context())

	category := catalog.NormalizeCategory(c.Query("category"))
	search := c.Query("search")
	products = catalog.Filter(products, category, search)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"category": category,
			"search":   search,
			"count":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories := h.catalogService.GetCategories(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetStatus handles GET /catalog/status, reporting whether the catalog is
// served from the remote store or the built-in dataset
func (h *CatalogHandler) GetStatus(c *gin.Context) {
	connected := h.catalogService.CheckConnection(c.Request.Context())

	source := "store"
	if !connected {
		source = "builtin"
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"connected": connected,
			"source":    source,
		},
	})
}
