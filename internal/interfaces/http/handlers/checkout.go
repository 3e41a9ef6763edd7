// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ikilo/storefront-backend/internal/config"
	"github.com/ikilo/storefront-backend/internal/domain/checkout"
)

// CheckoutHandler handles the checkout endpoint
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		config:          cfg,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID, err := c.Cookie("cart_session")
	if err != nil || sessionID == "" {
		// A brand new session has nothing in its cart; give it an id so
		// the error path still sets up the cookie
		sessionID = uuid.New().String()
		maxAge := int(h.config.Store.CartTTL.Seconds())
		c.SetCookie("cart_session", sessionID, maxAge, "/", "", false, true)
	}

	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.checkoutService.Checkout(c.Request.Context(), sessionID, c.Request.UserAgent(), &req)
	if errors.Is(err, checkout.ErrMissingCustomerInfo) || errors.Is(err, checkout.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Checkout failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order composed successfully",
		"data":    resp,
	})
}
