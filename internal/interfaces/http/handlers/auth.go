// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikilo/storefront-backend/internal/config"
	"github.com/ikilo/storefront-backend/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles admin authentication
type AuthHandler struct {
	config     *config.Config
	jwtManager *auth.JWTManager
	log        *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		config:     cfg,
		jwtManager: auth.NewJWTManager(cfg),
		log:        log,
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login. There is a single admin account,
// configured through the environment.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if h.config.Admin.PasswordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Admin login is not configured",
		})
		return
	}

	if req.Email != h.config.Admin.Email ||
		auth.VerifyPassword(req.Password, h.config.Admin.PasswordHash) != nil {
		h.log.WithFields(logrus.Fields{
			"component": "auth",
			"email":     req.Email,
			"client_ip": c.ClientIP(),
		}).Warn("failed admin login attempt")

		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	token, err := h.jwtManager.GenerateAdminToken(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(h.config.Admin.AccessTokenExpiry.Seconds()),
		},
	})
}
