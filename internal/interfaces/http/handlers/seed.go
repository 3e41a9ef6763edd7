// internal/interfaces/http/handlers/seed.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikilo/storefront-backend/internal/infrastructure/database/postgres"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedHandler handles the admin catalog seeding endpoint
type SeedHandler struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(db *gorm.DB, log *logrus.Logger) *SeedHandler {
	return &SeedHandler{
		db:  db,
		log: log,
	}
}

// Seed handles POST /admin/seed, writing the built-in catalog into the
// store. Existing rows are left untouched.
func (h *SeedHandler) Seed(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Store unavailable, nothing to seed",
		})
		return
	}

	migration := postgres.NewMigration(h.db, h.log)
	if err := migration.SeedInitialData(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Seeding failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog seeded successfully",
	})
}
