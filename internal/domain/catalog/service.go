// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"

	"github.com/ikilo/storefront-backend/internal/config"
	"github.com/ikilo/storefront-backend/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service supplies products and categories, substituting the built-in
// dataset whenever the remote store is unreachable or empty. The db handle
// may be nil: that is the process-wide "store never came up" state and is
// handled the same way as a failing query.
type Service struct {
	db     *gorm.DB
	config *config.Config
	log    *logrus.Logger
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		db:     db,
		config: cfg,
		log:    log,
	}
}

// GetProducts retrieves all products ordered by name, falling back to the
// built-in dataset on any failure or empty result
func (s *Service) GetProducts(ctx context.Context) []Product {
	if s.db == nil {
		return s.fallbackProducts("store not initialized")
	}

	var products []Product
	err := s.db.WithContext(ctx).
		Preload("Variations", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return s.fallbackProducts(err.Error())
	}
	if len(products) == 0 {
		return s.fallbackProducts("store returned no products")
	}

	return products
}

// GetCategories retrieves all categories with the "all" sentinel prepended,
// falling back to the built-in dataset on any failure or empty result
func (s *Service) GetCategories(ctx context.Context) []Category {
	if s.db == nil {
		return s.fallbackCategories("store not initialized")
	}

	var categories []Category
	err := s.db.WithContext(ctx).
		Order("display_name ASC").
		Find(&categories).Error
	if err != nil {
		return s.fallbackCategories(err.Error())
	}
	if len(categories) == 0 {
		return s.fallbackCategories("store returned no categories")
	}

	all := Category{ID: CategoryAll, Name: CategoryAll, DisplayName: "Semua"}
	return append([]Category{all}, categories...)
}

// GetProduct retrieves a single product by id, consulting the built-in
// dataset when the store is degraded
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	if s.db == nil {
		return findFallbackProduct(id)
	}

	var product Product
	err := s.db.WithContext(ctx).
		Preload("Variations", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("id = ?", id).
		First(&product).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("product %s not found", id)
	}
	if err != nil {
		s.log.WithField("component", "catalog").WithError(err).
			Warn("product lookup failed, consulting built-in dataset")
		return findFallbackProduct(id)
	}

	return &product, nil
}

// CheckConnection probes the remote store within the configured budget.
// A nil handle or any probe error reports unreachable.
func (s *Service) CheckConnection(ctx context.Context) bool {
	if s.db == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Store.CatalogProbeTime)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}

	return sqlDB.PingContext(ctx) == nil
}

func (s *Service) fallbackProducts(reason string) []Product {
	metrics.CatalogFallbacks.Inc()
	s.log.WithFields(logrus.Fields{
		"component": "catalog",
		"reason":    reason,
	}).Warn("serving built-in product dataset")
	return FallbackProducts()
}

func (s *Service) fallbackCategories(reason string) []Category {
	metrics.CatalogFallbacks.Inc()
	s.log.WithFields(logrus.Fields{
		"component": "catalog",
		"reason":    reason,
	}).Warn("serving built-in category dataset")
	return FallbackCategories()
}

func findFallbackProduct(id string) (*Product, error) {
	for _, p := range FallbackProducts() {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product %s not found", id)
}
