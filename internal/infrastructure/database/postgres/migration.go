// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/ikilo/storefront-backend/internal/domain/catalog"
	"github.com/ikilo/storefront-backend/internal/domain/order"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migration handles database migrations and seeding
type Migration struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, log *logrus.Logger) *Migration {
	return &Migration{
		db:  db,
		log: log,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.log.Info("running database auto-migrations")

	// Dependency order: categories and products before their children
	models := []interface{}{
		&catalog.Category{},
		&catalog.Product{},
		&catalog.Variation{},

		&order.Order{},
		&order.Item{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.log.Info("database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_product_variations_product ON product_variations(product_id, sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_order_number ON orders(order_number)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
	}

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.log.WithError(err).Warn("failed to create index")
		}
	}

	return nil
}

// SeedInitialData inserts the built-in catalog into an empty database.
// Safe to run on every startup.
func (m *Migration) SeedInitialData() error {
	m.log.Info("seeding initial catalog data")

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	return nil
}

// seedCategories inserts the built-in categories. The "all" sentinel is a
// presentation concern and never stored.
func (m *Migration) seedCategories() error {
	for _, category := range catalog.FallbackCategories() {
		if category.ID == catalog.CategoryAll {
			continue
		}

		var existing catalog.Category
		result := m.db.Where("id = ?", category.ID).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&category).Error; err != nil {
				return err
			}
			m.log.WithField("category", category.ID).Info("seeded category")
		}
	}

	return nil
}

func (m *Migration) seedProducts() error {
	for _, product := range catalog.FallbackProducts() {
		var existing catalog.Product
		result := m.db.Where("id = ?", product.ID).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&product).Error; err != nil {
				return err
			}
			m.log.WithField("product", product.Name).Info("seeded product")
		}
	}

	return nil
}
