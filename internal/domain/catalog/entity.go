// internal/domain/catalog/entity.go
package catalog

import (
	"strings"
	"time"
)

// CategoryAll is the sentinel category id meaning "no filter applied"
const CategoryAll = "all"

// Product represents a catalog product. Products are immutable once loaded;
// ids are assigned by the catalog source.
type Product struct {
	ID          string      `gorm:"primaryKey;size:64" json:"id"`
	Name        string      `gorm:"not null;size:255" json:"name"`
	Category    string      `gorm:"not null;index;size:64" json:"category"`
	Description string      `gorm:"type:text" json:"description"`
	Image       string      `gorm:"size:500" json:"image"`
	CreatedAt   time.Time   `json:"-"`
	UpdatedAt   time.Time   `json:"-"`
	Variations  []Variation `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variations"`
}

// Variation represents a purchasable unit of a product (e.g. "1 kg").
// Price is in whole rupiah, the smallest unit in circulation.
type Variation struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID string `gorm:"not null;index;size:64" json:"-"`
	Name      string `gorm:"not null;size:100" json:"name"`
	Price     int64  `gorm:"not null" json:"price"`
	SortOrder int    `gorm:"default:0" json:"-"`
}

// Category represents a product category
type Category struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	DisplayName string    `gorm:"not null;size:100" json:"display_name"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName overrides
func (Product) TableName() string   { return "products" }
func (Variation) TableName() string { return "product_variations" }
func (Category) TableName() string  { return "categories" }

// FindVariation returns the variation with the given name, or nil
func (p *Product) FindVariation(name string) *Variation {
	for i := range p.Variations {
		if p.Variations[i].Name == name {
			return &p.Variations[i]
		}
	}
	return nil
}

// NormalizeCategory maps the empty string to the CategoryAll sentinel so
// "no category selected" and "all categories" share one canonical form.
func NormalizeCategory(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return CategoryAll
	}
	return id
}

// Filter returns the products matching the category and search query.
// The CategoryAll sentinel matches every category; search is a
// case-insensitive substring match on the product name.
func Filter(products []Product, category, search string) []Product {
	category = NormalizeCategory(category)
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
