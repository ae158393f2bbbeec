package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tokopos/backend/internal/domain/shared"
)

// Product is the aggregate root for catalog items. On-hand stock is NOT
// stored here: the per-location stock ledger is the single source of
// truth, and totals are derived by summing ledger rows.
type Product struct {
	shared.BaseEntity
	SKU         string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Description string          `gorm:"type:text"`
	ImageURL    string          `gorm:"type:text"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product. An empty SKU gets a generated one so
// barcode-less items can still be rung up at the register.
func NewProduct(sku, name string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if sku == "" {
		sku = GenerateSKU()
	} else if err := validateSKU(sku); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        sku,
		Name:       name,
		Price:      price,
	}, nil
}

// GenerateSKU produces a unique fallback SKU
func GenerateSKU() string {
	return "SKU-" + strings.ToUpper(uuid.NewString()[:8])
}

// Update changes the product's basic information
func (p *Product) Update(name string, price decimal.Decimal) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Name = name
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateSKU changes the product's SKU
func (p *Product) UpdateSKU(sku string) error {
	if err := validateSKU(sku); err != nil {
		return err
	}
	p.SKU = sku
	p.UpdatedAt = time.Now()
	return nil
}

// SetDetails sets the optional descriptive fields
func (p *Product) SetDetails(description, imageURL string) {
	p.Description = description
	p.ImageURL = imageURL
	p.UpdatedAt = time.Now()
}

// AssignCategory places the product under a category, nil detaches it
func (p *Product) AssignCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 100 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 100 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
