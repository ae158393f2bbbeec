package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/shared"
)

// StockEntry is one row of the stock ledger: the on-hand quantity of a
// product at a location. A missing row reads as zero; rows are created
// lazily the first time a product is touched at a location.
//
// The ledger is the only source of truth for on-hand stock. Nothing is
// denormalized onto products, so the two can never disagree.
type StockEntry struct {
	shared.BaseEntity
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_product_location,priority:1"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_product_location,priority:2"`
	Quantity   int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (StockEntry) TableName() string {
	return "stock_entries"
}

// NewStockEntry creates a ledger row for a product at a location
func NewStockEntry(productID, locationID uuid.UUID, quantity int64) *StockEntry {
	return &StockEntry{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		LocationID: locationID,
		Quantity:   quantity,
	}
}

// SetQuantity overwrites the on-hand quantity. Negative values are
// accepted; reconciling oversold counts is the adjustment workflow's
// job, not the ledger's.
func (s *StockEntry) SetQuantity(quantity int64) {
	s.Quantity = quantity
	s.UpdatedAt = time.Now()
}

// LocationStock is a read model joining the catalog with the ledger:
// every product with its on-hand quantity at one location.
type LocationStock struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	ImageURL  string    `json:"image_url"`
	Quantity  int64     `json:"quantity"`
}
