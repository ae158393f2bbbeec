package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/shared"
)

// StockAdjustment is the audit record of a stock count at one location.
// Each item captures the quantity before and after, so the ledger can
// always be explained from the adjustment history. Adjustments are
// immutable once written.
type StockAdjustment struct {
	shared.BaseEntity
	Number     string                `gorm:"type:varchar(100);not null;uniqueIndex"`
	Date       time.Time             `gorm:"not null"`
	LocationID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Note       string                `gorm:"type:text"`
	Items      []StockAdjustmentItem `gorm:"foreignKey:AdjustmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (StockAdjustment) TableName() string {
	return "stock_adjustments"
}

// StockAdjustmentItem records one product's count within an adjustment
type StockAdjustmentItem struct {
	shared.BaseEntity
	AdjustmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OldQuantity  int64     `gorm:"not null"`
	NewQuantity  int64     `gorm:"not null"`
	Difference   int64     `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StockAdjustmentItem) TableName() string {
	return "stock_adjustment_items"
}

// NewStockAdjustment creates an adjustment header. Number and date fall
// back to generated defaults when the caller leaves them empty.
func NewStockAdjustment(locationID uuid.UUID, number string, date time.Time, note string) (*StockAdjustment, error) {
	if locationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location is required")
	}
	if number == "" {
		number = GenerateAdjustmentNumber(time.Now())
	}
	if date.IsZero() {
		date = time.Now()
	}
	return &StockAdjustment{
		BaseEntity: shared.NewBaseEntity(),
		Number:     number,
		Date:       date,
		LocationID: locationID,
		Note:       note,
	}, nil
}

// GenerateAdjustmentNumber builds the default adjustment number from a
// millisecond timestamp
func GenerateAdjustmentNumber(t time.Time) string {
	return fmt.Sprintf("ADJ-%d", t.UnixMilli())
}

// RecordItem appends one product's count, deriving the difference from
// the observed old quantity and the target new quantity
func (a *StockAdjustment) RecordItem(productID uuid.UUID, oldQuantity, newQuantity int64) {
	a.Items = append(a.Items, StockAdjustmentItem{
		BaseEntity:   shared.NewBaseEntity(),
		AdjustmentID: a.ID,
		ProductID:    productID,
		OldQuantity:  oldQuantity,
		NewQuantity:  newQuantity,
		Difference:   newQuantity - oldQuantity,
	})
}

// ItemCount returns the number of recorded items
func (a *StockAdjustment) ItemCount() int {
	return len(a.Items)
}

// AdjustmentTarget is one requested target quantity within a batch,
// before the old quantity has been observed
type AdjustmentTarget struct {
	ProductID   uuid.UUID
	NewQuantity int64
}

// ValidateTargets rejects an empty batch and duplicate products before
// anything touches the database
func ValidateTargets(targets []AdjustmentTarget) error {
	if len(targets) == 0 {
		return shared.NewDomainError("EMPTY_ADJUSTMENT", "At least one adjustment item is required")
	}
	seen := make(map[uuid.UUID]struct{}, len(targets))
	for _, t := range targets {
		if t.ProductID == uuid.Nil {
			return shared.NewDomainError("INVALID_PRODUCT", "Adjustment item is missing a product")
		}
		if _, dup := seen[t.ProductID]; dup {
			return shared.NewDomainError("DUPLICATE_PRODUCT", "Product appears more than once in the adjustment")
		}
		seen[t.ProductID] = struct{}{}
	}
	return nil
}
