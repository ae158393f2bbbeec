package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/shared"
)

// StockRepository defines read operations over the stock ledger
type StockRepository interface {
	// Quantity returns the on-hand quantity, zero when no row exists.
	Quantity(ctx context.Context, productID, locationID uuid.UUID) (int64, error)
	// LocationOverview joins every catalog product with its on-hand
	// quantity at the location.
	LocationOverview(ctx context.Context, locationID uuid.UUID) ([]LocationStock, error)
	// TotalQuantity sums a product's stock across all locations.
	TotalQuantity(ctx context.Context, productID uuid.UUID) (int64, error)
	// HasPositiveStock reports whether any ledger row at the location
	// holds more than zero units.
	HasPositiveStock(ctx context.Context, locationID uuid.UUID) (bool, error)
	// ProductHasStock reports whether any ledger row for the product
	// holds more than zero units.
	ProductHasStock(ctx context.Context, productID uuid.UUID) (bool, error)
}

// AdjustmentRepository persists stock adjustments. Apply runs the whole
// batch in a single transaction: it locks the affected ledger rows,
// records old quantities into the adjustment items, upserts the ledger
// to the target quantities, and writes the audit header and items.
// Either everything commits or nothing does.
type AdjustmentRepository interface {
	Apply(ctx context.Context, adjustment *StockAdjustment, targets []AdjustmentTarget) error
	FindByID(ctx context.Context, id uuid.UUID) (*StockAdjustment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]StockAdjustment, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
