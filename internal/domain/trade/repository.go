package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/shared"
)

// SaleRepository persists register sales
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)
	Save(ctx context.Context, sale *Sale) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// ExistsByLocation reports whether any sale references the location.
	ExistsByLocation(ctx context.Context, locationID uuid.UUID) (bool, error)
	// ExistsByProduct reports whether any sale line references the product.
	ExistsByProduct(ctx context.Context, productID uuid.UUID) (bool, error)
}

// PurchaseRepository persists purchase orders
type PurchaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Purchase, error)
	Save(ctx context.Context, purchase *Purchase) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// ExistsByProduct reports whether any purchase line references the product.
	ExistsByProduct(ctx context.Context, productID uuid.UUID) (bool, error)
}
