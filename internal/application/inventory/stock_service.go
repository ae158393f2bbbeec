package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/partner"
)

// StockService serves read-only views over the stock ledger
type StockService struct {
	stockRepo    inventory.StockRepository
	locationRepo partner.LocationRepository
}

// NewStockService creates a new StockService
func NewStockService(stockRepo inventory.StockRepository, locationRepo partner.LocationRepository) *StockService {
	return &StockService{
		stockRepo:    stockRepo,
		locationRepo: locationRepo,
	}
}

// LocationOverview lists every catalog product with its on-hand
// quantity at the location, zero for products never stocked there
func (s *StockService) LocationOverview(ctx context.Context, locationID uuid.UUID) ([]StockRowResponse, error) {
	if _, err := s.locationRepo.FindByID(ctx, locationID); err != nil {
		return nil, err
	}
	rows, err := s.stockRepo.LocationOverview(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return ToStockRowResponses(rows), nil
}

// Quantity returns one product's on-hand quantity at a location
func (s *StockService) Quantity(ctx context.Context, productID, locationID uuid.UUID) (int64, error) {
	return s.stockRepo.Quantity(ctx, productID, locationID)
}
