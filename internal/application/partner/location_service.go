package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/trade"
)

// LocationService handles location registry operations. Deletes consult
// the stock ledger and sales history: a location with stock on hand or
// recorded sales stays on the books.
type LocationService struct {
	locationRepo partner.LocationRepository
	stockRepo    inventory.StockRepository
	saleRepo     trade.SaleRepository
}

// NewLocationService creates a new LocationService
func NewLocationService(
	locationRepo partner.LocationRepository,
	stockRepo inventory.StockRepository,
	saleRepo trade.SaleRepository,
) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		stockRepo:    stockRepo,
		saleRepo:     saleRepo,
	}
}

// Create creates a new location
func (s *LocationService) Create(ctx context.Context, req CreateLocationRequest) (*LocationResponse, error) {
	location, err := partner.NewLocation(req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.locationRepo.Save(ctx, location); err != nil {
		return nil, err
	}
	response := ToLocationResponse(location)
	return &response, nil
}

// GetByID retrieves a location
func (s *LocationService) GetByID(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToLocationResponse(location)
	return &response, nil
}

// List retrieves locations with filtering and pagination
func (s *LocationService) List(ctx context.Context, filter LocationListFilter) ([]LocationResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	locations, err := s.locationRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.locationRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToLocationResponses(locations), total, nil
}

// Update updates a location's basic information
func (s *LocationService) Update(ctx context.Context, id uuid.UUID, req UpdateLocationRequest) (*LocationResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := location.Name
	if req.Name != nil {
		name = *req.Name
	}
	address := location.Address
	if req.Address != nil {
		address = *req.Address
	}
	if err := location.Update(name, address); err != nil {
		return nil, err
	}

	if err := s.locationRepo.Save(ctx, location); err != nil {
		return nil, err
	}
	response := ToLocationResponse(location)
	return &response, nil
}

// Activate re-enables a location
func (s *LocationService) Activate(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate disables a location
func (s *LocationService) Deactivate(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *LocationService) setActive(ctx context.Context, id uuid.UUID, active bool) (*LocationResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		err = location.Activate()
	} else {
		err = location.Deactivate()
	}
	if err != nil {
		return nil, err
	}
	if err := s.locationRepo.Save(ctx, location); err != nil {
		return nil, err
	}
	response := ToLocationResponse(location)
	return &response, nil
}

// Delete removes a location with no stock on hand and no sales history
func (s *LocationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.locationRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasStock, err := s.stockRepo.HasPositiveStock(ctx, id)
	if err != nil {
		return err
	}
	if hasStock {
		return shared.ErrLocationInUse
	}

	hasSales, err := s.saleRepo.ExistsByLocation(ctx, id)
	if err != nil {
		return err
	}
	if hasSales {
		return shared.ErrLocationInUse
	}

	return s.locationRepo.Delete(ctx, id)
}
