package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tokopos/backend/internal/domain/billing"
	"github.com/tokopos/backend/internal/domain/shared"
)

// TaxService manages tax rates. A tax referenced by any invoice cannot
// be deleted; deactivate it instead.
type TaxService struct {
	taxRepo     billing.TaxRepository
	invoiceRepo billing.InvoiceRepository
}

// NewTaxService creates a new TaxService
func NewTaxService(taxRepo billing.TaxRepository, invoiceRepo billing.InvoiceRepository) *TaxService {
	return &TaxService{
		taxRepo:     taxRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Create creates a new tax rate
func (s *TaxService) Create(ctx context.Context, req CreateTaxRequest) (*TaxResponse, error) {
	tax, err := billing.NewTax(req.Name, decimal.NewFromFloat(req.Rate))
	if err != nil {
		return nil, err
	}
	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return nil, err
	}
	response := ToTaxResponse(tax)
	return &response, nil
}

// GetByID retrieves a tax rate
func (s *TaxService) GetByID(ctx context.Context, id uuid.UUID) (*TaxResponse, error) {
	tax, err := s.taxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTaxResponse(tax)
	return &response, nil
}

// List retrieves tax rates with filtering and pagination
func (s *TaxService) List(ctx context.Context, filter TaxListFilter) ([]TaxResponse, int64, error) {
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

	taxes, err := s.taxRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.taxRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToTaxResponses(taxes), total, nil
}

// Update updates a tax rate
func (s *TaxService) Update(ctx context.Context, id uuid.UUID, req UpdateTaxRequest) (*TaxResponse, error) {
	tax, err := s.taxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := tax.Name
	if req.Name != nil {
		name = *req.Name
	}
	rate := tax.Rate
	if req.Rate != nil {
		rate = decimal.NewFromFloat(*req.Rate)
	}
	if err := tax.Update(name, rate); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		tax.SetActive(*req.IsActive)
	}

	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return nil, err
	}
	response := ToTaxResponse(tax)
	return &response, nil
}

// Delete removes a tax rate no invoice references
func (s *TaxService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.taxRepo.FindByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.invoiceRepo.ExistsByTax(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return shared.ErrTaxInUse
	}

	return s.taxRepo.Delete(ctx, id)
}
