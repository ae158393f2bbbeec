package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/domain/billing"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/trade"
)

// PurchaseService records purchase orders placed with suppliers
type PurchaseService struct {
	purchaseRepo trade.PurchaseRepository
	contactRepo  partner.ContactRepository
	locationRepo partner.LocationRepository
	taxRepo      billing.TaxRepository
	logger       *zap.Logger
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(
	purchaseRepo trade.PurchaseRepository,
	contactRepo partner.ContactRepository,
	locationRepo partner.LocationRepository,
	taxRepo billing.TaxRepository,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		contactRepo:  contactRepo,
		locationRepo: locationRepo,
		taxRepo:      taxRepo,
		logger:       logger,
	}
}

// Create validates the supplier and location, computes totals, and
// persists the purchase order as unpaid
func (s *PurchaseService) Create(ctx context.Context, req CreatePurchaseRequest) (*PurchaseResponse, error) {
	supplier, err := s.contactRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if !supplier.IsSupplier() {
		return nil, shared.ErrNotSupplier
	}

	if _, err := s.locationRepo.FindByID(ctx, req.LocationID); err != nil {
		return nil, err
	}

	taxRate := decimal.Zero
	if req.TaxID != nil {
		tax, err := s.taxRepo.FindByID(ctx, *req.TaxID)
		if err != nil {
			return nil, err
		}
		taxRate = tax.Rate
	}

	lines := make([]trade.PurchaseLine, len(req.Items))
	totalsLines := make([]billing.TotalsLine, len(req.Items))
	for i, item := range req.Items {
		price := decimal.NewFromFloat(item.Price)
		lines[i] = trade.PurchaseLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		}
		totalsLines[i] = billing.TotalsLine{
			Quantity: item.Quantity,
			Price:    price,
		}
	}

	discount := decimal.NewFromFloat(req.Discount)
	shipping := decimal.NewFromFloat(req.Shipping)

	purchase, err := trade.NewPurchase(req.SupplierID, req.LocationID, req.TaxID, discount, shipping, req.Notes, lines)
	if err != nil {
		return nil, err
	}

	totals, err := billing.CalculateTotals(totalsLines, discount, shipping, taxRate)
	if err != nil {
		return nil, err
	}
	purchase.SetTotals(totals.Subtotal.Amount(), totals.TaxAmount.Amount(), totals.Total.Amount())

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	s.logger.Info("purchase recorded",
		zap.String("number", purchase.Number),
		zap.String("supplier_id", purchase.SupplierID.String()),
		zap.String("total", purchase.Total.String()),
	)

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// GetByID retrieves a purchase order with its items
func (s *PurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseService) List(ctx context.Context, filter PurchaseListFilter) ([]PurchaseResponse, int64, error) {
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
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}
	if filter.LocationID != nil {
		domainFilter.Filters["location_id"] = *filter.LocationID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	purchases, err := s.purchaseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.purchaseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToPurchaseResponses(purchases), total, nil
}

// UpdateStatus flips a purchase order between paid and unpaid
func (s *PurchaseService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdatePurchaseStatusRequest) (*PurchaseResponse, error) {
	status, err := trade.ParsePurchaseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status == trade.PurchaseStatusPaid {
		err = purchase.MarkPaid()
	} else {
		err = purchase.MarkUnpaid()
	}
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}
	response := ToPurchaseResponse(purchase)
	return &response, nil
}
