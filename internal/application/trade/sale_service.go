package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/domain/billing"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/trade"
)

// CheckoutStore persists a sale together with its paired invoice in a
// single transaction. If either write fails, neither document exists.
type CheckoutStore interface {
	SaveSaleWithInvoice(ctx context.Context, sale *trade.Sale, invoice *billing.Invoice) error
}

// SaleService records register sales. Every sale gets a paired invoice:
// cash sales are settled on the spot so their invoice is born paid, any
// other method leaves it unpaid until reconciled.
type SaleService struct {
	saleRepo     trade.SaleRepository
	locationRepo partner.LocationRepository
	checkout     CheckoutStore
	logger       *zap.Logger
}

// NewSaleService creates a new SaleService
func NewSaleService(
	saleRepo trade.SaleRepository,
	locationRepo partner.LocationRepository,
	checkout CheckoutStore,
	logger *zap.Logger,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		locationRepo: locationRepo,
		checkout:     checkout,
		logger:       logger,
	}
}

// Create records a checkout and its paired invoice
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}
	if !location.IsActive {
		return nil, shared.NewDomainError("LOCATION_INACTIVE", "Cannot sell at a deactivated location")
	}

	lines := make([]trade.SaleLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = trade.SaleLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     decimal.NewFromFloat(item.Price),
		}
	}

	sale, err := trade.NewSale(req.LocationID, trade.PaymentMethod(req.Method), decimal.NewFromFloat(req.Payment), lines)
	if err != nil {
		return nil, err
	}

	invoice, err := s.pairInvoice(sale)
	if err != nil {
		return nil, err
	}

	if err := s.checkout.SaveSaleWithInvoice(ctx, sale, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("sale recorded",
		zap.String("number", sale.Number),
		zap.String("invoice", invoice.Number),
		zap.String("method", string(sale.Method)),
		zap.String("total", sale.Total.String()),
	)

	response := ToSaleResponse(sale, &invoice.ID)
	return &response, nil
}

// pairInvoice builds the invoice mirroring the sale's lines
func (s *SaleService) pairInvoice(sale *trade.Sale) (*billing.Invoice, error) {
	lines := make([]billing.InvoiceLine, len(sale.Items))
	for i, item := range sale.Items {
		lines[i] = billing.InvoiceLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	invoice, err := billing.NewInvoice(billing.GenerateInvoiceNumber(time.Now(), sale.Reference()), lines)
	if err != nil {
		return nil, err
	}
	invoice.SaleID = &sale.ID
	invoice.LocationID = &sale.LocationID
	invoice.SetTotal(sale.Total)

	status := billing.InvoiceStatusUnpaid
	if sale.IsCash() {
		status = billing.InvoiceStatusPaid
	}
	if err := invoice.SetStatus(status); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetByID retrieves a sale with its items
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSaleResponse(sale, nil)
	return &response, nil
}

// List retrieves sales with filtering and pagination
func (s *SaleService) List(ctx context.Context, filter SaleListFilter) ([]SaleResponse, int64, error) {
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
	if filter.LocationID != nil {
		domainFilter.Filters["location_id"] = *filter.LocationID
	}

	sales, err := s.saleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.saleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToSaleResponses(sales), total, nil
}
