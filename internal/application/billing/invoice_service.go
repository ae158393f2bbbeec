package billing

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/domain/billing"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
)

// InvoiceService handles hand-raised invoices and settlement changes.
// Invoices paired with register sales are created by the sale workflow;
// this service manages them afterwards.
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	taxRepo     billing.TaxRepository
	contactRepo partner.ContactRepository
	logger      *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	taxRepo billing.TaxRepository,
	contactRepo partner.ContactRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		taxRepo:     taxRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Create raises an invoice, recomputing totals server-side
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if req.CustomerID != nil {
		customer, err := s.contactRepo.FindByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, err
		}
		if !customer.IsCustomer() {
			return nil, shared.NewDomainError("NOT_CUSTOMER", "Contact is not a customer")
		}
	}

	lines := make([]billing.InvoiceLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = billing.InvoiceLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     decimal.NewFromFloat(item.Price),
		}
	}

	now := time.Now()
	invoice, err := billing.NewInvoice(billing.GenerateInvoiceNumber(now, timestampRef(now)), lines)
	if err != nil {
		return nil, err
	}
	invoice.CustomerID = req.CustomerID
	invoice.LocationID = req.LocationID
	invoice.Notes = req.Notes
	invoice.DueDate = req.DueDate

	if err := invoice.SetCharges(req.TaxID, decimal.NewFromFloat(req.Discount), decimal.NewFromFloat(req.Shipping)); err != nil {
		return nil, err
	}
	if err := s.recomputeTotal(ctx, invoice); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("invoice raised",
		zap.String("number", invoice.Number),
		zap.String("total", invoice.TotalAmount.String()),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice with its lines
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
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
	if filter.CustomerID != nil {
		domainFilter.Filters["customer_id"] = *filter.CustomerID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.invoiceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToInvoiceResponses(invoices), total, nil
}

// Update edits an invoice and recomputes its total
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		customer, err := s.contactRepo.FindByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, err
		}
		if !customer.IsCustomer() {
			return nil, shared.NewDomainError("NOT_CUSTOMER", "Contact is not a customer")
		}
		invoice.CustomerID = req.CustomerID
	}

	if len(req.Items) > 0 {
		lines := make([]billing.InvoiceLine, len(req.Items))
		for i, item := range req.Items {
			lines[i] = billing.InvoiceLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     decimal.NewFromFloat(item.Price),
			}
		}
		if err := invoice.ReplaceItems(lines); err != nil {
			return nil, err
		}
	}

	taxID := invoice.TaxID
	if req.TaxID != nil {
		taxID = req.TaxID
	}
	discount := invoice.Discount
	if req.Discount != nil {
		discount = decimal.NewFromFloat(*req.Discount)
	}
	shipping := invoice.Shipping
	if req.Shipping != nil {
		shipping = decimal.NewFromFloat(*req.Shipping)
	}
	if err := invoice.SetCharges(taxID, discount, shipping); err != nil {
		return nil, err
	}

	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}

	if err := s.recomputeTotal(ctx, invoice); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// UpdateStatus flips an invoice between paid and unpaid
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateInvoiceStatusRequest) (*InvoiceResponse, error) {
	status, err := billing.ParseInvoiceStatus(req.Status)
	if err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := invoice.SetStatus(status); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an unpaid invoice and its lines. Paid invoices are
// settled records and stay.
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := invoice.CanDelete(); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// recomputeTotal derives the invoice total from its current lines and
// charges, never trusting a client-sent figure
func (s *InvoiceService) recomputeTotal(ctx context.Context, invoice *billing.Invoice) error {
	taxRate := decimal.Zero
	if invoice.TaxID != nil {
		tax, err := s.taxRepo.FindByID(ctx, *invoice.TaxID)
		if err != nil {
			return err
		}
		taxRate = tax.Rate
	}

	lines := make([]billing.TotalsLine, len(invoice.Items))
	for i, item := range invoice.Items {
		lines[i] = billing.TotalsLine{
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	totals, err := billing.CalculateTotals(lines, invoice.Discount, invoice.Shipping, taxRate)
	if err != nil {
		return err
	}
	invoice.SetTotal(totals.Total.Amount())
	return nil
}

// timestampRef builds the reference part of hand-raised invoice numbers
func timestampRef(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
