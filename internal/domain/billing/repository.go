package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/shared"
)

// InvoiceRepository persists invoices and their lines
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)
	Save(ctx context.Context, invoice *Invoice) error
	// Delete removes the invoice and its lines. The paid-invoice guard
	// lives in the application service.
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// ExistsByTax reports whether any invoice references the tax.
	ExistsByTax(ctx context.Context, taxID uuid.UUID) (bool, error)
}

// TaxRepository persists tax rates
type TaxRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tax, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Tax, error)
	Save(ctx context.Context, tax *Tax) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
