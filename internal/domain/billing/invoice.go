package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tokopos/backend/internal/domain/shared"
)

// InvoiceStatus is the settlement state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
)

// Invoice is a billing document. Register sales create one
// automatically; invoices can also be raised by hand for customers.
// A paid invoice is a settled financial record and cannot be deleted.
type Invoice struct {
	shared.BaseEntity
	Number      string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	CustomerID  *uuid.UUID      `gorm:"type:uuid;index"`
	LocationID  *uuid.UUID      `gorm:"type:uuid;index"`
	SaleID      *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	TaxID       *uuid.UUID      `gorm:"type:uuid;index"`
	Discount    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Shipping    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status      InvoiceStatus   `gorm:"type:varchar(20);not null;default:'unpaid'"`
	Notes       string          `gorm:"type:text"`
	DueDate     *time.Time
	Items       []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one billed line
type InvoiceItem struct {
	shared.BaseEntity
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int64           `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// InvoiceLine is one requested line on a new or updated invoice
type InvoiceLine struct {
	ProductID uuid.UUID
	Quantity  int64
	Price     decimal.Decimal
}

// NewInvoice creates an unpaid invoice with the given lines. The total
// is set afterwards from the totals calculator.
func NewInvoice(number string, lines []InvoiceLine) (*Invoice, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}

	inv := &Invoice{
		BaseEntity:  shared.NewBaseEntity(),
		Number:      number,
		Discount:    decimal.Zero,
		Shipping:    decimal.Zero,
		TotalAmount: decimal.Zero,
		Status:      InvoiceStatusUnpaid,
	}
	if err := inv.ReplaceItems(lines); err != nil {
		return nil, err
	}
	return inv, nil
}

// GenerateInvoiceNumber builds an invoice number from the issue date
// and a document reference (the short sale ID for register sales, a
// millisecond timestamp for hand-raised invoices)
func GenerateInvoiceNumber(t time.Time, ref string) string {
	return fmt.Sprintf("INV-%s-%s", t.Format("20060102"), ref)
}

// ReplaceItems swaps the invoice's lines for the given ones
func (i *Invoice) ReplaceItems(lines []InvoiceLine) error {
	if len(lines) == 0 {
		return shared.ErrEmptyCart
	}
	items := make([]InvoiceItem, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return shared.NewDomainError("INVALID_PRODUCT", "Invoice line is missing a product")
		}
		if line.Quantity <= 0 {
			return shared.NewDomainError("INVALID_QUANTITY", "Invoice line quantity must be positive")
		}
		if line.Price.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Invoice line price cannot be negative")
		}
		items = append(items, InvoiceItem{
			BaseEntity: shared.NewBaseEntity(),
			InvoiceID:  i.ID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			Price:      line.Price,
			Subtotal:   line.Price.Mul(decimal.NewFromInt(line.Quantity)),
		})
	}
	i.Items = items
	i.UpdatedAt = time.Now()
	return nil
}

// SetCharges records discount, shipping, and the optional tax reference
func (i *Invoice) SetCharges(taxID *uuid.UUID, discount, shipping decimal.Decimal) error {
	if discount.IsNegative() || shipping.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Discount and shipping cannot be negative")
	}
	i.TaxID = taxID
	i.Discount = discount
	i.Shipping = shipping
	i.UpdatedAt = time.Now()
	return nil
}

// SetTotal records the computed total amount
func (i *Invoice) SetTotal(total decimal.Decimal) {
	i.TotalAmount = total
	i.UpdatedAt = time.Now()
}

// SetStatus transitions between paid and unpaid
func (i *Invoice) SetStatus(status InvoiceStatus) error {
	switch status {
	case InvoiceStatusPaid, InvoiceStatusUnpaid:
		i.Status = status
		i.UpdatedAt = time.Now()
		return nil
	default:
		return shared.ErrInvalidStatus
	}
}

// IsPaid reports whether the invoice has been settled
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// CanDelete rejects deletion of settled invoices
func (i *Invoice) CanDelete() error {
	if i.IsPaid() {
		return shared.ErrInvoicePaid
	}
	return nil
}

// ParseInvoiceStatus validates a status value from the API
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch InvoiceStatus(s) {
	case InvoiceStatusPaid, InvoiceStatusUnpaid:
		return InvoiceStatus(s), nil
	default:
		return "", shared.ErrInvalidStatus
	}
}
