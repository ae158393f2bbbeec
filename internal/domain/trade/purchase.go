package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tokopos/backend/internal/domain/shared"
)

// PurchaseStatus tracks whether a purchase order has been settled
type PurchaseStatus string

const (
	PurchaseStatusUnpaid PurchaseStatus = "unpaid"
	PurchaseStatusPaid   PurchaseStatus = "paid"
)

// Purchase is a purchase order placed with a supplier for one location
type Purchase struct {
	shared.BaseEntity
	Number     string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;index"`
	LocationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	TaxID      *uuid.UUID      `gorm:"type:uuid"`
	Discount   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Shipping   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TaxAmount  decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Total      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status     PurchaseStatus  `gorm:"type:varchar(20);not null;default:'unpaid'"`
	Notes      string          `gorm:"type:text"`
	Items      []PurchaseItem  `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem is one line of a purchase order
type PurchaseItem struct {
	shared.BaseEntity
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int64           `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

// TableName returns the table name for GORM
func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// PurchaseLine is one requested line on a new purchase order
type PurchaseLine struct {
	ProductID uuid.UUID
	Quantity  int64
	Price     decimal.Decimal
}

// NewPurchase builds an unpaid purchase order. Monetary totals are set
// afterwards by the caller from the totals calculator.
func NewPurchase(supplierID, locationID uuid.UUID, taxID *uuid.UUID, discount, shipping decimal.Decimal, notes string, lines []PurchaseLine) (*Purchase, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier is required")
	}
	if locationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location is required")
	}
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if discount.IsNegative() || shipping.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Discount and shipping cannot be negative")
	}

	purchase := &Purchase{
		BaseEntity: shared.NewBaseEntity(),
		Number:     GeneratePurchaseNumber(time.Now()),
		SupplierID: supplierID,
		LocationID: locationID,
		TaxID:      taxID,
		Discount:   discount,
		Shipping:   shipping,
		Subtotal:   decimal.Zero,
		TaxAmount:  decimal.Zero,
		Total:      decimal.Zero,
		Status:     PurchaseStatusUnpaid,
		Notes:      notes,
	}

	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Purchase line is missing a product")
		}
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Purchase line quantity must be positive")
		}
		if line.Price.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Purchase line price cannot be negative")
		}
		purchase.Items = append(purchase.Items, PurchaseItem{
			BaseEntity: shared.NewBaseEntity(),
			PurchaseID: purchase.ID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			Price:      line.Price,
			Subtotal:   line.Price.Mul(decimal.NewFromInt(line.Quantity)),
		})
	}

	return purchase, nil
}

// GeneratePurchaseNumber builds the purchase order number from a
// millisecond timestamp
func GeneratePurchaseNumber(t time.Time) string {
	return fmt.Sprintf("PO-%s-%d", t.Format("20060102"), t.UnixMilli())
}

// SetTotals records the computed monetary totals
func (p *Purchase) SetTotals(subtotal, taxAmount, total decimal.Decimal) {
	p.Subtotal = subtotal
	p.TaxAmount = taxAmount
	p.Total = total
	p.UpdatedAt = time.Now()
}

// MarkPaid settles the purchase order
func (p *Purchase) MarkPaid() error {
	if p.Status == PurchaseStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Purchase is already paid")
	}
	p.Status = PurchaseStatusPaid
	p.UpdatedAt = time.Now()
	return nil
}

// MarkUnpaid reverts the purchase order to unpaid
func (p *Purchase) MarkUnpaid() error {
	if p.Status == PurchaseStatusUnpaid {
		return shared.NewDomainError("ALREADY_UNPAID", "Purchase is already unpaid")
	}
	p.Status = PurchaseStatusUnpaid
	p.UpdatedAt = time.Now()
	return nil
}

// ParsePurchaseStatus validates a status value from the API
func ParsePurchaseStatus(s string) (PurchaseStatus, error) {
	switch PurchaseStatus(s) {
	case PurchaseStatusPaid, PurchaseStatusUnpaid:
		return PurchaseStatus(s), nil
	default:
		return "", shared.ErrInvalidStatus
	}
}
