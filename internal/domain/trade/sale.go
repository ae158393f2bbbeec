package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tokopos/backend/internal/domain/shared"
)

// PaymentMethod is how a sale was settled at the register
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodQRIS     PaymentMethod = "qris"
)

// Sale is a completed register transaction. It is written once at
// checkout together with its paired invoice and never edited.
type Sale struct {
	shared.BaseEntity
	Number     string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	LocationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Method     PaymentMethod   `gorm:"type:varchar(20);not null"`
	Total      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Payment    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Change     decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Items      []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale. Price is captured at sale time, so
// later catalog price changes never rewrite history.
type SaleItem struct {
	shared.BaseEntity
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int64           `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// SaleLine is one requested line at checkout
type SaleLine struct {
	ProductID uuid.UUID
	Quantity  int64
	Price     decimal.Decimal
}

// NewSale builds a sale from checkout lines. The total is the sum of
// line subtotals; change is payment minus total for cash, zero for
// every other method. A cash payment below the total is rejected.
func NewSale(locationID uuid.UUID, method PaymentMethod, payment decimal.Decimal, lines []SaleLine) (*Sale, error) {
	if locationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location is required")
	}
	if err := validatePaymentMethod(method); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}

	sale := &Sale{
		BaseEntity: shared.NewBaseEntity(),
		Number:     GenerateSaleNumber(time.Now()),
		LocationID: locationID,
		Method:     method,
		Payment:    payment,
		Total:      decimal.Zero,
		Change:     decimal.Zero,
	}

	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Sale line is missing a product")
		}
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Sale line quantity must be positive")
		}
		if line.Price.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Sale line price cannot be negative")
		}
		subtotal := line.Price.Mul(decimal.NewFromInt(line.Quantity))
		sale.Items = append(sale.Items, SaleItem{
			BaseEntity: shared.NewBaseEntity(),
			SaleID:     sale.ID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			Price:      line.Price,
			Subtotal:   subtotal,
		})
		sale.Total = sale.Total.Add(subtotal)
	}

	if method == PaymentMethodCash {
		if payment.LessThan(sale.Total) {
			return nil, shared.ErrPaymentTooSmall
		}
		sale.Change = payment.Sub(sale.Total)
	}

	return sale, nil
}

// GenerateSaleNumber builds the register receipt number from a
// millisecond timestamp
func GenerateSaleNumber(t time.Time) string {
	return fmt.Sprintf("SALE-%s-%d", t.Format("20060102"), t.UnixMilli())
}

// IsCash reports whether the sale was settled in cash
func (s *Sale) IsCash() bool {
	return s.Method == PaymentMethodCash
}

// Reference is the short identifier embedded in the paired invoice number
func (s *Sale) Reference() string {
	return s.ID.String()[:8]
}

func validatePaymentMethod(m PaymentMethod) error {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodQRIS:
		return nil
	default:
		return shared.NewDomainError("INVALID_METHOD", "Unsupported payment method")
	}
}
