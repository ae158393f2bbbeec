package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tokopos/backend/internal/domain/shared"
)

// Tax is a named percentage rate applied to invoices and purchases
type Tax struct {
	shared.BaseEntity
	Name     string          `gorm:"type:varchar(100);not null"`
	Rate     decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	IsActive bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Tax) TableName() string {
	return "taxes"
}

// NewTax creates an active tax rate. Rate is a percentage, e.g. 11 for
// the standard Indonesian PPN of 11%.
func NewTax(name string, rate decimal.Decimal) (*Tax, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tax name cannot be empty")
	}
	if err := validateTaxRate(rate); err != nil {
		return nil, err
	}
	return &Tax{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Rate:       rate,
		IsActive:   true,
	}, nil
}

// Update changes the tax's name and rate
func (t *Tax) Update(name string, rate decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Tax name cannot be empty")
	}
	if err := validateTaxRate(rate); err != nil {
		return err
	}
	t.Name = name
	t.Rate = rate
	t.UpdatedAt = time.Now()
	return nil
}

// SetActive toggles whether the tax is offered on new documents
func (t *Tax) SetActive(active bool) {
	t.IsActive = active
	t.UpdatedAt = time.Now()
}

func validateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_RATE", "Tax rate must be between 0 and 100")
	}
	return nil
}
