package billing

import (
	"github.com/shopspring/decimal"

	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/shared/valueobject"
)

// TotalsLine is one line feeding the totals calculation
type TotalsLine struct {
	Quantity int64
	Price    decimal.Decimal
}

// Totals is the monetary breakdown of a billing document
type Totals struct {
	Subtotal  valueobject.Money `json:"subtotal"`
	Taxable   valueobject.Money `json:"taxable"`
	TaxAmount valueobject.Money `json:"tax_amount"`
	Shipping  valueobject.Money `json:"shipping"`
	Discount  valueobject.Money `json:"discount"`
	Total     valueobject.Money `json:"total"`
}

// CalculateTotals derives document totals from line items and charges.
// The discount applies to the goods subtotal before tax, and tax is
// charged on the discounted goods only; shipping is added untaxed.
// The final total is rounded half-up to whole Rupiah, intermediate
// figures keep full precision.
func CalculateTotals(lines []TotalsLine, discount, shipping, taxRate decimal.Decimal) (Totals, error) {
	if discount.IsNegative() || shipping.IsNegative() || taxRate.IsNegative() {
		return Totals{}, shared.NewDomainError("INVALID_AMOUNT", "Discount, shipping, and tax rate cannot be negative")
	}

	subtotal := valueobject.Zero()
	for _, line := range lines {
		if line.Quantity < 0 {
			return Totals{}, shared.NewDomainError("INVALID_QUANTITY", "Line quantity cannot be negative")
		}
		if line.Price.IsNegative() {
			return Totals{}, shared.NewDomainError("INVALID_PRICE", "Line price cannot be negative")
		}
		subtotal = subtotal.Add(valueobject.NewMoney(line.Price).MulInt(line.Quantity))
	}

	taxable := subtotal.Sub(valueobject.NewMoney(discount))
	taxAmount := taxable.Percent(taxRate)
	total := taxable.Add(taxAmount).Add(valueobject.NewMoney(shipping)).RoundRupiah()

	return Totals{
		Subtotal:  subtotal,
		Taxable:   taxable,
		TaxAmount: taxAmount,
		Shipping:  valueobject.NewMoney(shipping),
		Discount:  valueobject.NewMoney(discount),
		Total:     total,
	}, nil
}
