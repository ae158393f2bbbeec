package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardCounts holds the entity totals shown on the dashboard
type DashboardCounts struct {
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Customers  int64 `json:"customers"`
	Invoices   int64 `json:"invoices"`
}

// DailyRevenue is one day's invoiced revenue, summed over line items
type DailyRevenue struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// TopProduct ranks a product by quantity invoiced in a period
type TopProduct struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	ImageURL  string          `json:"image_url,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Sold      int64           `json:"sold"`
}

// DashboardRepository serves the aggregate queries behind the
// dashboard. Revenue is derived from invoice lines, not the
// denormalized invoice total, so discounts and shipping stay out of
// the sales figures.
type DashboardRepository interface {
	Counts(ctx context.Context) (*DashboardCounts, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	DailyRevenue(ctx context.Context, from, to time.Time) ([]DailyRevenue, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProduct, error)
}
