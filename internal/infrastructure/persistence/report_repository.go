package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/billing"
	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/report"
)

// GormDashboardRepository implements DashboardRepository using GORM
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// Counts returns the entity totals shown on the dashboard
func (r *GormDashboardRepository) Counts(ctx context.Context) (*report.DashboardCounts, error) {
	var counts report.DashboardCounts
	db := r.db.WithContext(ctx)

	if err := db.Model(&catalog.Product{}).Count(&counts.Products).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&catalog.Category{}).Count(&counts.Categories).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&partner.Contact{}).
		Where("type = ?", partner.ContactTypeCustomer).
		Count(&counts.Customers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&billing.Invoice{}).Count(&counts.Invoices).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}

// RevenueBetween sums price * quantity over the lines of invoices
// created in [from, to)
func (r *GormDashboardRepository) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Table("invoice_items ii").
		Select("COALESCE(SUM(ii.price * ii.quantity), 0) as total").
		Joins("JOIN invoices i ON i.id = ii.invoice_id").
		Where("i.created_at >= ? AND i.created_at < ?", from, to).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}

	return result.Total, nil
}

// DailyRevenue returns per-day line revenue for invoices created in
// [from, to). Days without invoices produce no row.
func (r *GormDashboardRepository) DailyRevenue(ctx context.Context, from, to time.Time) ([]report.DailyRevenue, error) {
	var results []report.DailyRevenue

	err := r.db.WithContext(ctx).
		Table("invoice_items ii").
		Select("DATE(i.created_at) as date, COALESCE(SUM(ii.price * ii.quantity), 0) as total").
		Joins("JOIN invoices i ON i.id = ii.invoice_id").
		Where("i.created_at >= ? AND i.created_at < ?", from, to).
		Group("DATE(i.created_at)").
		Order("date ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// TopProducts returns the products with the highest invoiced quantity
// in [from, to)
func (r *GormDashboardRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]report.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}

	var results []report.TopProduct

	err := r.db.WithContext(ctx).
		Table("invoice_items ii").
		Select(`
			ii.product_id,
			p.name,
			p.sku,
			p.image_url,
			p.price,
			COALESCE(SUM(ii.quantity), 0) as sold
		`).
		Joins("JOIN invoices i ON i.id = ii.invoice_id").
		Joins("JOIN products p ON p.id = ii.product_id").
		Where("i.created_at >= ? AND i.created_at < ?", from, to).
		Group("ii.product_id, p.name, p.sku, p.image_url, p.price").
		Order("sold DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
