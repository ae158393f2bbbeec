package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/inventory"
)

// GormStockRepository implements StockRepository using GORM. It only
// reads the ledger; all writes go through the adjustment repository.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Quantity returns the on-hand quantity for a product at a location.
// A missing ledger row reads as zero.
func (r *GormStockRepository) Quantity(ctx context.Context, productID, locationID uuid.UUID) (int64, error) {
	var entry inventory.StockEntry
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND location_id = ?", productID, locationID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return entry.Quantity, nil
}

// LocationOverview joins every product with its on-hand quantity at the
// location. Products without a ledger row appear with quantity zero.
func (r *GormStockRepository) LocationOverview(ctx context.Context, locationID uuid.UUID) ([]inventory.LocationStock, error) {
	var rows []inventory.LocationStock
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.id AS product_id, products.name, products.sku, products.image_url, COALESCE(stock_entries.quantity, 0) AS quantity").
		Joins("LEFT JOIN stock_entries ON stock_entries.product_id = products.id AND stock_entries.location_id = ?", locationID).
		Order("products.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TotalQuantity sums a product's stock across all locations
func (r *GormStockRepository) TotalQuantity(ctx context.Context, productID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&inventory.StockEntry{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// HasPositiveStock reports whether any ledger row at the location holds
// more than zero units
func (r *GormStockRepository) HasPositiveStock(ctx context.Context, locationID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&inventory.StockEntry{}).
		Where("location_id = ? AND quantity > 0", locationID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ProductHasStock reports whether any ledger row for the product holds
// more than zero units
func (r *GormStockRepository) ProductHasStock(ctx context.Context, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&inventory.StockEntry{}).
		Where("product_id = ? AND quantity > 0", productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormStockRepository implements StockRepository
var _ inventory.StockRepository = (*GormStockRepository)(nil)
