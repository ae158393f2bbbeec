package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/shared"
)

// GormAdjustmentRepository implements AdjustmentRepository using GORM
type GormAdjustmentRepository struct {
	db *gorm.DB
}

// NewGormAdjustmentRepository creates a new GormAdjustmentRepository
func NewGormAdjustmentRepository(db *gorm.DB) *GormAdjustmentRepository {
	return &GormAdjustmentRepository{db: db}
}

// Apply runs the whole adjustment batch in a single transaction. The
// affected ledger rows are locked with SELECT ... FOR UPDATE so
// concurrent batches touching the same product-location pairs serialize;
// the second writer observes the first one's quantities as old values.
// Missing ledger rows read as zero and are created on first touch.
func (r *GormAdjustmentRepository) Apply(ctx context.Context, adjustment *inventory.StockAdjustment, targets []inventory.AdjustmentTarget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, target := range targets {
			var entry inventory.StockEntry
			err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("product_id = ? AND location_id = ?", target.ProductID, adjustment.LocationID).
				First(&entry).Error

			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				adjustment.RecordItem(target.ProductID, 0, target.NewQuantity)
				created := inventory.NewStockEntry(target.ProductID, adjustment.LocationID, target.NewQuantity)
				if err := tx.Create(created).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				adjustment.RecordItem(target.ProductID, entry.Quantity, target.NewQuantity)
				entry.SetQuantity(target.NewQuantity)
				if err := tx.Save(&entry).Error; err != nil {
					return err
				}
			}
		}

		return tx.Create(adjustment).Error
	})
}

// FindByID finds an adjustment by its ID, including its items
func (r *GormAdjustmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockAdjustment, error) {
	var adjustment inventory.StockAdjustment
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&adjustment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &adjustment, nil
}

// FindAll finds all adjustments matching the filter, including items
func (r *GormAdjustmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockAdjustment, error) {
	var adjustments []inventory.StockAdjustment
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.StockAdjustment{}).Preload("Items"), filter)

	if err := query.Find(&adjustments).Error; err != nil {
		return nil, err
	}
	return adjustments, nil
}

// Count counts adjustments matching the filter
func (r *GormAdjustmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.StockAdjustment{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormAdjustmentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, AdjustmentSortFields, "date")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAdjustmentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("number ILIKE ? OR note ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "location_id":
			query = query.Where("location_id = ?", value)
		}
	}

	return query
}

// Ensure GormAdjustmentRepository implements AdjustmentRepository
var _ inventory.AdjustmentRepository = (*GormAdjustmentRepository)(nil)
