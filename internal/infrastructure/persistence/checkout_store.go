package persistence

import (
	"context"

	"gorm.io/gorm"

	apptrade "github.com/tokopos/backend/internal/application/trade"
	"github.com/tokopos/backend/internal/domain/billing"
	"github.com/tokopos/backend/internal/domain/trade"
)

// GormCheckoutStore persists a sale and its paired invoice atomically.
// The invoice carries a unique sale_id, so a retried checkout cannot
// leave a sale with two invoices.
type GormCheckoutStore struct {
	db *gorm.DB
}

// NewGormCheckoutStore creates a new GormCheckoutStore
func NewGormCheckoutStore(db *gorm.DB) *GormCheckoutStore {
	return &GormCheckoutStore{db: db}
}

// SaveSaleWithInvoice writes the sale, its lines, the invoice, and its
// lines in one transaction. Either both documents commit or neither does.
func (s *GormCheckoutStore) SaveSaleWithInvoice(ctx context.Context, sale *trade.Sale, invoice *billing.Invoice) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		return tx.Create(invoice).Error
	})
}

// Ensure GormCheckoutStore implements CheckoutStore
var _ apptrade.CheckoutStore = (*GormCheckoutStore)(nil)
