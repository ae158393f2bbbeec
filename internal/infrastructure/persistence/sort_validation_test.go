package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	t.Run("accepts asc in any case", func(t *testing.T) {
		assert.Equal(t, "ASC", ValidateSortOrder("asc"))
		assert.Equal(t, "ASC", ValidateSortOrder(" ASC "))
	})

	t.Run("defaults to DESC", func(t *testing.T) {
		assert.Equal(t, "DESC", ValidateSortOrder(""))
		assert.Equal(t, "DESC", ValidateSortOrder("desc"))
		assert.Equal(t, "DESC", ValidateSortOrder("sideways"))
		assert.Equal(t, "DESC", ValidateSortOrder("asc; DROP TABLE products"))
	})
}

func TestValidateSortField(t *testing.T) {
	t.Run("accepts whitelisted fields", func(t *testing.T) {
		assert.Equal(t, "sku", ValidateSortField("sku", ProductSortFields, "created_at"))
		assert.Equal(t, "price", ValidateSortField(" price ", ProductSortFields, "created_at"))
	})

	t.Run("falls back to the default for anything else", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("", ProductSortFields, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("quantity", ProductSortFields, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("sku, price", ProductSortFields, "created_at"))
		assert.Equal(t, "date", ValidateSortField("1; DELETE FROM stock_entries", AdjustmentSortFields, "date"))
	})
}
