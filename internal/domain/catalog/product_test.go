package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates a product with the given SKU", func(t *testing.T) {
		p, err := NewProduct("KOPI-001", "Kopi Susu", decimal.NewFromInt(15000))
		require.NoError(t, err)
		assert.Equal(t, "KOPI-001", p.SKU)
		assert.Equal(t, "Kopi Susu", p.Name)
		assert.NotEqual(t, uuid.Nil, p.ID)
	})

	t.Run("generates a SKU when none is given", func(t *testing.T) {
		p, err := NewProduct("", "Teh Manis", decimal.NewFromInt(5000))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(p.SKU, "SKU-"))
		assert.Len(t, p.SKU, 12)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := NewProduct("SKU-1", "", decimal.NewFromInt(100))
		assert.Error(t, err)
	})

	t.Run("rejects an overlong name", func(t *testing.T) {
		_, err := NewProduct("SKU-1", strings.Repeat("a", 201), decimal.NewFromInt(100))
		assert.Error(t, err)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		_, err := NewProduct("SKU-1", "Item", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("rejects SKUs with invalid characters", func(t *testing.T) {
		for _, sku := range []string{"SKU 1", "SKU#1", "SKU/1"} {
			_, err := NewProduct(sku, "Item", decimal.NewFromInt(100))
			assert.Error(t, err, "sku %q", sku)
		}
	})
}

func TestProductUpdate(t *testing.T) {
	p, err := NewProduct("KOPI-001", "Kopi Susu", decimal.NewFromInt(15000))
	require.NoError(t, err)

	t.Run("changes name and price", func(t *testing.T) {
		require.NoError(t, p.Update("Kopi Susu Gula Aren", decimal.NewFromInt(18000)))
		assert.Equal(t, "Kopi Susu Gula Aren", p.Name)
		assert.True(t, p.Price.Equal(decimal.NewFromInt(18000)))
	})

	t.Run("rejects invalid updates without mutating", func(t *testing.T) {
		assert.Error(t, p.Update("", decimal.NewFromInt(100)))
		assert.Error(t, p.Update("ok", decimal.NewFromInt(-1)))
		assert.Equal(t, "Kopi Susu Gula Aren", p.Name)
	})

	t.Run("UpdateSKU validates the new SKU", func(t *testing.T) {
		require.NoError(t, p.UpdateSKU("KOPI-002"))
		assert.Equal(t, "KOPI-002", p.SKU)
		assert.Error(t, p.UpdateSKU(""))
		assert.Error(t, p.UpdateSKU("has space"))
	})

	t.Run("AssignCategory attaches and detaches", func(t *testing.T) {
		categoryID := uuid.New()
		p.AssignCategory(&categoryID)
		assert.Equal(t, &categoryID, p.CategoryID)
		p.AssignCategory(nil)
		assert.Nil(t, p.CategoryID)
	})
}
