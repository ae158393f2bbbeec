package inventory

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockAdjustment(t *testing.T) {
	locationID := uuid.New()

	t.Run("keeps the caller's number and date", func(t *testing.T) {
		date := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		adj, err := NewStockAdjustment(locationID, "ADJ-MANUAL-1", date, "monthly count")
		require.NoError(t, err)
		assert.Equal(t, "ADJ-MANUAL-1", adj.Number)
		assert.Equal(t, date, adj.Date)
		assert.Equal(t, "monthly count", adj.Note)
	})

	t.Run("generates number and date when empty", func(t *testing.T) {
		adj, err := NewStockAdjustment(locationID, "", time.Time{}, "")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(adj.Number, "ADJ-"))
		assert.False(t, adj.Date.IsZero())
	})

	t.Run("rejects a missing location", func(t *testing.T) {
		_, err := NewStockAdjustment(uuid.Nil, "", time.Time{}, "")
		assert.Error(t, err)
	})
}

func TestRecordItem(t *testing.T) {
	adj, err := NewStockAdjustment(uuid.New(), "", time.Time{}, "")
	require.NoError(t, err)

	productID := uuid.New()
	adj.RecordItem(productID, 10, 7)

	require.Equal(t, 1, adj.ItemCount())
	item := adj.Items[0]
	assert.Equal(t, adj.ID, item.AdjustmentID)
	assert.Equal(t, productID, item.ProductID)
	assert.Equal(t, int64(10), item.OldQuantity)
	assert.Equal(t, int64(7), item.NewQuantity)
	assert.Equal(t, int64(-3), item.Difference)

	// shortages count up as well
	adj.RecordItem(uuid.New(), 0, 25)
	assert.Equal(t, int64(25), adj.Items[1].Difference)
}

func TestValidateTargets(t *testing.T) {
	productID := uuid.New()

	t.Run("accepts distinct products", func(t *testing.T) {
		assert.NoError(t, ValidateTargets([]AdjustmentTarget{
			{ProductID: productID, NewQuantity: 5},
			{ProductID: uuid.New(), NewQuantity: 0},
		}))
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		assert.Error(t, ValidateTargets(nil))
	})

	t.Run("rejects a missing product", func(t *testing.T) {
		assert.Error(t, ValidateTargets([]AdjustmentTarget{{ProductID: uuid.Nil}}))
	})

	t.Run("rejects duplicate products", func(t *testing.T) {
		err := ValidateTargets([]AdjustmentTarget{
			{ProductID: productID, NewQuantity: 5},
			{ProductID: productID, NewQuantity: 8},
		})
		assert.Error(t, err)
	})
}

func TestStockEntry(t *testing.T) {
	entry := NewStockEntry(uuid.New(), uuid.New(), 10)
	assert.Equal(t, int64(10), entry.Quantity)

	// negative quantities are representable; reconciliation happens via
	// the adjustment workflow
	entry.SetQuantity(-2)
	assert.Equal(t, int64(-2), entry.Quantity)
}
