package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/inventory"
)

// =============================================================================
// Adjustment DTOs
// =============================================================================

// AdjustmentItemRequest is one target quantity within an adjustment batch
type AdjustmentItemRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	NewQuantity int64     `json:"new_quantity"`
}

// CreateAdjustmentRequest represents a stock adjustment batch. Number
// and date are optional and default to generated values.
type CreateAdjustmentRequest struct {
	Number     string                  `json:"number" binding:"max=100"`
	Date       *time.Time              `json:"date"`
	LocationID uuid.UUID               `json:"location_id" binding:"required"`
	Note       string                  `json:"note" binding:"max=1000"`
	Items      []AdjustmentItemRequest `json:"items" binding:"required,min=1,dive"`
}

// AdjustmentItemResponse is one audited item of an adjustment
type AdjustmentItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	OldQuantity int64     `json:"old_quantity"`
	NewQuantity int64     `json:"new_quantity"`
	Difference  int64     `json:"difference"`
}

// AdjustmentResponse represents an adjustment in API responses
type AdjustmentResponse struct {
	ID         uuid.UUID                `json:"id"`
	Number     string                   `json:"number"`
	Date       time.Time                `json:"date"`
	LocationID uuid.UUID                `json:"location_id"`
	Note       string                   `json:"note"`
	Items      []AdjustmentItemResponse `json:"items"`
	CreatedAt  time.Time                `json:"created_at"`
}

// AdjustmentListFilter represents filter options for the adjustment list
type AdjustmentListFilter struct {
	LocationID *uuid.UUID `form:"location_id"`
	Search     string     `form:"search"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToAdjustmentResponse converts a domain StockAdjustment to AdjustmentResponse
func ToAdjustmentResponse(a *inventory.StockAdjustment) AdjustmentResponse {
	items := make([]AdjustmentItemResponse, len(a.Items))
	for i, item := range a.Items {
		items[i] = AdjustmentItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			OldQuantity: item.OldQuantity,
			NewQuantity: item.NewQuantity,
			Difference:  item.Difference,
		}
	}
	return AdjustmentResponse{
		ID:         a.ID,
		Number:     a.Number,
		Date:       a.Date,
		LocationID: a.LocationID,
		Note:       a.Note,
		Items:      items,
		CreatedAt:  a.CreatedAt,
	}
}

// ToAdjustmentResponses converts a slice of adjustments
func ToAdjustmentResponses(adjustments []inventory.StockAdjustment) []AdjustmentResponse {
	responses := make([]AdjustmentResponse, len(adjustments))
	for i := range adjustments {
		responses[i] = ToAdjustmentResponse(&adjustments[i])
	}
	return responses
}

// =============================================================================
// Stock DTOs
// =============================================================================

// StockOverviewFilter selects the location for the stock overview
type StockOverviewFilter struct {
	LocationID uuid.UUID `form:"location_id" binding:"required"`
}

// StockRowResponse is one product's on-hand quantity at a location
type StockRowResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	ImageURL  string    `json:"image_url"`
	Quantity  int64     `json:"quantity"`
}

// ToStockRowResponses converts ledger read models to responses
func ToStockRowResponses(rows []inventory.LocationStock) []StockRowResponse {
	responses := make([]StockRowResponse, len(rows))
	for i, r := range rows {
		responses[i] = StockRowResponse{
			ProductID: r.ProductID,
			Name:      r.Name,
			SKU:       r.SKU,
			ImageURL:  r.ImageURL,
			Quantity:  r.Quantity,
		}
	}
	return responses
}
