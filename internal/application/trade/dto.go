package trade

import (
	"time"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/trade"
)

// =============================================================================
// Sale DTOs
// =============================================================================

// SaleItemRequest is one cart line at checkout
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,min=1"`
	Price     float64   `json:"price" binding:"min=0"`
}

// CreateSaleRequest represents a register checkout
type CreateSaleRequest struct {
	LocationID uuid.UUID         `json:"location_id" binding:"required"`
	Method     string            `json:"method" binding:"required,oneof=cash card transfer qris"`
	Payment    float64           `json:"payment" binding:"min=0"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleItemResponse is one line of a recorded sale
type SaleItemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	Price     string    `json:"price"`
	Subtotal  string    `json:"subtotal"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID         uuid.UUID          `json:"id"`
	Number     string             `json:"number"`
	LocationID uuid.UUID          `json:"location_id"`
	Method     string             `json:"method"`
	Total      string             `json:"total"`
	Payment    string             `json:"payment"`
	Change     string             `json:"change"`
	InvoiceID  *uuid.UUID         `json:"invoice_id,omitempty"`
	Items      []SaleItemResponse `json:"items"`
	CreatedAt  time.Time          `json:"created_at"`
}

// SaleListFilter represents filter options for the sale list
type SaleListFilter struct {
	LocationID *uuid.UUID `form:"location_id"`
	Search     string     `form:"search"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToSaleResponse converts a domain Sale to SaleResponse
func ToSaleResponse(s *trade.Sale, invoiceID *uuid.UUID) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			Subtotal:  item.Subtotal.String(),
		}
	}
	return SaleResponse{
		ID:         s.ID,
		Number:     s.Number,
		LocationID: s.LocationID,
		Method:     string(s.Method),
		Total:      s.Total.String(),
		Payment:    s.Payment.String(),
		Change:     s.Change.String(),
		InvoiceID:  invoiceID,
		Items:      items,
		CreatedAt:  s.CreatedAt,
	}
}

// ToSaleResponses converts a slice of sales
func ToSaleResponses(sales []trade.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i], nil)
	}
	return responses
}

// =============================================================================
// Purchase DTOs
// =============================================================================

// PurchaseItemRequest is one line on a new purchase order
type PurchaseItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,min=1"`
	Price     float64   `json:"price" binding:"min=0"`
}

// CreatePurchaseRequest represents a new purchase order
type CreatePurchaseRequest struct {
	SupplierID uuid.UUID             `json:"supplier_id" binding:"required"`
	LocationID uuid.UUID             `json:"location_id" binding:"required"`
	TaxID      *uuid.UUID            `json:"tax_id"`
	Discount   float64               `json:"discount" binding:"min=0"`
	Shipping   float64               `json:"shipping" binding:"min=0"`
	Notes      string                `json:"notes" binding:"max=1000"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdatePurchaseStatusRequest changes a purchase order's settlement state
type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid unpaid"`
}

// PurchaseItemResponse is one line of a purchase order
type PurchaseItemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	Price     string    `json:"price"`
	Subtotal  string    `json:"subtotal"`
}

// PurchaseResponse represents a purchase order in API responses
type PurchaseResponse struct {
	ID         uuid.UUID              `json:"id"`
	Number     string                 `json:"number"`
	SupplierID uuid.UUID              `json:"supplier_id"`
	LocationID uuid.UUID              `json:"location_id"`
	TaxID      *uuid.UUID             `json:"tax_id"`
	Discount   string                 `json:"discount"`
	Shipping   string                 `json:"shipping"`
	Subtotal   string                 `json:"subtotal"`
	TaxAmount  string                 `json:"tax_amount"`
	Total      string                 `json:"total"`
	Status     string                 `json:"status"`
	Notes      string                 `json:"notes"`
	Items      []PurchaseItemResponse `json:"items"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// PurchaseListFilter represents filter options for the purchase list
type PurchaseListFilter struct {
	SupplierID *uuid.UUID `form:"supplier_id"`
	LocationID *uuid.UUID `form:"location_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=paid unpaid"`
	Search     string     `form:"search"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPurchaseResponse converts a domain Purchase to PurchaseResponse
func ToPurchaseResponse(p *trade.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = PurchaseItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			Subtotal:  item.Subtotal.String(),
		}
	}
	return PurchaseResponse{
		ID:         p.ID,
		Number:     p.Number,
		SupplierID: p.SupplierID,
		LocationID: p.LocationID,
		TaxID:      p.TaxID,
		Discount:   p.Discount.String(),
		Shipping:   p.Shipping.String(),
		Subtotal:   p.Subtotal.String(),
		TaxAmount:  p.TaxAmount.String(),
		Total:      p.Total.String(),
		Status:     string(p.Status),
		Notes:      p.Notes,
		Items:      items,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToPurchaseResponses converts a slice of purchases
func ToPurchaseResponses(purchases []trade.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToPurchaseResponse(&purchases[i])
	}
	return responses
}
