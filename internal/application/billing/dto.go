package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/billing"
)

// =============================================================================
// Invoice DTOs
// =============================================================================

// InvoiceItemRequest is one billed line on a new or updated invoice
type InvoiceItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,min=1"`
	Price     float64   `json:"price" binding:"min=0"`
}

// CreateInvoiceRequest represents a hand-raised invoice
type CreateInvoiceRequest struct {
	CustomerID *uuid.UUID           `json:"customer_id"`
	LocationID *uuid.UUID           `json:"location_id"`
	TaxID      *uuid.UUID           `json:"tax_id"`
	Discount   float64              `json:"discount" binding:"min=0"`
	Shipping   float64              `json:"shipping" binding:"min=0"`
	Notes      string               `json:"notes" binding:"max=1000"`
	DueDate    *time.Time           `json:"due_date"`
	Items      []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents an invoice edit. Items replace the
// existing lines wholesale when present.
type UpdateInvoiceRequest struct {
	CustomerID *uuid.UUID           `json:"customer_id"`
	TaxID      *uuid.UUID           `json:"tax_id"`
	Discount   *float64             `json:"discount" binding:"omitempty,min=0"`
	Shipping   *float64             `json:"shipping" binding:"omitempty,min=0"`
	Notes      *string              `json:"notes" binding:"omitempty,max=1000"`
	DueDate    *time.Time           `json:"due_date"`
	Items      []InvoiceItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// UpdateInvoiceStatusRequest changes an invoice's settlement state
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid unpaid"`
}

// InvoiceItemResponse is one billed line of an invoice
type InvoiceItemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	Price     string    `json:"price"`
	Subtotal  string    `json:"subtotal"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID          uuid.UUID             `json:"id"`
	Number      string                `json:"number"`
	CustomerID  *uuid.UUID            `json:"customer_id"`
	LocationID  *uuid.UUID            `json:"location_id"`
	SaleID      *uuid.UUID            `json:"sale_id"`
	TaxID       *uuid.UUID            `json:"tax_id"`
	Discount    string                `json:"discount"`
	Shipping    string                `json:"shipping"`
	TotalAmount string                `json:"total_amount"`
	Status      string                `json:"status"`
	Notes       string                `json:"notes"`
	DueDate     *time.Time            `json:"due_date"`
	Items       []InvoiceItemResponse `json:"items"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// InvoiceListFilter represents filter options for the invoice list
type InvoiceListFilter struct {
	CustomerID *uuid.UUID `form:"customer_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=paid unpaid"`
	Search     string     `form:"search"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			Subtotal:  item.Subtotal.String(),
		}
	}
	return InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		CustomerID:  inv.CustomerID,
		LocationID:  inv.LocationID,
		SaleID:      inv.SaleID,
		TaxID:       inv.TaxID,
		Discount:    inv.Discount.String(),
		Shipping:    inv.Shipping.String(),
		TotalAmount: inv.TotalAmount.String(),
		Status:      string(inv.Status),
		Notes:       inv.Notes,
		DueDate:     inv.DueDate,
		Items:       items,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

// ToInvoiceResponses converts a slice of invoices
func ToInvoiceResponses(invoices []billing.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}

// =============================================================================
// Tax DTOs
// =============================================================================

// CreateTaxRequest represents a request to create a tax rate
type CreateTaxRequest struct {
	Name string  `json:"name" binding:"required,min=1,max=100"`
	Rate float64 `json:"rate" binding:"min=0,max=100"`
}

// UpdateTaxRequest represents a request to update a tax rate
type UpdateTaxRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Rate     *float64 `json:"rate" binding:"omitempty,min=0,max=100"`
	IsActive *bool    `json:"is_active"`
}

// TaxResponse represents a tax rate in API responses
type TaxResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Rate      string    `json:"rate"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaxListFilter represents filter options for the tax list
type TaxListFilter struct {
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToTaxResponse converts a domain Tax to TaxResponse
func ToTaxResponse(t *billing.Tax) TaxResponse {
	return TaxResponse{
		ID:        t.ID,
		Name:      t.Name,
		Rate:      t.Rate.String(),
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTaxResponses converts a slice of taxes
func ToTaxResponses(taxes []billing.Tax) []TaxResponse {
	responses := make([]TaxResponse, len(taxes))
	for i, t := range taxes {
		responses[i] = ToTaxResponse(&t)
	}
	return responses
}
