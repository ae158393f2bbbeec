package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/catalog"
)

// =============================================================================
// Product DTOs
// =============================================================================

// CreateProductRequest represents a request to create a product.
// SKU may be left empty; a unique one is generated.
type CreateProductRequest struct {
	SKU         string     `json:"sku" binding:"max=100"`
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Price       float64    `json:"price" binding:"min=0"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url" binding:"omitempty,url"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	SKU         *string    `json:"sku" binding:"omitempty,min=1,max=100"`
	Name        *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Price       *float64   `json:"price" binding:"omitempty,min=0"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"image_url"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

// ProductResponse represents a product in API responses. TotalStock is
// derived from the stock ledger at read time.
type ProductResponse struct {
	ID          uuid.UUID  `json:"id"`
	SKU         string     `json:"sku"`
	Name        string     `json:"name"`
	Price       string     `json:"price"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	CategoryID  *uuid.UUID `json:"category_id"`
	TotalStock  int64      `json:"total_stock"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product, totalStock int64) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Price:       p.Price.String(),
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		TotalStock:  totalStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// =============================================================================
// Category DTOs
// =============================================================================

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=200"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// UpdateCategoryRequest represents a request to rename a category
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// MoveCategoryRequest represents a request to re-parent a category.
// A nil parent moves the category to the top level.
type MoveCategoryRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parent_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CategoryListFilter represents filter options for the category list
type CategoryListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(&c)
	}
	return responses
}
