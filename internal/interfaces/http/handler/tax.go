package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/tokopos/backend/internal/application/billing"
)

// TaxHandler handles tax rate API endpoints
type TaxHandler struct {
	BaseHandler
	taxService *billingapp.TaxService
}

// NewTaxHandler creates a new TaxHandler
func NewTaxHandler(taxService *billingapp.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

// Create creates a new tax rate
func (h *TaxHandler) Create(c *gin.Context) {
	var req billingapp.CreateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	tax, err := h.taxService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, tax)
}

// GetByID retrieves a tax rate by ID
func (h *TaxHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	tax, err := h.taxService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tax)
}

// List retrieves a paginated list of tax rates
func (h *TaxHandler) List(c *gin.Context) {
	var filter billingapp.TaxListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	taxes, total, err := h.taxService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, taxes, total, filter.Page, filter.PageSize)
}

// Update updates a tax rate
func (h *TaxHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req billingapp.UpdateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	tax, err := h.taxService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tax)
}

// Delete deletes an unreferenced tax rate
func (h *TaxHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taxService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all tax routes
func (h *TaxHandler) RegisterRoutes(rg *gin.RouterGroup) {
	taxes := rg.Group("/taxes")
	{
		taxes.GET("", h.List)
		taxes.GET("/:id", h.GetByID)
		taxes.POST("", h.Create)
		taxes.PUT("/:id", h.Update)
		taxes.DELETE("/:id", h.Delete)
	}
}
