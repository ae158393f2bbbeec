package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/tokopos/backend/internal/application/inventory"
)

// AdjustmentHandler handles stock adjustment API endpoints
type AdjustmentHandler struct {
	BaseHandler
	adjustmentService *inventoryapp.AdjustmentService
}

// NewAdjustmentHandler creates a new AdjustmentHandler
func NewAdjustmentHandler(adjustmentService *inventoryapp.AdjustmentService) *AdjustmentHandler {
	return &AdjustmentHandler{adjustmentService: adjustmentService}
}

// Create applies a stock adjustment batch. All items succeed or none do.
func (h *AdjustmentHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	adjustment, err := h.adjustmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, adjustment)
}

// GetByID retrieves an adjustment with its audited items
func (h *AdjustmentHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	adjustment, err := h.adjustmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, adjustment)
}

// List retrieves a paginated list of adjustments
func (h *AdjustmentHandler) List(c *gin.Context) {
	var filter inventoryapp.AdjustmentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	adjustments, total, err := h.adjustmentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, adjustments, total, filter.Page, filter.PageSize)
}

// RegisterRoutes registers all adjustment routes
func (h *AdjustmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	adjustments := rg.Group("/adjustments")
	{
		adjustments.GET("", h.List)
		adjustments.GET("/:id", h.GetByID)
		adjustments.POST("", h.Create)
	}
}
