package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/tokopos/backend/internal/application/partner"
)

// LocationHandler handles location API endpoints
type LocationHandler struct {
	BaseHandler
	locationService *partnerapp.LocationService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locationService *partnerapp.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// Create creates a new location
func (h *LocationHandler) Create(c *gin.Context) {
	var req partnerapp.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, location)
}

// GetByID retrieves a location by ID
func (h *LocationHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	location, err := h.locationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, location)
}

// List retrieves a paginated list of locations
func (h *LocationHandler) List(c *gin.Context) {
	var filter partnerapp.LocationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	locations, total, err := h.locationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, locations, total, filter.Page, filter.PageSize)
}

// Update updates a location
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req partnerapp.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	location, err := h.locationService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, location)
}

// Activate marks a location as active
func (h *LocationHandler) Activate(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	location, err := h.locationService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, location)
}

// Deactivate marks a location as inactive
func (h *LocationHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	location, err := h.locationService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, location)
}

// Delete deletes a location without stock or transaction history
func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.locationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all location routes
func (h *LocationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	locations := rg.Group("/locations")
	{
		locations.GET("", h.List)
		locations.GET("/:id", h.GetByID)
		locations.POST("", h.Create)
		locations.PUT("/:id", h.Update)
		locations.POST("/:id/activate", h.Activate)
		locations.POST("/:id/deactivate", h.Deactivate)
		locations.DELETE("/:id", h.Delete)
	}
}
