package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/tokopos/backend/internal/application/inventory"
)

// StockHandler handles stock ledger read endpoints
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// LocationOverview lists every product with its on-hand quantity at a location
func (h *StockHandler) LocationOverview(c *gin.Context) {
	var filter inventoryapp.StockOverviewFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	rows, err := h.stockService.LocationOverview(c.Request.Context(), filter.LocationID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rows)
}

// Quantity returns the on-hand quantity of one product at one location
func (h *StockHandler) Quantity(c *gin.Context) {
	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		h.BadRequest(c, "Invalid product_id format")
		return
	}
	locationID, err := uuid.Parse(c.Query("location_id"))
	if err != nil {
		h.BadRequest(c, "Invalid location_id format")
		return
	}

	qty, err := h.stockService.Quantity(c.Request.Context(), productID, locationID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{
		"product_id":  productID,
		"location_id": locationID,
		"quantity":    qty,
	})
}

// RegisterRoutes registers all stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock")
	{
		stock.GET("", h.LocationOverview)
		stock.GET("/quantity", h.Quantity)
	}
}
