package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/tokopos/backend/internal/application/report"
)

// ReportHandler handles dashboard report endpoints
type ReportHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(dashboardService *reportapp.DashboardService) *ReportHandler {
	return &ReportHandler{dashboardService: dashboardService}
}

// Dashboard returns entity counts, today's revenue, the trailing
// seven-day sales series, and today's best sellers
func (h *ReportHandler) Dashboard(c *gin.Context) {
	resp, err := h.dashboardService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
	}
}
