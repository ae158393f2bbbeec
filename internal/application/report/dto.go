package report

import (
	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/report"
)

// DashboardResponse is the aggregate view behind the dashboard screen
type DashboardResponse struct {
	TotalProducts   int64                `json:"total_products"`
	TotalCategories int64                `json:"total_categories"`
	TotalCustomers  int64                `json:"total_customers"`
	TotalInvoices   int64                `json:"total_invoices"`
	TodayRevenue    string               `json:"today_revenue"`
	DailySales      []DailySalesResponse `json:"daily_sales"`
	TopProducts     []TopProductResponse `json:"top_products"`
}

// DailySalesResponse is one day in the trailing sales series
type DailySalesResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// TopProductResponse is one entry in today's best-seller ranking
type TopProductResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	ImageURL  string    `json:"image_url,omitempty"`
	Price     string    `json:"price"`
	Sold      int64     `json:"sold"`
}

// ToTopProductResponses converts domain rankings to responses
func ToTopProductResponses(products []report.TopProduct) []TopProductResponse {
	responses := make([]TopProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, TopProductResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			SKU:       p.SKU,
			ImageURL:  p.ImageURL,
			Price:     p.Price.String(),
			Sold:      p.Sold,
		})
	}
	return responses
}
