package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/domain/report"
)

const (
	dailySalesDays  = 7
	topProductCount = 5
	dayFormat       = "2006-01-02"
)

// DashboardService assembles the store dashboard: entity counts,
// today's revenue, a trailing seven-day sales series, and today's
// best sellers
type DashboardService struct {
	dashboardRepo report.DashboardRepository
	logger        *zap.Logger
	now           func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardRepo report.DashboardRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// Dashboard builds the dashboard view. The sales series always spans
// seven days ending today; days without invoices report a zero total.
func (s *DashboardService) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	now := s.now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)
	weekStart := startOfToday.AddDate(0, 0, -(dailySalesDays - 1))

	counts, err := s.dashboardRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	todayRevenue, err := s.dashboardRepo.RevenueBetween(ctx, startOfToday, startOfTomorrow)
	if err != nil {
		return nil, err
	}

	daily, err := s.dashboardRepo.DailyRevenue(ctx, weekStart, startOfTomorrow)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.dashboardRepo.TopProducts(ctx, startOfToday, startOfTomorrow, topProductCount)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		TotalProducts:   counts.Products,
		TotalCategories: counts.Categories,
		TotalCustomers:  counts.Customers,
		TotalInvoices:   counts.Invoices,
		TodayRevenue:    todayRevenue.String(),
		DailySales:      fillDailySeries(daily, weekStart, dailySalesDays),
		TopProducts:     ToTopProductResponses(topProducts),
	}, nil
}

// fillDailySeries expands sparse per-day totals into a contiguous
// series of the given length starting at from
func fillDailySeries(rows []report.DailyRevenue, from time.Time, days int) []DailySalesResponse {
	byDay := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		byDay[row.Date.Format(dayFormat)] = row.Total
	}

	series := make([]DailySalesResponse, 0, days)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i).Format(dayFormat)
		total, ok := byDay[day]
		if !ok {
			total = decimal.Zero
		}
		series = append(series, DailySalesResponse{Date: day, Total: total.String()})
	}
	return series
}
