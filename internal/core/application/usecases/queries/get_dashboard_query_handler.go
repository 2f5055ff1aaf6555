package queries

import (
	"context"

	"bakery/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetDashboardQueryHandler loads the order book and folds it into the revenue
// dashboard with the domain aggregator.
//
// Example:
//
//	handler := NewGetDashboardQueryHandler(db)
//	window, _ := services.NewWindow(monthStart, monthEnd)
//	query, _ := NewGetDashboardQuery(window, time.UTC)
//
//	dashboard, err := handler.Handle(ctx, query)
type GetDashboardQueryHandler struct {
	db         *gorm.DB
	aggregator services.RevenueAggregator
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		db:         db,
		aggregator: services.NewRevenueAggregator(),
	}
}

// Handle executes the dashboard query over the query's window.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	orders, err := loadAllOrders(ctx, h.db)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	summary := h.aggregator.Summarize(orders, query.Window())
	daily := h.aggregator.DailyRevenue(orders, query.Window(), query.Location())

	response := GetDashboardQueryResponse{
		TotalRevenue:      summary.TotalRevenue,
		TotalOrders:       summary.TotalOrders,
		AverageOrderValue: summary.AverageOrderValue,
		PendingCount:      summary.PendingCount,
		StatusBreakdown:   make(map[string]int, len(summary.StatusBreakdown)),
		DailyRevenue:      make([]DashboardDailyRevenue, 0, len(daily)),
	}

	for status, count := range summary.StatusBreakdown {
		response.StatusBreakdown[status.String()] = count
	}

	for _, point := range daily {
		response.DailyRevenue = append(response.DailyRevenue, DashboardDailyRevenue{
			Day:     point.Day,
			Revenue: point.Revenue,
		})
	}

	return response, nil
}
