package queries

import (
	"context"

	"bakery/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetCustomerSummariesQueryHandler loads the order book and folds it into
// per-customer summaries with the domain aggregator, so the read side and any
// future write-side use of the grouping rules cannot drift apart.
type GetCustomerSummariesQueryHandler struct {
	db         *gorm.DB
	aggregator services.CustomerAggregator
}

// NewGetCustomerSummariesQueryHandler creates a handler for customer summary queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerSummariesQueryHandler(db *gorm.DB) GetCustomerSummariesQueryHandler {
	return GetCustomerSummariesQueryHandler{
		db:         db,
		aggregator: services.NewCustomerAggregator(),
	}
}

// Handle executes the query. Summaries come back sorted by last order date,
// most recent customer first.
func (h GetCustomerSummariesQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerSummariesQuery,
) ([]GetCustomerSummariesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := loadAllOrders(ctx, h.db)
	if err != nil {
		return nil, err
	}

	summaries := h.aggregator.Aggregate(orders)

	responses := make([]GetCustomerSummariesQueryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, GetCustomerSummariesQueryResponse{
			Email:         summary.Email,
			Name:          summary.Name,
			Phone:         summary.Phone,
			TotalOrders:   summary.TotalOrders,
			TotalSpent:    summary.TotalSpent,
			LastOrderDate: summary.LastOrderDate,
		})
	}

	return responses, nil
}
