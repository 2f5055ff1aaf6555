package queries

import (
	"errors"
	"time"

	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrGetCustomerSummariesQueryIsNotConstructed is returned when the query was
// not created through its constructor.
var ErrGetCustomerSummariesQueryIsNotConstructed = errors.New(
	"GetCustomerSummariesQuery must be created via NewGetCustomerSummariesQuery constructor",
)

// GetCustomerSummariesQuery retrieves the derived per-customer view of the
// order book. This is a parameterless query; the grouping and totals are
// folded on demand from the orders themselves.
type GetCustomerSummariesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomerSummariesQuery creates a query for customer summaries.
func NewGetCustomerSummariesQuery() GetCustomerSummariesQuery {
	return GetCustomerSummariesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerSummariesQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerSummariesQueryIsNotConstructed)
}

// GetCustomerSummariesQueryResponse is one customer's aggregated view.
type GetCustomerSummariesQueryResponse struct {
	Email         string
	Name          string
	Phone         string
	TotalOrders   int
	TotalSpent    decimal.Decimal
	LastOrderDate time.Time
}
