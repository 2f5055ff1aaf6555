package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrListOrdersQueryIsNotConstructed is returned when the query was not
// created through its constructor.
var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the order book for the admin list view,
// optionally filtered to a single status.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListOrdersInStatusQuery creates a query for the orders in one status.
func NewListOrdersInStatusQuery(status order.Status) (ListOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{status: &status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when the query covers all orders.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// ListOrdersQueryResponse is one row of the admin order list.
// Line items are not included; the detail view loads them separately.
type ListOrdersQueryResponse struct {
	ID            kernel.UUID
	DisplayID     string
	CustomerName  string
	CustomerEmail string
	Quantity      int
	Description   string
	TotalAmount   decimal.Decimal
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
