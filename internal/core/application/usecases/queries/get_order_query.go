package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrGetOrderQueryIsNotConstructed is returned when the query was not created
// through its constructor.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order by ID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one line item of an order view.
type OrderItemResponse struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// GetOrderQueryResponse is the full read-side view of one order.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	DisplayID           string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	Quantity            int
	Description         string
	Category            string
	Shape               string
	SpecialFonts        string
	SpecialInstructions string
	TotalAmount         decimal.Decimal
	Status              string
	Items               []OrderItemResponse
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
