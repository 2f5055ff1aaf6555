package queries

import (
	"errors"

	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrGetQuoteQueryIsNotConstructed is returned when the query was not created
// through its constructor.
var ErrGetQuoteQueryIsNotConstructed = errors.New(
	"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
)

// GetQuoteQuery prices a quantity against the configuration currently in
// effect, without creating anything. This backs the quote wizard's live
// price display.
//
// The wizard semantics apply here rather than the stricter order rules:
// a quantity below one is silently clamped to one.
type GetQuoteQuery struct { //nolint:recvcheck //using for validation
	quantity int

	guard guard.ConstructorGuard
}

// NewGetQuoteQuery creates a quote query, clamping the quantity to at least 1.
func NewGetQuoteQuery(quantity int) GetQuoteQuery {
	if quantity < 1 {
		quantity = 1
	}

	return GetQuoteQuery{quantity: quantity, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

// Quantity returns the clamped quantity to price.
func (q GetQuoteQuery) Quantity() int {
	return q.quantity
}

// GetQuoteQueryResponse is the priced result shown in the quote wizard.
type GetQuoteQueryResponse struct {
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	Discount  decimal.Decimal
}
