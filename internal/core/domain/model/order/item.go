package order

import (
	"errors"
	"fmt"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of an order: a quantity of one kind of cookie at a
// unit price. Items are owned by exactly one order and share its lifetime.
//
// The line total is derived from quantity and unit price and is never stored
// independently.
type Item struct {
	quantity    int
	unitPrice   decimal.Decimal
	description string

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
//
// Parameters:
//   - quantity: Number of cookies on the line (must be >= 1)
//   - unitPrice: Price per cookie (must not be negative)
//   - description: What the line is for (must not be empty)
func NewItem(quantity int, unitPrice decimal.Decimal, description string) (Item, error) {
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}

	if description == "" {
		return Item{}, errs.NewValueIsRequiredError("description")
	}

	return Item{
		quantity:    quantity,
		unitPrice:   unitPrice,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Quantity returns the number of cookies on the line.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per cookie on the line.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Description returns what the line is for.
func (i Item) Description() string {
	return i.description
}

// LineTotal returns quantity multiplied by unit price.
// The value is derived on demand and never persisted.
func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
