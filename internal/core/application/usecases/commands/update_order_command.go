package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrUpdateOrderCommandIsNotConstructed is returned when the command was not
	// created through its constructor.
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)

	// ErrTotalAmountIsNegative is returned when a total override is negative.
	ErrTotalAmountIsNegative = errors.New("total amount must not be negative")
)

// UpdateOrderCommand is an administrative edit of an order's contact and
// descriptive fields, with an optional total amount override.
//
// A nil totalAmount leaves the stored total untouched. A non-nil totalAmount
// replaces it outright, regardless of quantity: the override is the point of
// the field, and nothing re-links total to quantity afterwards.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customer      order.Customer
	description   string
	customization order.Customization
	totalAmount   *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an existing order.
// Validates the order ID, the customer contact, and the description; the
// override amount, when present, must not be negative.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	description string,
	customization order.Customization,
	totalAmount *decimal.Decimal,
) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		customization: customization,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setCustomer(customer),
		updateCommand.setDescription(description),
		updateCommand.setTotalAmount(totalAmount),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the replacement contact details.
func (c UpdateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Description returns the replacement cookie description.
func (c UpdateOrderCommand) Description() string {
	return c.description
}

// Customization returns the replacement decoration choices.
func (c UpdateOrderCommand) Customization() order.Customization {
	return c.customization
}

// TotalAmount returns the total override, or nil when the total is to be
// left as stored.
func (c UpdateOrderCommand) TotalAmount() *decimal.Decimal {
	return c.totalAmount
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomer(customer order.Customer) error {
	if customer.Name == "" {
		return ErrCustomerNameIsRequired
	}
	if customer.Email == "" {
		return ErrCustomerEmailIsRequired
	}

	c.customer = customer
	return nil
}

func (c *UpdateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *UpdateOrderCommand) setTotalAmount(totalAmount *decimal.Decimal) error {
	if totalAmount != nil && totalAmount.IsNegative() {
		return ErrTotalAmountIsNegative
	}

	c.totalAmount = totalAmount
	return nil
}
