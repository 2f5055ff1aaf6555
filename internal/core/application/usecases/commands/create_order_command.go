package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
	ErrDescriptionIsRequired   = errors.New("description is required")
	ErrQuantityIsInvalid       = errors.New("quantity must be at least 1")
)

// CreateOrderCommand represents a priced-order request coming out of the
// customer quote wizard (or an administrator entering a phone order).
//
// The wizard silently floor-clamps quantity input to 1 before submitting;
// this command deliberately does not repeat that clamp and rejects
// non-positive quantities instead, so a missing clamp upstream is caught
// rather than papered over.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID,
//	    order.Customer{Name: "Jane Dough", Email: "jane@example.com"},
//	    24, "chocolate chip, nut free",
//	    order.Customization{Category: "birthday"}, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customer      order.Customer
	quantity      int
	description   string
	customization order.Customization
	items         []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new cookie order.
// Validates that the order ID is valid, the customer has a name and an email,
// the quantity is positive, and the description is not empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	quantity int,
	description string,
	customization order.Customization,
	items []order.Item,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customization: customization,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomer(customer),
		orderCommand.setQuantity(quantity),
		orderCommand.setDescription(description),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the customer contact details.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Quantity returns the number of cookies requested.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Description returns the free-text cookie description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Customization returns the decoration choices from the wizard.
func (c CreateOrderCommand) Customization() order.Customization {
	return c.customization
}

// Items returns the optional line items supplied with the order.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if customer.Name == "" {
		return ErrCustomerNameIsRequired
	}
	if customer.Email == "" {
		return ErrCustomerEmailIsRequired
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
