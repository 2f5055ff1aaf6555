package order

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/pricing"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Customer holds the contact details attached to an order. The email address
// doubles as the customer's identity key for analytics.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Customization holds the free-text decoration choices of the quote wizard.
// None of the fields are validated beyond what the wizard itself enforces.
type Customization struct {
	Category            string
	Shape               string
	SpecialFonts        string
	SpecialInstructions string
}

// Order represents a custom cookie order in the system. It is the aggregate root
// that manages the order lifecycle from the quote wizard through fulfillment.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Quantity must be at least 1
//   - Description must not be empty
//   - Total amount must not be negative
//   - Status transitions follow the lifecycle rules in Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The total amount is computed once at creation from the pricing configuration
// in effect at that moment. After creation it becomes an independently editable
// field: an administrator may override it, permanently decoupling it from
// quantity. No invariant ties the two together after creation.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// displayID is the optional human-readable order number shown to customers
	displayID string

	// customer is the contact the order belongs to
	customer Customer

	// quantity is the number of cookies ordered (at least 1)
	quantity int

	// description is the customer's free-text description of the cookies
	description string

	// customization holds category, shape, fonts, and special instructions
	customization Customization

	// totalAmount is the priced total, snapshotted at creation
	totalAmount decimal.Decimal

	// status represents the current state in the order lifecycle
	status Status

	// items are the optional line items belonging to the order
	items []Item

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status, pricing it from the supplied
// quote. This is the entry point of the order lifecycle: the quote's total is
// snapshotted as the order's total amount and is never recomputed afterwards.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid)
//   - displayID: Optional human-readable order number (may be empty)
//   - customer: Contact details (name and email are required)
//   - quantity: Number of cookies (must be at least 1; callers clamp wizard input)
//   - description: Free-text description (must not be empty)
//   - customization: Decoration choices (not validated)
//   - quote: Pricing result for the same quantity
//   - items: Optional line items (each must be valid)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	displayID string,
	customer Customer,
	quantity int,
	description string,
	customization Customization,
	quote pricing.Quote,
	items []Item,
) (*Order, error) {
	now := time.Now()

	order := &Order{
		displayID:     displayID,
		customization: customization,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setQuantity(quantity),
		order.setDescription(description),
		order.setTotalAmount(quote.Total),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	if quote.Quantity != quantity {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quote",
			fmt.Errorf("quote is for quantity %d, order is for %d", quote.Quantity, quantity),
		)
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-pricing it.
// All invariants are re-validated so that corrupted rows cannot produce an
// order the rest of the system would trust.
func RestoreOrder(
	id kernel.UUID,
	displayID string,
	customer Customer,
	quantity int,
	description string,
	customization Customization,
	totalAmount decimal.Decimal,
	status Status,
	items []Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		displayID:     displayID,
		customization: customization,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setQuantity(quantity),
		order.setDescription(description),
		order.setTotalAmount(totalAmount),
		order.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DisplayID returns the human-readable order number, or "" if none was assigned.
func (o *Order) DisplayID() string {
	return o.displayID
}

// Customer returns the contact details attached to the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Quantity returns the number of cookies ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Description returns the customer's description of the cookies.
func (o *Order) Description() string {
	return o.description
}

// Customization returns the decoration choices made in the quote wizard.
func (o *Order) Customization() Customization {
	return o.customization
}

// TotalAmount returns the order's priced total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns when the order entered the system.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to a new lifecycle status.
//
// Only terminality is enforced: a completed or cancelled order rejects any
// change with InvalidTransitionError, while movement among pending, confirmed,
// and in_progress is unrestricted so administrators can correct mistakes.
// On rejection the order is left fully unchanged.
//
// Example:
//
//	if err := order.ChangeStatus(order.Confirmed); err != nil {
//	    var transitionErr *order.InvalidTransitionError
//	    if errors.As(err, &transitionErr) {
//	        // order is terminal
//	    }
//	}
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now()
	return nil
}

// SetTotalAmount overrides the order's total. This is the administrative
// escape hatch that permanently decouples the total from quantity; the only
// remaining rule is that the total must not be negative.
func (o *Order) SetTotalAmount(amount decimal.Decimal) error {
	if err := o.setTotalAmount(amount); err != nil {
		return err
	}

	o.updatedAt = time.Now()
	return nil
}

// UpdateDetails applies an administrative edit of the order's contact and
// descriptive fields. Quantity and total are untouched; use SetTotalAmount
// for price overrides.
func (o *Order) UpdateDetails(customer Customer, description string, customization Customization) error {
	if err := errors.Join(
		o.setCustomer(customer),
		o.setDescription(description),
	); err != nil {
		return err
	}

	o.customization = customization
	o.updatedAt = time.Now()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if customer.Name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if customer.Email == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	o.customer = customer
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setTotalAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%s is negative", amount),
		)
	}
	o.totalAmount = amount
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
