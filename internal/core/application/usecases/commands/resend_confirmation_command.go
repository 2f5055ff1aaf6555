package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

// ErrResendConfirmationCommandIsNotConstructed is returned when the command
// was not created through its constructor.
var ErrResendConfirmationCommandIsNotConstructed = errors.New(
	"ResendConfirmationCommand must be created via NewResendConfirmationCommand constructor",
)

// ResendConfirmationCommand re-sends the order confirmation to the customer.
// Unlike the creation-time sends, the resend is synchronous: the
// administrator triggering it is waiting to hear whether it worked.
type ResendConfirmationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResendConfirmationCommand creates a command to resend a confirmation.
func NewResendConfirmationCommand(orderID kernel.UUID) (ResendConfirmationCommand, error) {
	resendCommand := ResendConfirmationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resendCommand.setOrderID(orderID); err != nil {
		return ResendConfirmationCommand{}, err
	}

	return resendCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResendConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrResendConfirmationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose confirmation is resent.
func (c ResendConfirmationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResendConfirmationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
