package commands

import (
	"errors"
	"time"

	"bakery/internal/pkg/guard"
)

var (
	// ErrRemindPendingOrdersCommandIsNotConstructed is returned when the
	// command was not created through its constructor.
	ErrRemindPendingOrdersCommandIsNotConstructed = errors.New(
		"RemindPendingOrdersCommand must be created via NewRemindPendingOrdersCommand constructor",
	)

	// ErrOlderThanIsInvalid is returned when the staleness threshold is not positive.
	ErrOlderThanIsInvalid = errors.New("olderThan must be a positive duration")
)

// RemindPendingOrdersCommand nudges the operator about orders that have sat
// in pending longer than the staleness threshold. Issued on a schedule by the
// reminder job rather than by a user.
type RemindPendingOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemindPendingOrdersCommand creates a command to remind about stale
// pending orders. The threshold must be positive.
func NewRemindPendingOrdersCommand(olderThan time.Duration) (RemindPendingOrdersCommand, error) {
	remindCommand := RemindPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := remindCommand.setOlderThan(olderThan); err != nil {
		return RemindPendingOrdersCommand{}, err
	}

	return remindCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemindPendingOrdersCommandIsNotConstructed)
}

// OlderThan returns how long an order must have been pending to qualify.
func (c RemindPendingOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *RemindPendingOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrOlderThanIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
