package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// ResendConfirmationCommandHandler handles administrative confirmation resends.
// The payload is rebuilt from the order's current state, so a resend after an
// edit reflects the edited values, not the original creation snapshot.
type ResendConfirmationCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewResendConfirmationCommandHandler creates a handler for confirmation resends.
func NewResendConfirmationCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) ResendConfirmationCommandHandler {
	return ResendConfirmationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the resend command.
// Loads the order and sends the confirmation synchronously; a dispatch
// failure surfaces to the caller as the notifier's DownstreamError.
func (h *ResendConfirmationCommandHandler) Handle(ctx context.Context, cmd ResendConfirmationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	return h.notifier.Send(
		ctx,
		ports.TemplateOrderConfirmation,
		orderAggregate.Customer().Email,
		notificationPayload(orderAggregate),
	)
}
