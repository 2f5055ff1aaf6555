package commands

import (
	"context"

	"bakery/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles permanent order deletion.
//
// Deletion runs as two separate statements, items first, then the order row,
// each on the main connection rather than inside a shared transaction. The
// steps are therefore independently durable, and a failure between them
// leaves an order without items. That outcome is reported as a
// PartialFailureError so the caller knows the record needs attention instead
// of assuming the delete simply failed.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Verifies the order exists, deletes its items, then deletes the order row.
// Returns PartialFailureError when the second step fails after the first
// succeeded.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	orderRepo := uow.OrderRepository()

	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.DeleteItems(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return errs.NewPartialFailureErrorWithCause("delete order", cmd.OrderID().String(), err)
	}

	return nil
}
