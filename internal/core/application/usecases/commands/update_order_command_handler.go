package commands

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles administrative edits of existing orders.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory)
//	override := decimal.NewFromFloat(99.00)
//	cmd, _ := NewUpdateOrderCommand(orderID, customer, "gluten free batch", customization, &override)
//
//	updated, err := handler.Handle(ctx, cmd)
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order edit operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit within a transaction.
// Retrieves the order, applies the detail changes and the optional total
// override, and persists the result. Status and quantity are never touched
// by this command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = orderAggregate.UpdateDetails(cmd.Customer(), cmd.Description(), cmd.Customization()); err != nil {
		return nil, err
	}

	if override := cmd.TotalAmount(); override != nil {
		if err = orderAggregate.SetTotalAmount(*override); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderAggregate, nil
}
