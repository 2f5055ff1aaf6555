package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the order against the current pricing configuration, persists it in
// "pending" status, then dispatches the operator alert and the customer
// confirmation as fire-and-forget sends.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, cfg.AdminEmail, logger)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewCreateOrderCommand(orderID, customer, 24, "sugar cookies", customization, nil)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending; notifications are on their way
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	adminEmail string
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence, a notifier for the two
// creation notifications, and the operator address the alert goes to.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	adminEmail string,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Handle processes the order creation command.
// Quotes the requested quantity against the stored pricing configuration so
// the persisted total always reflects the configuration at creation time.
// The commit completes before any notification is dispatched; a lost email
// never loses an order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	config, err := uow.PricingConfigRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	quote := config.Quote(cmd.Quantity())

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		displayID(cmd.OrderID()),
		cmd.Customer(),
		cmd.Quantity(),
		cmd.Description(),
		cmd.Customization(),
		quote,
		cmd.Items(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	payload := notificationPayload(newOrder)
	dispatchAsync(h.notifier, h.logger, ports.TemplateAdminOrderAlert, h.adminEmail, payload)
	dispatchAsync(h.notifier, h.logger, ports.TemplateOrderConfirmation, newOrder.Customer().Email, payload)

	return newOrder, nil
}

// displayID derives the short human-readable order number shown to customers
// and printed in notifications.
func displayID(orderID kernel.UUID) string {
	compact := strings.ReplaceAll(orderID.String(), "-", "")
	return fmt.Sprintf("BKY-%s", strings.ToUpper(compact[:8]))
}
