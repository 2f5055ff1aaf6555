package commands

import (
	"context"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// RemindPendingOrdersCommandHandler sends the operator one reminder per stale
// pending order. Reminders are fire-and-forget like the creation sends; the
// job only needs to know how many orders qualified.
type RemindPendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	adminEmail string
	logger     *slog.Logger
}

// NewRemindPendingOrdersCommandHandler creates a handler for pending order reminders.
func NewRemindPendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	adminEmail string,
	logger *slog.Logger,
) RemindPendingOrdersCommandHandler {
	return RemindPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Handle finds pending orders created before the staleness cutoff and
// dispatches an operator reminder for each. Returns how many reminders were
// dispatched.
func (h *RemindPendingOrdersCommandHandler) Handle(ctx context.Context, cmd RemindPendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	pendingOrders, err := uow.OrderRepository().GetAllInStatus(ctx, order.Pending)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-cmd.OlderThan())

	reminded := 0
	for _, pendingOrder := range pendingOrders {
		if !pendingOrder.CreatedAt().Before(cutoff) {
			continue
		}

		dispatchAsync(h.notifier, h.logger, ports.TemplateAdminReminder, h.adminEmail, notificationPayload(pendingOrder))
		reminded++
	}

	return reminded, nil
}
