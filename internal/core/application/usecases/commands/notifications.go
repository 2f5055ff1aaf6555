package commands

import (
	"context"
	"log/slog"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// notificationPayload snapshots an order into the flat structure templates
// consume. Taken at dispatch time: the creation-time sends therefore carry the
// order as created, while the administrative resend carries current values.
func notificationPayload(o *order.Order) ports.NotificationPayload {
	items := make([]ports.ItemLine, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ports.ItemLine{
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTotal:   item.LineTotal(),
		})
	}

	return ports.NotificationPayload{
		CustomerName:  o.Customer().Name,
		CustomerEmail: o.Customer().Email,
		CustomerPhone: o.Customer().Phone,
		OrderID:       o.ID().String(),
		OrderNumber:   o.DisplayID(),
		OrderDate:     o.CreatedAt(),
		OrderStatus:   o.Status().String(),
		Quantity:      o.Quantity(),
		Description:   o.Description(),
		OrderTotal:    o.TotalAmount(),
		Items:         items,
	}
}

// dispatchAsync fires a single notification send on its own goroutine.
// Failures are logged and swallowed: a lost email must never fail or delay
// the operation that triggered it. Each send gets a fresh background context
// so it survives the originating request.
func dispatchAsync(
	notifier ports.Notifier,
	logger *slog.Logger,
	template ports.Template,
	recipient string,
	payload ports.NotificationPayload,
) {
	go func() {
		ctx := context.Background()
		if err := notifier.Send(ctx, template, recipient, payload); err != nil {
			logger.ErrorContext(ctx, "notification send failed",
				"template", string(template),
				"recipient", recipient,
				"orderId", payload.OrderID,
				"error", err,
			)
		}
	}()
}
