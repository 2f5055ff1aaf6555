package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Template names a notification the dispatcher knows how to render.
// The dispatcher owns the markup; the core's only obligation is to supply a
// complete, correctly-typed payload for the template's placeholder tokens.
type Template string

const (
	// TemplateOrderConfirmation is sent to the customer when an order is
	// created, and again on an administrative resend.
	TemplateOrderConfirmation Template = "order_confirmation"

	// TemplateAdminOrderAlert is sent to the business operator when a new
	// order arrives.
	TemplateAdminOrderAlert Template = "admin_order_alert"

	// TemplateAdminReminder is sent to the business operator for orders that
	// have sat in pending for too long.
	TemplateAdminReminder Template = "admin_reminder"
)

// ItemLine is one row of the order items table rendered into a notification.
type ItemLine struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// NotificationPayload carries everything a template can reference. It is a
// snapshot: once handed to the dispatcher it no longer tracks the order.
type NotificationPayload struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	OrderID     string
	OrderNumber string
	OrderDate   time.Time
	OrderStatus string
	Quantity    int
	Description string
	OrderTotal  decimal.Decimal

	Items []ItemLine
}

// Notifier defines the notification dispatch contract. Implementations render
// the named template with the payload and deliver it to the recipient.
//
// Sends triggered by order creation are fire-and-forget: the caller wraps
// them in independently scheduled tasks whose failures are logged, never
// propagated. The administrative resend calls Send synchronously and
// surfaces the error.
type Notifier interface {
	Send(ctx context.Context, template Template, recipient string, payload NotificationPayload) error
}
