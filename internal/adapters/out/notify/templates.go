package notify

import (
	"fmt"
	"strings"

	"bakery/internal/core/ports"

	"github.com/valyala/fasttemplate"
)

// emailTemplate pairs a subject line with an HTML body. Both are rendered
// with {{token}} placeholders from the notification payload.
type emailTemplate struct {
	subject string
	html    string
}

const confirmationHTML = `<!doctype html>
<html>
  <body style="font-family: 'Segoe UI', sans-serif; color: #3b2314; background: #fdf6ee; padding: 40px 20px;">
    <div style="max-width: 600px; margin: 0 auto;">
      <h1 style="font-size: 24px;">Thank you for your order, {{customer_name}}!</h1>
      <p>We received your custom cookie order and will confirm it shortly.</p>
      <p style="background: #f4e3cf; padding: 16px;">
        Order <strong>{{order_number}}</strong> &middot; placed {{order_date}}<br />
        {{quantity}} cookies &mdash; {{description}}<br />
        Total: <strong>{{order_total}}</strong>
      </p>
      {{order_items_table}}
      <p style="color: #7a5c42; font-size: 13px;">
        Questions? Just reply to this email.
      </p>
    </div>
  </body>
</html>`

const adminAlertHTML = `<!doctype html>
<html>
  <body style="font-family: 'Segoe UI', sans-serif; color: #1a1a1a; padding: 40px 20px;">
    <div style="max-width: 600px; margin: 0 auto;">
      <h1 style="font-size: 20px;">New order {{order_number}}</h1>
      <p>
        <strong>{{customer_name}}</strong> ({{customer_email}}, {{customer_phone}})<br />
        {{quantity}} cookies &mdash; {{description}}<br />
        Total: <strong>{{order_total}}</strong>
      </p>
      {{order_items_table}}
    </div>
  </body>
</html>`

const adminReminderHTML = `<!doctype html>
<html>
  <body style="font-family: 'Segoe UI', sans-serif; color: #1a1a1a; padding: 40px 20px;">
    <div style="max-width: 600px; margin: 0 auto;">
      <h1 style="font-size: 20px;">Order {{order_number}} is still pending</h1>
      <p>
        Placed {{order_date}} by <strong>{{customer_name}}</strong> ({{customer_email}})
        and not yet confirmed.
      </p>
      <p>
        {{quantity}} cookies &mdash; {{description}}<br />
        Total: <strong>{{order_total}}</strong>
      </p>
    </div>
  </body>
</html>`

// emailTemplates maps template names to their renderable content.
func emailTemplates() map[ports.Template]emailTemplate {
	return map[ports.Template]emailTemplate{
		ports.TemplateOrderConfirmation: {
			subject: "Your cookie order {{order_number}}",
			html:    confirmationHTML,
		},
		ports.TemplateAdminOrderAlert: {
			subject: "New order {{order_number}} from {{customer_name}}",
			html:    adminAlertHTML,
		},
		ports.TemplateAdminReminder: {
			subject: "Reminder: order {{order_number}} is still pending",
			html:    adminReminderHTML,
		},
	}
}

// tokenValues flattens a payload into the placeholder map the templates
// reference. Every value is pre-rendered to a string; money is formatted
// with two decimals.
func tokenValues(payload ports.NotificationPayload) map[string]any {
	return map[string]any{
		"customer_name":     payload.CustomerName,
		"customer_email":    payload.CustomerEmail,
		"customer_phone":    payload.CustomerPhone,
		"order_id":          payload.OrderID,
		"order_number":      payload.OrderNumber,
		"order_date":        payload.OrderDate.Format("January 2, 2006"),
		"order_status":      payload.OrderStatus,
		"quantity":          fmt.Sprintf("%d", payload.Quantity),
		"description":       payload.Description,
		"order_total":       "$" + payload.OrderTotal.StringFixed(2),
		"order_items_table": itemsTable(payload.Items),
	}
}

// itemsTable renders the line items as an HTML table, or nothing when the
// order has no explicit lines.
func itemsTable(items []ports.ItemLine) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<table style="width: 100%; border-collapse: collapse;">`)
	b.WriteString(`<tr><th align="left">Item</th><th align="right">Qty</th>` +
		`<th align="right">Unit</th><th align="right">Total</th></tr>`)

	for _, item := range items {
		fmt.Fprintf(&b,
			`<tr><td>%s</td><td align="right">%d</td><td align="right">$%s</td><td align="right">$%s</td></tr>`,
			item.Description, item.Quantity, item.UnitPrice.StringFixed(2), item.LineTotal.StringFixed(2))
	}

	b.WriteString(`</table>`)
	return b.String()
}

// render substitutes the payload tokens into a template string.
func render(template string, payload ports.NotificationPayload) string {
	return fasttemplate.ExecuteStringStd(template, "{{", "}}", tokenValues(payload))
}
