package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakery/internal/adapters/out/notify"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() ports.NotificationPayload {
	return ports.NotificationPayload{
		CustomerName:  "Jane Dough",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+1 555 0100",
		OrderID:       "f4b4c3d2-0000-0000-0000-000000000000",
		OrderNumber:   "BKY-F4B4C3D2",
		OrderDate:     time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC),
		OrderStatus:   "pending",
		Quantity:      24,
		Description:   "chocolate chip, nut free",
		OrderTotal:    decimal.NewFromFloat(67.20),
		Items: []ports.ItemLine{
			{
				Description: "chocolate chip",
				Quantity:    24,
				UnitPrice:   decimal.NewFromFloat(2.80),
				LineTotal:   decimal.NewFromFloat(67.20),
			},
		},
	}
}

func TestMailer_Send_RendersAndPosts(t *testing.T) {
	var captured struct {
		auth        string
		contentType string
		body        map[string]string
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.auth = r.Header.Get("Authorization")
		captured.contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	mailer := notify.NewMailer(notify.Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		From:    "orders@bakery.test",
	})

	err := mailer.Send(context.Background(), ports.TemplateOrderConfirmation, "jane@example.com", testPayload())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", captured.auth)
	assert.Equal(t, "application/json", captured.contentType)
	assert.Equal(t, "orders@bakery.test", captured.body["from"])
	assert.Equal(t, "jane@example.com", captured.body["to"])
	assert.Equal(t, "Your cookie order BKY-F4B4C3D2", captured.body["subject"])

	html := captured.body["html"]
	assert.Contains(t, html, "Jane Dough")
	assert.Contains(t, html, "BKY-F4B4C3D2")
	assert.Contains(t, html, "$67.20")
	assert.Contains(t, html, "March 14, 2026")
	assert.Contains(t, html, "chocolate chip")
	assert.NotContains(t, html, "{{", "all placeholders must be substituted")
}

func TestMailer_Send_AdminTemplatesIncludeContact(t *testing.T) {
	var html string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		html = body["html"]
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	mailer := notify.NewMailer(notify.Config{BaseURL: server.URL, APIKey: "k", From: "orders@bakery.test"})

	err := mailer.Send(context.Background(), ports.TemplateAdminOrderAlert, "owner@bakery.test", testPayload())
	require.NoError(t, err)
	assert.Contains(t, html, "jane@example.com")
	assert.Contains(t, html, "+1 555 0100")

	err = mailer.Send(context.Background(), ports.TemplateAdminReminder, "owner@bakery.test", testPayload())
	require.NoError(t, err)
	assert.Contains(t, html, "still pending")
}

func TestMailer_Send_APIErrorBecomesDownstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	mailer := notify.NewMailer(notify.Config{BaseURL: server.URL, APIKey: "bad", From: "orders@bakery.test"})

	err := mailer.Send(context.Background(), ports.TemplateOrderConfirmation, "jane@example.com", testPayload())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDownstream)
	assert.Contains(t, err.Error(), "401")
}

func TestMailer_Send_UnreachableHostBecomesDownstream(t *testing.T) {
	mailer := notify.NewMailer(notify.Config{BaseURL: "http://127.0.0.1:1", APIKey: "k", From: "orders@bakery.test"})

	err := mailer.Send(context.Background(), ports.TemplateOrderConfirmation, "jane@example.com", testPayload())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDownstream)
}

func TestMailer_Send_UnknownTemplateRejected(t *testing.T) {
	mailer := notify.NewMailer(notify.Config{BaseURL: "http://unused", APIKey: "k", From: "orders@bakery.test"})

	err := mailer.Send(context.Background(), ports.Template("postcard"), "jane@example.com", testPayload())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
