// Package notify implements the notification dispatch boundary over a
// Resend-style transactional email API. The dispatcher owns the templates;
// the core only supplies payloads.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

// serviceName identifies the mailer in downstream errors.
const serviceName = "mailer"

// Config holds the mailer's connection settings.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.resend.com".
	BaseURL string

	// APIKey authenticates requests as a bearer token.
	APIKey string

	// From is the sender address on every outgoing email.
	From string
}

// Mailer delivers rendered notification templates over the email API.
// It implements ports.Notifier.
type Mailer struct {
	config Config
	client *http.Client
}

// NewMailer creates a mailer with a sensible request timeout.
func NewMailer(config Config) *Mailer {
	return &Mailer{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send renders the named template with the payload and posts it to the email
// API. Every failure comes back as a DownstreamError naming the mailer, so
// callers can distinguish delivery trouble from their own validation.
func (m *Mailer) Send(
	ctx context.Context,
	template ports.Template,
	recipient string,
	payload ports.NotificationPayload,
) error {
	tmpl, ok := emailTemplates()[template]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"template",
			fmt.Errorf("%q is not a known notification template", template),
		)
	}

	body, err := json.Marshal(emailRequest{
		From:    m.config.From,
		To:      recipient,
		Subject: render(tmpl.subject, payload),
		HTML:    render(tmpl.html, payload),
	})
	if err != nil {
		return errs.NewDownstreamErrorWithCause(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return errs.NewDownstreamErrorWithCause(serviceName, err)
	}
	req.Header.Set("Authorization", "Bearer "+m.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.NewDownstreamErrorWithCause(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errs.NewDownstreamErrorWithCause(
			serviceName,
			fmt.Errorf("api returned status %d: %s", resp.StatusCode, respBody),
		)
	}

	return nil
}
