// Package notify sends the contact-form email notification through the
// Resend HTTP API. The mailer is fire-and-forget from the caller's point of
// view: ContactService invokes it in the background and only logs failures,
// so a mail outage never breaks the public form.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jrautos/go-dealer-backend/internal/domain"
)

const resendEndpoint = "https://api.resend.com/emails"

// Resend delivers contact notifications via the Resend API. A zero APIKey
// disables delivery entirely.
type Resend struct {
	APIKey    string
	Sender    string
	Recipient string

	// HTTPClient is injectable for tests; nil means a 10s-timeout default.
	HTTPClient *http.Client
	// Endpoint overrides the API URL in tests.
	Endpoint string
}

// NewResend constructs a mailer. Disabled (no-op) when apiKey is empty.
func NewResend(apiKey, sender, recipient string) *Resend {
	return &Resend{APIKey: apiKey, Sender: sender, Recipient: recipient}
}

// Enabled reports whether the mailer will actually send.
func (r *Resend) Enabled() bool { return r.APIKey != "" }

// sendRequest is the Resend /emails payload.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendContactNotification emails the dealership about a new contact-form
// submission. Returns nil immediately when the mailer is disabled.
func (r *Resend) SendContactNotification(ctx context.Context, m domain.ContactMessage) error {
	if !r.Enabled() {
		log.Debug().Str("contact_id", m.ID).Msg("mail notifications disabled, skipping")
		return nil
	}

	payload := sendRequest{
		From:    r.Sender,
		To:      []string{r.Recipient},
		Subject: "Nuevo contacto desde la web: " + m.Name,
		HTML:    contactHTML(m),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify: encode payload: %w", err)
	}

	endpoint := r.Endpoint
	if endpoint == "" {
		endpoint = resendEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := r.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("notify: resend answered %d: %s", resp.StatusCode, b)
	}
	return nil
}

// contactHTML renders the notification body. Plain formatting on purpose:
// the recipient is the dealership's own inbox.
func contactHTML(m domain.ContactMessage) string {
	phone := m.Phone
	if phone == "" {
		phone = "-"
	}
	return fmt.Sprintf(
		"<h2>Nuevo contacto</h2>"+
			"<p><strong>Nombre:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Teléfono:</strong> %s</p>"+
			"<p><strong>Mensaje:</strong></p><p>%s</p>",
		html.EscapeString(m.Name), html.EscapeString(m.Email),
		html.EscapeString(phone), html.EscapeString(m.Message),
	)
}
