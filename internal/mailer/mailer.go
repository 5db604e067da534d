// Package mailer is the delivery half of the notification pipeline:
// it turns a dispatch payload into an HTML email and hands it to the
// transactional email provider over HTTPS.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/harbourmove/leadsgo/internal/config"
	"github.com/harbourmove/leadsgo/internal/notify"
)

// Mailer sends operator notification emails through the configured
// transactional email API.
type Mailer struct {
	cfg    config.NotifyConfig
	client *http.Client
}

// New creates a Mailer from the notification configuration.
func New(cfg config.NotifyConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// sendRequest is the provider API body.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send renders the template matching p.FormType and delivers it to
// every configured recipient in one provider call.
func (m *Mailer) Send(ctx context.Context, p notify.Payload) error {
	if len(m.cfg.Recipients) == 0 {
		return fmt.Errorf("no notification recipients configured")
	}
	if m.cfg.EmailAPIURL == "" {
		return fmt.Errorf("email provider is not configured")
	}

	subject, html, err := RenderEmail(p)
	if err != nil {
		return fmt.Errorf("render notification email: %w", err)
	}

	body, err := json.Marshal(sendRequest{
		From:    m.cfg.FromEmail,
		To:      m.cfg.Recipients,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.EmailAPIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.cfg.EmailAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.cfg.EmailAPIKey)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}

// RenderEmail picks the template for the payload's form type and
// returns the subject line and HTML body.
func RenderEmail(p notify.Payload) (subject, html string, err error) {
	var tmpl *template.Template
	switch p.FormType {
	case "contact":
		tmpl = contactTmpl
		subject = fmt.Sprintf("New contact enquiry: %s", p.Subject)
	default:
		// Absent or unknown form types fall back to the quote template,
		// matching the intake default.
		tmpl = quoteTmpl
		subject = fmt.Sprintf("New quote request from %s", p.FullName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}

var quoteTmpl = template.Must(template.New("quote").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#1a1a1a">
  <h2>New Quote Request</h2>
  <table cellpadding="6">
    <tr><td><b>Name</b></td><td>{{.FullName}}</td></tr>
    <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
    <tr><td><b>Phone</b></td><td>{{.PhoneNumber}}</td></tr>
    <tr><td><b>Moving from</b></td><td>{{.MovingFrom}}</td></tr>
    <tr><td><b>Moving to</b></td><td>{{.MovingTo}}</td></tr>
    <tr><td><b>Date</b></td><td>{{.MovingDate}}</td></tr>
    <tr><td><b>Time</b></td><td>{{.MovingTime}}</td></tr>
    <tr><td><b>Move size</b></td><td>{{.MoveSize}}</td></tr>
    {{if .AdditionalDetails}}<tr><td><b>Details</b></td><td>{{.AdditionalDetails}}</td></tr>{{end}}
  </table>
</body>
</html>`))

var contactTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#1a1a1a">
  <h2>New Contact Enquiry</h2>
  <table cellpadding="6">
    <tr><td><b>Name</b></td><td>{{.FullName}}</td></tr>
    <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
    <tr><td><b>Phone</b></td><td>{{.PhoneNumber}}</td></tr>
    <tr><td><b>Subject</b></td><td>{{.Subject}}</td></tr>
    <tr><td><b>Message</b></td><td>{{.Message}}</td></tr>
  </table>
</body>
</html>`))
