// Package notify delivers the operator notification for a freshly
// stored submission. Delivery is best-effort: the database row is the
// system of record, so a dispatch that exhausts its retries is logged
// and forgotten rather than surfaced to the visitor.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Payload is the JSON body posted to the notification function. The
// FormType discriminator selects the email template on the receiving
// side; only the fields relevant to that form type are populated.
type Payload struct {
	FormType    string `json:"formType"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	MovingFrom string `json:"movingFrom,omitempty"`
	MovingTo   string `json:"movingTo,omitempty"`
	MovingDate string `json:"movingDate,omitempty"`
	MovingTime string `json:"movingTime,omitempty"`
	MoveSize   string `json:"moveSize,omitempty"`

	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`

	AdditionalDetails string `json:"additionalDetails,omitempty"`
}

const maxAttempts = 3

// Dispatcher posts payloads to the notification function endpoint,
// retrying failed attempts with a linearly growing delay (1s, 2s).
type Dispatcher struct {
	url    string
	client *http.Client
	sleep  func(time.Duration)
}

// NewDispatcher creates a dispatcher targeting the given endpoint.
func NewDispatcher(url string) *Dispatcher {
	return &Dispatcher{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
		sleep:  time.Sleep,
	}
}

// Dispatch attempts delivery up to 3 times. It returns the last error
// when every attempt failed; callers log it and move on.
func (d *Dispatcher) Dispatch(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if lastErr = d.send(ctx, body); lastErr == nil {
			return nil
		}
		if attempt < maxAttempts {
			// 1000ms x attempt number between attempts
			d.sleep(time.Duration(attempt) * time.Second)
		}
	}
	return fmt.Errorf("notification dispatch failed after %d attempts: %w", maxAttempts, lastErr)
}

func (d *Dispatcher) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notification function returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
