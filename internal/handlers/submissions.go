package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/harbourmove/leadsgo/internal/models"
	"github.com/harbourmove/leadsgo/internal/notify"
	"github.com/harbourmove/leadsgo/internal/validation"
)

// SubmissionRequest is the public intake body: the form fields plus an
// opaque attribution blob the site captures client-side.
type SubmissionRequest struct {
	validation.Input
	Tracking json.RawMessage `json:"tracking,omitempty"`
}

// createSubmission validates a public form post, stores it and kicks
// off the operator notification. The notification runs in the
// background: the visitor is confirmed as soon as the row exists, and
// a dispatch failure never reaches them.
func (r *Router) createSubmission(w http.ResponseWriter, req *http.Request) {
	var body SubmissionRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Absent form type defaults to quote
	body.FormType = strings.TrimSpace(body.FormType)
	if body.FormType == "" {
		body.FormType = string(models.FormTypeQuote)
	}
	if !models.FormType(body.FormType).Valid() {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"formType": "Unknown form type"},
		})
		return
	}

	if errs := validation.Validate(body.Input, time.Now()); len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errs})
		return
	}

	sub := buildSubmission(body)
	if err := r.db.Create(sub).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, sub)

	r.hub.Broadcast(wsEvent{Event: "insert", Submission: sub})

	go func() {
		if err := r.dispatcher.Dispatch(context.Background(), dispatchPayload(sub)); err != nil {
			// The row is already stored; delivery failure stays server-side
			log.Printf("⚠️  Notification dispatch failed for submission %s: %v", sub.ID, err)
		}
	}()
}

// buildSubmission maps validated form input onto the persisted model,
// trimming every field and lower-casing the email.
func buildSubmission(body SubmissionRequest) *models.Submission {
	in := body.Input
	sub := &models.Submission{
		FormType:    models.FormType(in.FormType),
		FullName:    strings.TrimSpace(in.FullName),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Status:      models.StatusNew,
	}

	if sub.FormType == models.FormTypeContact {
		sub.Subject = trimmedPtr(in.Subject)
		sub.Message = trimmedPtr(in.Message)
	} else {
		sub.MovingFrom = trimmedPtr(in.MovingFrom)
		sub.MovingTo = trimmedPtr(in.MovingTo)
		sub.MovingDate = trimmedPtr(in.MovingDate)
		sub.MovingTime = trimmedPtr(in.MovingTime)
		sub.MoveSize = trimmedPtr(in.MoveSize)
	}
	sub.AdditionalDetails = trimmedPtr(in.AdditionalDetails)

	if len(body.Tracking) > 0 && json.Valid(body.Tracking) {
		sub.Tracking = datatypes.JSON(body.Tracking)
	}
	return sub
}

// dispatchPayload builds the formType-discriminated notification body
func dispatchPayload(sub *models.Submission) notify.Payload {
	p := notify.Payload{
		FormType:          string(sub.FormType),
		FullName:          sub.FullName,
		Email:             sub.Email,
		PhoneNumber:       sub.PhoneNumber,
		AdditionalDetails: deref(sub.AdditionalDetails),
	}
	if sub.FormType == models.FormTypeContact {
		p.Subject = deref(sub.Subject)
		p.Message = deref(sub.Message)
	} else {
		p.MovingFrom = deref(sub.MovingFrom)
		p.MovingTo = deref(sub.MovingTo)
		p.MovingDate = deref(sub.MovingDate)
		p.MovingTime = deref(sub.MovingTime)
		p.MoveSize = deref(sub.MoveSize)
	}
	return p
}

func trimmedPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
