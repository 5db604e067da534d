// Package validation holds the intake rule sets for the two public
// lead forms. The rules mirror the live site exactly, including the
// divergent phone checks: the quote form accepts any 8-20 character
// value while the contact form matches a digits/spaces/+/-/()
// pattern of 8-15 characters. The divergence is kept visible here
// rather than unified, because the correct shared rule is ambiguous.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Input carries the raw field values of either form. FormType decides
// which rule set applies; an empty FormType means "quote".
type Input struct {
	FormType    string `json:"formType"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	MovingFrom string `json:"movingFrom"`
	MovingTo   string `json:"movingTo"`
	MovingDate string `json:"movingDate"`
	MovingTime string `json:"movingTime"`
	MoveSize   string `json:"moveSize"`

	Subject string `json:"subject"`
	Message string `json:"message"`

	AdditionalDetails string `json:"additionalDetails"`
}

// FieldErrors maps a field name to its validation message. Empty map
// means the input is acceptable.
type FieldErrors map[string]string

var (
	emailRe        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	contactPhoneRe = regexp.MustCompile(`^[0-9\s()+\-]{8,15}$`)
)

const dateLayout = "2006-01-02"

// Validate applies the rule set selected by in.FormType. now anchors
// the "moving date not in the past" check.
func Validate(in Input, now time.Time) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.FullName)
	if len(name) < 2 || len(name) > 100 {
		errs["fullName"] = "Full name must be between 2 and 100 characters"
	}

	email := strings.TrimSpace(in.Email)
	if len(email) > 255 || !emailRe.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}

	phone := strings.TrimSpace(in.PhoneNumber)

	if in.FormType == "contact" {
		if !contactPhoneRe.MatchString(phone) {
			errs["phoneNumber"] = "Please enter a valid phone number"
		}
		subject := strings.TrimSpace(in.Subject)
		if len(subject) < 3 || len(subject) > 200 {
			errs["subject"] = "Subject must be between 3 and 200 characters"
		}
		message := strings.TrimSpace(in.Message)
		if len(message) < 10 || len(message) > 2000 {
			errs["message"] = "Message must be between 10 and 2000 characters"
		}
		return errs
	}

	// Quote form (the default)
	if len(phone) < 8 || len(phone) > 20 {
		errs["phoneNumber"] = "Phone number must be between 8 and 20 characters"
	}
	if strings.TrimSpace(in.MovingFrom) == "" {
		errs["movingFrom"] = "Please enter the pickup address"
	}
	if strings.TrimSpace(in.MovingTo) == "" {
		errs["movingTo"] = "Please enter the delivery address"
	}
	if err := validateMovingDate(strings.TrimSpace(in.MovingDate), now); err != "" {
		errs["movingDate"] = err
	}
	if strings.TrimSpace(in.MovingTime) == "" {
		errs["movingTime"] = "Please select a moving time"
	}
	if strings.TrimSpace(in.MoveSize) == "" {
		errs["moveSize"] = "Please select a move size"
	}
	if details := strings.TrimSpace(in.AdditionalDetails); len(details) > 2000 {
		errs["additionalDetails"] = "Additional details must be at most 2000 characters"
	}
	return errs
}

func validateMovingDate(value string, now time.Time) string {
	if value == "" {
		return "Please select a moving date"
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Sprintf("Moving date must be in %s format", dateLayout)
	}
	// ISO dates compare correctly as strings
	if value < now.Format(dateLayout) {
		return "Moving date cannot be in the past"
	}
	return ""
}
