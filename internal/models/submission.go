package models

import (
	"time"

	"gorm.io/datatypes"
)

// FormType discriminates the two public intake forms sharing one table.
type FormType string

const (
	FormTypeQuote   FormType = "quote"
	FormTypeContact FormType = "contact"
)

// Valid reports whether ft is one of the two known form types.
func (ft FormType) Valid() bool {
	return ft == FormTypeQuote || ft == FormTypeContact
}

// Status tracks how far an operator has taken a submission.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQuoted    Status = "quoted"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// AllStatuses lists every status an operator may set.
var AllStatuses = []Status{
	StatusNew,
	StatusContacted,
	StatusQuoted,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// Valid reports whether s is a member of the status enum.
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// NextStatuses returns the intended follow-on statuses for s. This is
// advisory for the dashboard UI only; any transition between valid
// statuses is accepted by the update endpoint.
func NextStatuses(s Status) []Status {
	switch s {
	case StatusNew:
		return []Status{StatusContacted, StatusQuoted, StatusConfirmed, StatusCancelled}
	case StatusContacted:
		return []Status{StatusQuoted, StatusConfirmed, StatusCancelled}
	case StatusQuoted:
		return []Status{StatusConfirmed, StatusCancelled}
	case StatusConfirmed:
		return []Status{StatusCompleted, StatusCancelled}
	default:
		return nil
	}
}

// Submission is a lead captured by either public form. Quote-only and
// contact-only field groups are nullable; the schema does not enforce
// mutual exclusivity between them. Rows are immutable after insert
// except for Status, and are hard-deleted (no DeletedAt column).
// Standardized: Go (PascalCase) -> DB (snake_case) -> JSON (camelCase)
type Submission struct {
	ID          string   `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	FormType    FormType `gorm:"not null;default:'quote';index" json:"formType"`
	FullName    string   `gorm:"not null" json:"fullName"`
	Email       string   `gorm:"not null;index" json:"email"`
	PhoneNumber string   `gorm:"not null" json:"phoneNumber"`

	// Quote form
	MovingFrom *string `json:"movingFrom,omitempty"`
	MovingTo   *string `json:"movingTo,omitempty"`
	MovingDate *string `json:"movingDate,omitempty"`
	MovingTime *string `json:"movingTime,omitempty"`
	MoveSize   *string `json:"moveSize,omitempty"`

	// Contact form
	Subject *string `json:"subject,omitempty"`
	Message *string `gorm:"type:text" json:"message,omitempty"`

	AdditionalDetails *string        `gorm:"type:text" json:"additionalDetails,omitempty"`
	Tracking          datatypes.JSON `json:"tracking,omitempty"`

	Status    Status    `gorm:"not null;default:'new';index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for Submission model
func (Submission) TableName() string {
	return "form_submissions"
}
