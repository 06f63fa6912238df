package notification

import (
	"time"

	"unijoblink/internal/common"
)

// Kind keys the email template used alongside the in-app entry.
type Kind string

const (
	KindApplicationAccepted  Kind = "application-accepted"
	KindApplicationRejected  Kind = "application-rejected"
	KindInterviewScheduled   Kind = "interview-scheduled"
	KindInterviewRescheduled Kind = "interview-rescheduled"
	KindInterviewCancelled   Kind = "interview-cancelled"
)

type Notification struct {
	ID        common.UUID `json:"id"`
	AccountID common.UUID `json:"account_id"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	Read      bool        `json:"read"`
	CreatedAt time.Time   `json:"created_at"`
}
