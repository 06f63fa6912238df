package interview

import (
	"strings"
	"time"

	"unijoblink/internal/common"
)

// Status values are stored uppercase, mirroring the interview_status enum.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// Interview is tied to exactly one application/post/student/company quadruple.
// Only PENDING interviews can be rescheduled, cancelled, or responded to.
type Interview struct {
	ID            common.UUID `json:"id"`
	ApplicationID common.UUID `json:"application_id"`
	PostID        common.UUID `json:"post_id"`
	StudentID     common.UUID `json:"student_id"`
	CompanyID     common.UUID `json:"company_id"`
	ScheduledAt   time.Time   `json:"scheduled_at"`
	Location      string      `json:"location"`
	Type          string      `json:"type"`
	Status        Status      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(value)))
	switch status {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled:
		return status, nil
	default:
		return "", common.NewValidationError("invalid status", map[string]string{"status": "status must be PENDING, ACCEPTED, REJECTED, or CANCELLED"})
	}
}

func IsTerminal(status Status) bool {
	return status != StatusPending
}
