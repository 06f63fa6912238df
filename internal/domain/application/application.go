package application

import (
	"strings"
	"time"

	"unijoblink/internal/common"
)

type Status string

const (
	StatusApplied  Status = "applied"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// validTransitions lists every allowed (from -> to) pair. Accepted and
// rejected are terminal.
var validTransitions = map[Status][]Status{
	StatusApplied: {StatusAccepted, StatusRejected},
}

type Application struct {
	ID        common.UUID `json:"id"`
	PostID    common.UUID `json:"post_id"`
	StudentID common.UUID `json:"student_id"`
	Status    Status      `json:"status"`
	AppliedAt time.Time   `json:"applied_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	switch status {
	case StatusApplied, StatusAccepted, StatusRejected:
		return status, nil
	default:
		return "", common.NewValidationError("invalid status", map[string]string{"status": "status must be applied, accepted, or rejected"})
	}
}

func IsTerminal(status Status) bool {
	return status == StatusAccepted || status == StatusRejected
}

func IsTransitionAllowed(from, to Status) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
