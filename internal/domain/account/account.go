package account

import (
	"strings"
	"time"

	"unijoblink/internal/common"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleCompany    Role = "company"
	RoleUniversity Role = "university"
	RoleTeacher    Role = "teacher"
	RoleAdmin      Role = "admin"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// Account is the root identity record. Role never changes after creation;
// status starts at pending for self-registered accounts and approved for
// admin-created ones.
type Account struct {
	ID           common.UUID `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	Status       Status      `json:"status"`
	Verified     bool        `json:"verified"`
	AvatarURL    string      `json:"avatar_url,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func ParseRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	switch role {
	case RoleStudent, RoleCompany, RoleUniversity, RoleTeacher, RoleAdmin:
		return role, nil
	default:
		return "", common.NewValidationError("invalid role", map[string]string{"role": "role must be student, company, university, teacher, or admin"})
	}
}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	switch status {
	case StatusPending, StatusApproved, StatusDeclined:
		return status, nil
	default:
		return "", common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, approved, or declined"})
	}
}
