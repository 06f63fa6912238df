package profile

import (
	"time"

	"unijoblink/internal/common"
)

// RoleProfile is the 1:1 extension of an account. One concrete profile type
// exists per role; all are created together with their account and removed
// with it.
type RoleProfile interface {
	Account() common.UUID
}

type StudentProfile struct {
	AccountID    common.UUID `json:"account_id"`
	UniversityID common.UUID `json:"university_id,omitempty"`
	Major        string      `json:"major"`
	BatchYear    int         `json:"batch_year"`
	Skills       []string    `json:"skills"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (p StudentProfile) Account() common.UUID { return p.AccountID }

type CompanyProfile struct {
	AccountID common.UUID `json:"account_id"`
	Location  string      `json:"location"`
	Website   string      `json:"website"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (p CompanyProfile) Account() common.UUID { return p.AccountID }

type UniversityProfile struct {
	AccountID common.UUID `json:"account_id"`
	Address   string      `json:"address"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (p UniversityProfile) Account() common.UUID { return p.AccountID }

type TeacherProfile struct {
	AccountID    common.UUID `json:"account_id"`
	UniversityID common.UUID `json:"university_id,omitempty"`
	Department   string      `json:"department"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (p TeacherProfile) Account() common.UUID { return p.AccountID }
