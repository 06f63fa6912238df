package post

import (
	"time"

	"unijoblink/internal/common"
)

// Post is an internship opening owned by a company account. Salary stays
// empty unless Paid is set.
type Post struct {
	ID           common.UUID `json:"id"`
	CompanyID    common.UUID `json:"company_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Requirements []string    `json:"requirements"`
	Paid         bool        `json:"paid"`
	Salary       string      `json:"salary,omitempty"`
	Location     string      `json:"location"`
	Remote       bool        `json:"remote"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      time.Time   `json:"end_date"`
	Deadline     time.Time   `json:"deadline"`
	Positions    int         `json:"positions"`
	ContactEmail string      `json:"contact_email"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Filter narrows post listings; zero values mean "no constraint".
type Filter struct {
	Search   string
	Location string
	Remote   *bool
	Paid     *bool
	Limit    int
	Offset   int
}
