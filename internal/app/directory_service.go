package app

import (
	"context"
	"strconv"
	"strings"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/domain/profile"
)

// DirectoryEntry is an account joined with the role-specific fields the
// directory views search over.
type DirectoryEntry struct {
	Account    account.Account `json:"account"`
	Major      string          `json:"major,omitempty"`
	BatchYear  int             `json:"batch_year,omitempty"`
	Location   string          `json:"location,omitempty"`
	Website    string          `json:"website,omitempty"`
	Department string          `json:"department,omitempty"`
}

// DirectoryFilter dimensions combine by AND; zero values mean no constraint.
type DirectoryFilter struct {
	Role      account.Role
	Search    string
	Status    string
	Major     string
	BatchYear int
}

type DirectoryService struct {
	accounts  account.Repository
	students  profile.StudentRepository
	teachers  profile.TeacherRepository
	companies profile.CompanyRepository
}

func NewDirectoryService(accounts account.Repository, students profile.StudentRepository, teachers profile.TeacherRepository, companies profile.CompanyRepository) *DirectoryService {
	return &DirectoryService{accounts: accounts, students: students, teachers: teachers, companies: companies}
}

// List fetches the role's accounts and applies the filter dimensions.
// Universities only see student and teacher accounts scoped to them.
func (s *DirectoryService) List(ctx context.Context, actor Principal, filter DirectoryFilter) ([]DirectoryEntry, error) {
	switch actor.Role {
	case account.RoleAdmin:
	case account.RoleUniversity:
		if filter.Role != account.RoleStudent && filter.Role != account.RoleTeacher {
			return nil, common.NewError(common.CodeForbidden, "universities list only student and teacher accounts", nil)
		}
	default:
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}

	accounts, err := s.accounts.List(ctx, filter.Role)
	if err != nil {
		return nil, err
	}

	entries := make([]DirectoryEntry, 0, len(accounts))
	for _, acc := range accounts {
		entry := DirectoryEntry{Account: acc}
		switch acc.Role {
		case account.RoleStudent:
			p, err := s.students.GetByAccountID(ctx, acc.ID)
			if err != nil {
				if !common.Is(err, common.CodeNotFound) {
					return nil, err
				}
			} else {
				if actor.Role == account.RoleUniversity && p.UniversityID != actor.AccountID {
					continue
				}
				entry.Major = p.Major
				entry.BatchYear = p.BatchYear
			}
		case account.RoleTeacher:
			p, err := s.teachers.GetByAccountID(ctx, acc.ID)
			if err != nil {
				if !common.Is(err, common.CodeNotFound) {
					return nil, err
				}
			} else {
				if actor.Role == account.RoleUniversity && p.UniversityID != actor.AccountID {
					continue
				}
				entry.Department = p.Department
			}
		case account.RoleCompany:
			p, err := s.companies.GetByAccountID(ctx, acc.ID)
			if err != nil && !common.Is(err, common.CodeNotFound) {
				return nil, err
			} else if err == nil {
				entry.Location = p.Location
				entry.Website = p.Website
			}
		}
		if matchesDirectoryFilter(entry, filter) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func matchesDirectoryFilter(entry DirectoryEntry, filter DirectoryFilter) bool {
	return matchesSearch(entry, filter.Search) &&
		matchesStatus(entry.Account.Status, filter.Status) &&
		matchesMajor(entry, filter.Major) &&
		matchesBatchYear(entry, filter.BatchYear)
}

// matchesSearch is a case-insensitive substring match OR'd across name,
// email, and the role-specific fields.
func matchesSearch(entry DirectoryEntry, search string) bool {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return true
	}
	candidates := []string{
		entry.Account.Name,
		entry.Account.Email,
		entry.Major,
		entry.Location,
		entry.Website,
		entry.Department,
	}
	if entry.BatchYear != 0 {
		candidates = append(candidates, strconv.Itoa(entry.BatchYear))
	}
	for _, candidate := range candidates {
		if candidate != "" && strings.Contains(strings.ToLower(candidate), query) {
			return true
		}
	}
	return false
}

func matchesStatus(status account.Status, selected string) bool {
	selected = strings.ToLower(strings.TrimSpace(selected))
	if selected == "" || selected == "all" {
		return true
	}
	return strings.EqualFold(string(status), selected)
}

func matchesMajor(entry DirectoryEntry, major string) bool {
	major = strings.TrimSpace(major)
	if major == "" {
		return true
	}
	return strings.EqualFold(entry.Major, major)
}

func matchesBatchYear(entry DirectoryEntry, year int) bool {
	if year == 0 {
		return true
	}
	return entry.BatchYear == year
}
