package app

import (
	"context"
	"strings"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/analytics"
	"unijoblink/internal/domain/profile"
)

type ProfileService struct {
	students     profile.StudentRepository
	companies    profile.CompanyRepository
	universities profile.UniversityRepository
	teachers     profile.TeacherRepository
	analytics    analytics.Repository
}

func NewProfileService(students profile.StudentRepository, companies profile.CompanyRepository, universities profile.UniversityRepository, teachers profile.TeacherRepository, analytics analytics.Repository) *ProfileService {
	return &ProfileService{students: students, companies: companies, universities: universities, teachers: teachers, analytics: analytics}
}

func (s *ProfileService) GetStudent(ctx context.Context, accountID common.UUID) (*profile.StudentProfile, error) {
	return s.students.GetByAccountID(ctx, accountID)
}

func (s *ProfileService) UpsertStudent(ctx context.Context, p profile.StudentProfile) (*profile.StudentProfile, error) {
	if strings.TrimSpace(p.Major) == "" {
		return nil, common.NewValidationError("invalid profile", map[string]string{"major": "major is required"})
	}
	if p.BatchYear < 1900 || p.BatchYear > 2100 {
		return nil, common.NewValidationError("invalid profile", map[string]string{"batch_year": "batch_year is out of range"})
	}
	updated, err := s.students.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "profile.student_updated", AccountID: &p.AccountID, Payload: analyticsPayload(ctx, nil)})
	return updated, nil
}

func (s *ProfileService) GetCompany(ctx context.Context, accountID common.UUID) (*profile.CompanyProfile, error) {
	return s.companies.GetByAccountID(ctx, accountID)
}

func (s *ProfileService) UpsertCompany(ctx context.Context, p profile.CompanyProfile) (*profile.CompanyProfile, error) {
	if strings.TrimSpace(p.Location) == "" {
		return nil, common.NewValidationError("invalid profile", map[string]string{"location": "location is required"})
	}
	updated, err := s.companies.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "profile.company_updated", AccountID: &p.AccountID, Payload: analyticsPayload(ctx, nil)})
	return updated, nil
}

func (s *ProfileService) GetUniversity(ctx context.Context, accountID common.UUID) (*profile.UniversityProfile, error) {
	return s.universities.GetByAccountID(ctx, accountID)
}

func (s *ProfileService) UpsertUniversity(ctx context.Context, p profile.UniversityProfile) (*profile.UniversityProfile, error) {
	if strings.TrimSpace(p.Address) == "" {
		return nil, common.NewValidationError("invalid profile", map[string]string{"address": "address is required"})
	}
	updated, err := s.universities.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "profile.university_updated", AccountID: &p.AccountID, Payload: analyticsPayload(ctx, nil)})
	return updated, nil
}

func (s *ProfileService) GetTeacher(ctx context.Context, accountID common.UUID) (*profile.TeacherProfile, error) {
	return s.teachers.GetByAccountID(ctx, accountID)
}

func (s *ProfileService) UpsertTeacher(ctx context.Context, p profile.TeacherProfile) (*profile.TeacherProfile, error) {
	if strings.TrimSpace(p.Department) == "" {
		return nil, common.NewValidationError("invalid profile", map[string]string{"department": "department is required"})
	}
	updated, err := s.teachers.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "profile.teacher_updated", AccountID: &p.AccountID, Payload: analyticsPayload(ctx, nil)})
	return updated, nil
}
