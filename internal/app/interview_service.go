package app

import (
	"context"
	"fmt"
	"time"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/analytics"
	"unijoblink/internal/domain/application"
	"unijoblink/internal/domain/interview"
	"unijoblink/internal/domain/notification"
	"unijoblink/internal/domain/post"
	"unijoblink/internal/mailer"
)

type InterviewService struct {
	repo         interview.Repository
	applications application.Repository
	posts        post.Repository
	notifier     Notifier
	analytics    analytics.Repository
}

func NewInterviewService(repo interview.Repository, applications application.Repository, posts post.Repository, notifier Notifier, analytics analytics.Repository) *InterviewService {
	return &InterviewService{repo: repo, applications: applications, posts: posts, notifier: notifier, analytics: analytics}
}

type ScheduleInput struct {
	ApplicationID common.UUID
	ScheduledAt   time.Time
	Location      string
	Type          string
}

// Schedule creates a PENDING interview from an application. The acting
// company must own the post behind the application; a mismatch is forbidden
// and no row is written.
func (s *InterviewService) Schedule(ctx context.Context, companyID common.UUID, input ScheduleInput) (*interview.Interview, error) {
	if err := validateScheduleInput(input); err != nil {
		return nil, err
	}
	app, err := s.applications.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, err
	}
	p, err := s.posts.GetByID(ctx, app.PostID)
	if err != nil {
		return nil, err
	}
	if p.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another company", nil)
	}
	created, err := s.repo.Create(ctx, interview.Interview{
		ApplicationID: app.ID,
		PostID:        p.ID,
		StudentID:     app.StudentID,
		CompanyID:     companyID,
		ScheduledAt:   input.ScheduledAt.UTC(),
		Location:      input.Location,
		Type:          input.Type,
		Status:        interview.StatusPending,
	})
	if err != nil {
		return nil, err
	}
	_ = s.notifier.Dispatch(ctx, app.StudentID, notification.KindInterviewScheduled,
		"Interview Scheduled",
		fmt.Sprintf("An interview for %q is scheduled on %s at %s.", p.Title, created.ScheduledAt.Format(time.RFC1123), created.Location),
		mailer.TemplateParams{PostTitle: p.Title, ScheduledAt: created.ScheduledAt, Location: created.Location, InterviewType: created.Type, ContactEmail: p.ContactEmail})
	_ = s.analytics.Create(ctx, analytics.Event{Name: "interview.scheduled", AccountID: &companyID, Payload: analyticsPayload(ctx, map[string]string{"interview_id": created.ID.String(), "application_id": app.ID.String()})})
	return created, nil
}

// Reschedule moves a PENDING interview to a new time; the status stays
// PENDING.
func (s *InterviewService) Reschedule(ctx context.Context, companyID, interviewID common.UUID, scheduledAt time.Time) (*interview.Interview, error) {
	if scheduledAt.IsZero() {
		return nil, common.NewValidationError("scheduled_at is required", map[string]string{"scheduled_at": "required"})
	}
	iv, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "interview belongs to another company", nil)
	}
	if iv.Status != interview.StatusPending {
		return nil, common.NewError(common.CodeValidation, "only pending interviews can be rescheduled", nil)
	}
	updated, err := s.repo.UpdateSchedule(ctx, interviewID, scheduledAt.UTC())
	if err != nil {
		return nil, err
	}
	s.notifyChange(ctx, updated, notification.KindInterviewRescheduled, "Interview Rescheduled",
		fmt.Sprintf("Your interview was moved to %s.", updated.ScheduledAt.Format(time.RFC1123)))
	_ = s.analytics.Create(ctx, analytics.Event{Name: "interview.rescheduled", AccountID: &companyID, Payload: analyticsPayload(ctx, map[string]string{"interview_id": interviewID.String()})})
	return updated, nil
}

// Cancel moves a PENDING interview to CANCELLED; CANCELLED is terminal.
func (s *InterviewService) Cancel(ctx context.Context, companyID, interviewID common.UUID) (*interview.Interview, error) {
	iv, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "interview belongs to another company", nil)
	}
	if iv.Status != interview.StatusPending {
		return nil, common.NewError(common.CodeValidation, "only pending interviews can be cancelled", nil)
	}
	updated, err := s.repo.UpdateStatus(ctx, interviewID, interview.StatusCancelled)
	if err != nil {
		return nil, err
	}
	s.notifyChange(ctx, updated, notification.KindInterviewCancelled, "Interview Cancelled", "Your interview was cancelled.")
	_ = s.analytics.Create(ctx, analytics.Event{Name: "interview.cancelled", AccountID: &companyID, Payload: analyticsPayload(ctx, map[string]string{"interview_id": interviewID.String()})})
	return updated, nil
}

// Respond lets the invited student accept or reject a PENDING interview.
func (s *InterviewService) Respond(ctx context.Context, studentID, interviewID common.UUID, status interview.Status) (*interview.Interview, error) {
	if status != interview.StatusAccepted && status != interview.StatusRejected {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be ACCEPTED or REJECTED"})
	}
	iv, err := s.repo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.StudentID != studentID {
		return nil, common.NewError(common.CodeForbidden, "interview belongs to another student", nil)
	}
	if iv.Status != interview.StatusPending {
		return nil, common.NewError(common.CodeValidation, "interview is no longer pending", nil)
	}
	updated, err := s.repo.UpdateStatus(ctx, interviewID, status)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "interview.responded", AccountID: &studentID, Payload: analyticsPayload(ctx, map[string]string{"interview_id": interviewID.String(), "status": string(status)})})
	return updated, nil
}

func (s *InterviewService) Get(ctx context.Context, actor Principal, id common.UUID) (*interview.Interview, error) {
	iv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv.StudentID != actor.AccountID && iv.CompanyID != actor.AccountID {
		return nil, common.NewError(common.CodeForbidden, "interview belongs to another party", nil)
	}
	return iv, nil
}

func (s *InterviewService) ListByStudent(ctx context.Context, studentID common.UUID) ([]interview.Interview, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *InterviewService) ListByCompany(ctx context.Context, companyID common.UUID) ([]interview.Interview, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *InterviewService) notifyChange(ctx context.Context, iv *interview.Interview, kind notification.Kind, title, body string) {
	params := mailer.TemplateParams{ScheduledAt: iv.ScheduledAt, Location: iv.Location, InterviewType: iv.Type}
	if p, err := s.posts.GetByID(ctx, iv.PostID); err == nil {
		params.PostTitle = p.Title
		params.ContactEmail = p.ContactEmail
	}
	_ = s.notifier.Dispatch(ctx, iv.StudentID, kind, title, body, params)
}

func validateScheduleInput(input ScheduleInput) error {
	fields := map[string]string{}
	if input.ApplicationID == "" {
		fields["application_id"] = "application_id is required"
	}
	if input.ScheduledAt.IsZero() {
		fields["scheduled_at"] = "scheduled_at is required"
	}
	if input.Location == "" {
		fields["location"] = "location is required"
	}
	if input.Type == "" {
		fields["type"] = "type is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid interview", fields)
	}
	return nil
}
