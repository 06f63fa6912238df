package app

import (
	"context"
	"fmt"
	"time"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/domain/analytics"
	"unijoblink/internal/domain/application"
	"unijoblink/internal/domain/notification"
	"unijoblink/internal/domain/post"
	"unijoblink/internal/mailer"
)

// Notifier fans a status change out to the in-app inbox and email.
// Implementations never fail the caller.
type Notifier interface {
	Dispatch(ctx context.Context, recipientID common.UUID, kind notification.Kind, title, body string, params mailer.TemplateParams) error
}

type ApplicationService struct {
	repo      application.Repository
	posts     post.Repository
	notifier  Notifier
	analytics analytics.Repository
}

func NewApplicationService(repo application.Repository, posts post.Repository, notifier Notifier, analytics analytics.Repository) *ApplicationService {
	return &ApplicationService{repo: repo, posts: posts, notifier: notifier, analytics: analytics}
}

// Apply creates an application in status applied. At most one application
// exists per (student, post) pair.
func (s *ApplicationService) Apply(ctx context.Context, postID, studentID common.UUID) (*application.Application, error) {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if deadlinePassed(*p, time.Now().UTC()) {
		return nil, common.NewError(common.CodeValidation, "application deadline has passed", nil)
	}
	if _, err := s.repo.FindByPostAndStudent(ctx, postID, studentID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	created, err := s.repo.Create(ctx, application.Application{
		PostID:    postID,
		StudentID: studentID,
		Status:    application.StatusApplied,
	})
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "application.created", AccountID: &studentID, Payload: analyticsPayload(ctx, map[string]string{"application_id": created.ID.String(), "post_id": postID.String()})})
	return created, nil
}

// UpdateStatus applies applied -> accepted/rejected for the owning company
// and dispatches a notification + email to the student. Re-submitting the
// current status is an idempotent success; leaving a terminal status is
// rejected.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID common.UUID, status application.Status, companyID common.UUID) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
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
	if status == app.Status {
		return app, nil
	}
	if application.IsTerminal(app.Status) {
		return nil, common.NewError(common.CodeValidation, "application status is final", nil)
	}
	if !application.IsTransitionAllowed(app.Status, status) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}
	updated, err := s.repo.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		return nil, err
	}
	s.notifyDecision(ctx, updated, p)
	_ = s.analytics.Create(ctx, analytics.Event{Name: "application.status_changed", AccountID: &companyID, Payload: analyticsPayload(ctx, map[string]string{"application_id": updated.ID.String(), "status": string(status)})})
	return updated, nil
}

func (s *ApplicationService) notifyDecision(ctx context.Context, app *application.Application, p *post.Post) {
	params := mailer.TemplateParams{PostTitle: p.Title, ContactEmail: p.ContactEmail}
	switch app.Status {
	case application.StatusAccepted:
		_ = s.notifier.Dispatch(ctx, app.StudentID, notification.KindApplicationAccepted,
			"Application Accepted",
			fmt.Sprintf("Your application for %q was accepted.", p.Title), params)
	case application.StatusRejected:
		_ = s.notifier.Dispatch(ctx, app.StudentID, notification.KindApplicationRejected,
			"Application Rejected",
			fmt.Sprintf("Your application for %q was rejected.", p.Title), params)
	}
}

func (s *ApplicationService) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.Application, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *ApplicationService) ListByCompany(ctx context.Context, companyID common.UUID) ([]application.Application, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

// Get returns an application to its student or to the company owning the
// post; every other actor is rejected.
func (s *ApplicationService) Get(ctx context.Context, actor Principal, id common.UUID) (*application.Application, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch actor.Role {
	case account.RoleStudent:
		if item.StudentID != actor.AccountID {
			return nil, common.NewError(common.CodeForbidden, "application belongs to another student", nil)
		}
	case account.RoleCompany:
		p, err := s.posts.GetByID(ctx, item.PostID)
		if err != nil {
			return nil, err
		}
		if p.CompanyID != actor.AccountID {
			return nil, common.NewError(common.CodeForbidden, "application belongs to another company", nil)
		}
	default:
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
	return item, nil
}
