package app

import (
	"context"
	"strings"
	"time"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/analytics"
	"unijoblink/internal/domain/post"
)

type PostService struct {
	repo      post.Repository
	analytics analytics.Repository
}

func NewPostService(repo post.Repository, analytics analytics.Repository) *PostService {
	return &PostService{repo: repo, analytics: analytics}
}

func (s *PostService) Create(ctx context.Context, p post.Post) (*post.Post, error) {
	if err := validatePost(p); err != nil {
		return nil, err
	}
	if !p.Paid {
		p.Salary = ""
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "post.created", AccountID: &p.CompanyID, Payload: analyticsPayload(ctx, map[string]string{"post_id": created.ID.String()})})
	return created, nil
}

func (s *PostService) Update(ctx context.Context, p post.Post) (*post.Post, error) {
	current, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if current.CompanyID != p.CompanyID {
		return nil, common.NewError(common.CodeForbidden, "post belongs to another company", nil)
	}
	if err := validatePost(p); err != nil {
		return nil, err
	}
	if !p.Paid {
		p.Salary = ""
	}
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "post.updated", AccountID: &p.CompanyID, Payload: analyticsPayload(ctx, map[string]string{"post_id": updated.ID.String()})})
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, companyID, postID common.UUID) error {
	current, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if current.CompanyID != companyID {
		return common.NewError(common.CodeForbidden, "post belongs to another company", nil)
	}
	if err := s.repo.Delete(ctx, postID, companyID); err != nil {
		return err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "post.deleted", AccountID: &companyID, Payload: analyticsPayload(ctx, map[string]string{"post_id": postID.String()})})
	return nil
}

// Get serves the public single-post route, so only posts from approved
// companies are visible.
func (s *PostService) Get(ctx context.Context, id common.UUID) (*post.Post, error) {
	item, err := s.repo.GetPublishedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "post.viewed", Payload: analyticsPayload(ctx, map[string]string{"post_id": item.ID.String()})})
	return item, nil
}

func (s *PostService) List(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *PostService) ListByCompany(ctx context.Context, companyID common.UUID) ([]post.Post, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func validatePost(p post.Post) error {
	fields := map[string]string{}
	if strings.TrimSpace(p.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(p.Description) == "" {
		fields["description"] = "description is required"
	}
	if strings.TrimSpace(p.Location) == "" && !p.Remote {
		fields["location"] = "location is required for on-site posts"
	}
	if p.Paid && strings.TrimSpace(p.Salary) == "" {
		fields["salary"] = "salary is required for paid posts"
	}
	if !p.Paid && strings.TrimSpace(p.Salary) != "" {
		fields["salary"] = "salary must be empty for unpaid posts"
	}
	if p.Positions <= 0 {
		fields["positions"] = "positions must be at least 1"
	}
	if p.Deadline.IsZero() {
		fields["deadline"] = "deadline is required"
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		fields["end_date"] = "end_date must not precede start_date"
	}
	if strings.TrimSpace(p.ContactEmail) == "" || !strings.Contains(p.ContactEmail, "@") {
		fields["contact_email"] = "a valid contact_email is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid post", fields)
	}
	return nil
}

// deadlinePassed reports whether applications for p are closed.
func deadlinePassed(p post.Post, now time.Time) bool {
	return !p.Deadline.IsZero() && now.After(p.Deadline)
}
