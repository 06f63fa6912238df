package app

import (
	"context"
	"testing"
	"time"

	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/domain/application"
	"unijoblink/internal/domain/notification"
	"unijoblink/internal/domain/post"
)

func seedPost(t *testing.T, repo *fakePostRepo, companyID common.UUID) *post.Post {
	t.Helper()
	created, err := repo.Create(context.Background(), post.Post{
		CompanyID:    companyID,
		Title:        "Backend Intern",
		Description:  "Work on the API",
		Paid:         true,
		Salary:       "1000",
		Location:     "Berlin",
		Deadline:     time.Now().UTC().Add(24 * time.Hour),
		Positions:    2,
		ContactEmail: "jobs@example.com",
	})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return created
}

func TestApplicationServiceApply_Succeeds(t *testing.T) {
	posts := newFakePostRepo()
	apps := newFakeApplicationRepo()
	notifier := &fakeNotifier{}
	service := NewApplicationService(apps, posts, notifier, noopAnalyticsRepo{})

	companyID := common.NewUUID()
	studentID := common.NewUUID()
	p := seedPost(t, posts, companyID)

	created, err := service.Apply(context.Background(), p.ID, studentID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Status != application.StatusApplied {
		t.Fatalf("expected status applied, got %s", created.Status)
	}
	if created.PostID != p.ID || created.StudentID != studentID {
		t.Fatal("application not linked to post and student")
	}
}

func TestApplicationServiceApply_RejectsDuplicate(t *testing.T) {
	posts := newFakePostRepo()
	apps := newFakeApplicationRepo()
	service := NewApplicationService(apps, posts, &fakeNotifier{}, noopAnalyticsRepo{})

	studentID := common.NewUUID()
	p := seedPost(t, posts, common.NewUUID())

	if _, err := service.Apply(context.Background(), p.ID, studentID); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	_, err := service.Apply(context.Background(), p.ID, studentID)
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestApplicationServiceApply_RejectsPassedDeadline(t *testing.T) {
	posts := newFakePostRepo()
	apps := newFakeApplicationRepo()
	service := NewApplicationService(apps, posts, &fakeNotifier{}, noopAnalyticsRepo{})

	expired, err := posts.Create(context.Background(), post.Post{
		CompanyID:    common.NewUUID(),
		Title:        "Late",
		Description:  "Too late",
		Deadline:     time.Now().UTC().Add(-time.Hour),
		Positions:    1,
		ContactEmail: "jobs@example.com",
	})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}

	_, err = service.Apply(context.Background(), expired.ID, common.NewUUID())
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceUpdateStatus_AcceptNotifiesStudent(t *testing.T) {
	posts := newFakePostRepo()
	apps := newFakeApplicationRepo()
	notifier := &fakeNotifier{}
	service := NewApplicationService(apps, posts, notifier, noopAnalyticsRepo{})

	companyID := common.NewUUID()
	studentID := common.NewUUID()
	p := seedPost(t, posts, companyID)
	created, err := service.Apply(context.Background(), p.ID, studentID)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	updated, err := service.UpdateStatus(context.Background(), created.ID, application.StatusAccepted, companyID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != application.StatusAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}
	if notifier.count() != 1 {
		t.Fatalf("expected one notification, got %d", notifier.count())
	}
	if notifier.dispatched[0].recipientID != studentID {
		t.Fatal("notification sent to the wrong account")
	}
	if notifier.dispatched[0].kind != notification.KindApplicationAccepted {
		t.Fatalf("expected kind %s, got %s", notification.KindApplicationAccepted, notifier.dispatched[0].kind)
	}
}

func TestApplicationServiceUpdateStatus_ForbiddenForOtherCompany(t *testing.T) {
	posts := newFakePostRepo()
	apps := newFakeApplicationRepo()
	notifier := &fakeNotifier{}
	service := NewApplicationService(apps, posts, notifier, noopAnalyticsRepo{})

	ownerID := common.NewUUID()
	p := seedPost(t, posts, ownerID)
	created, err := service.Apply(context.Background(), p.ID, common.NewUUID())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	_, err = service.UpdateStatus(context.Background(), created.ID, application.StatusAccepted, common.NewUUID())
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	stored, err := apps.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("load application: %v", err)
	}
	if stored.Status != application.StatusApplied {
		t.Fatalf("status changed despite forbidden update: %s", stored.Status)
	}
	if notifier.count() != 0 {
		t.Fatalf("expected no notification, got %d", notifier.count())
	}
}

func TestApplicationServiceUpdateStatus_SameStatusIsIdempotent(t *testing.T) {
	posts := newFakePostRepo()
	apps := newFakeApplicationRepo()
	notifier := &fakeNotifier{}
	service := NewApplicationService(apps, posts, notifier, noopAnalyticsRepo{})

	companyID := common.NewUUID()
	p := seedPost(t, posts, companyID)
	created, err := service.Apply(context.Background(), p.ID, common.NewUUID())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), created.ID, application.StatusAccepted, companyID); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	updated, err := service.UpdateStatus(context.Background(), created.ID, application.StatusAccepted, companyID)
	if err != nil {
		t.Fatalf("expected idempotent success, got %v", err)
	}
	if updated.Status != application.StatusAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}
	if notifier.count() != 1 {
		t.Fatalf("expected no second notification, got %d", notifier.count())
	}
}

func TestApplicationServiceUpdateStatus_TerminalCannotChange(t *testing.T) {
	posts := newFakePostRepo()
	apps := newFakeApplicationRepo()
	service := NewApplicationService(apps, posts, &fakeNotifier{}, noopAnalyticsRepo{})

	companyID := common.NewUUID()
	p := seedPost(t, posts, companyID)
	created, err := service.Apply(context.Background(), p.ID, common.NewUUID())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), created.ID, application.StatusRejected, companyID); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	_, err = service.UpdateStatus(context.Background(), created.ID, application.StatusAccepted, companyID)
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error leaving terminal status, got %v", err)
	}
}

func TestApplicationServiceGet_VisibleToParties(t *testing.T) {
	posts := newFakePostRepo()
	apps := newFakeApplicationRepo()
	service := NewApplicationService(apps, posts, &fakeNotifier{}, noopAnalyticsRepo{})

	companyID := common.NewUUID()
	studentID := common.NewUUID()
	p := seedPost(t, posts, companyID)
	created, err := service.Apply(context.Background(), p.ID, studentID)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if _, err := service.Get(context.Background(), Principal{AccountID: studentID, Role: account.RoleStudent}, created.ID); err != nil {
		t.Fatalf("applicant should read own application: %v", err)
	}
	if _, err := service.Get(context.Background(), Principal{AccountID: companyID, Role: account.RoleCompany}, created.ID); err != nil {
		t.Fatalf("owning company should read the application: %v", err)
	}
}

func TestApplicationServiceGet_ForbiddenForNonParties(t *testing.T) {
	posts := newFakePostRepo()
	apps := newFakeApplicationRepo()
	service := NewApplicationService(apps, posts, &fakeNotifier{}, noopAnalyticsRepo{})

	companyID := common.NewUUID()
	p := seedPost(t, posts, companyID)
	created, err := service.Apply(context.Background(), p.ID, common.NewUUID())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	cases := []struct {
		name  string
		actor Principal
	}{
		{"other student", Principal{AccountID: common.NewUUID(), Role: account.RoleStudent}},
		{"other company", Principal{AccountID: common.NewUUID(), Role: account.RoleCompany}},
		{"teacher", Principal{AccountID: common.NewUUID(), Role: account.RoleTeacher}},
		{"university", Principal{AccountID: common.NewUUID(), Role: account.RoleUniversity}},
	}
	for _, tc := range cases {
		if _, err := service.Get(context.Background(), tc.actor, created.ID); !common.Is(err, common.CodeForbidden) {
			t.Fatalf("%s: expected forbidden, got %v", tc.name, err)
		}
	}
}
