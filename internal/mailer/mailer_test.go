package mailer

import (
	"strings"
	"testing"
	"time"

	"unijoblink/internal/domain/notification"
)

func TestRenderPerEventTemplates(t *testing.T) {
	params := TemplateParams{
		RecipientName: "Jamie",
		PostTitle:     "Backend Intern",
		ScheduledAt:   time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		Location:      "HQ, Room 2",
		InterviewType: "onsite",
		ContactEmail:  "jobs@example.com",
	}

	accepted := Render(notification.KindApplicationAccepted, params)
	if accepted.Subject != "Application Accepted" {
		t.Fatalf("unexpected subject: %s", accepted.Subject)
	}
	if !strings.Contains(accepted.Body, "Backend Intern") || !strings.Contains(accepted.Body, "jobs@example.com") {
		t.Fatalf("accepted body missing details: %s", accepted.Body)
	}

	scheduled := Render(notification.KindInterviewScheduled, params)
	if !strings.Contains(scheduled.Body, "HQ, Room 2") || !strings.Contains(scheduled.Body, "14 Sep 2026") {
		t.Fatalf("scheduled body missing details: %s", scheduled.Body)
	}

	rejected := Render(notification.KindApplicationRejected, params)
	if strings.Contains(rejected.Body, "accepted") {
		t.Fatalf("rejection body reads like an acceptance: %s", rejected.Body)
	}
}

func TestRenderUnknownKindFallsBack(t *testing.T) {
	msg := Render(notification.Kind("something-else"), TemplateParams{RecipientName: "Jamie"})
	if msg.Subject == "" || msg.Body == "" {
		t.Fatal("fallback message must not be empty")
	}
}
