package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"unijoblink/internal/http/handlers"
	"unijoblink/internal/http/metrics"
	httpmw "unijoblink/internal/http/middleware"
	"unijoblink/internal/observability"
	"unijoblink/internal/security"
)

func newTestRouter() http.Handler {
	return NewRouter(RouterDependencies{
		AuthHandler:         handlers.NewAuthHandler(nil, nil),
		ProfileHandler:      handlers.NewProfileHandler(nil),
		PostHandler:         handlers.NewPostHandler(nil),
		ApplicationHandler:  handlers.NewApplicationHandler(nil, nil),
		InterviewHandler:    handlers.NewInterviewHandler(nil),
		NotificationHandler: handlers.NewNotificationHandler(nil),
		AdminHandler:        handlers.NewAdminHandler(nil, nil),
		AuthMiddleware:      httpmw.NewAuthMiddleware(security.NewJWTProvider("secret")),
		Metrics:             metrics.NewCollector(),
		Logger:              observability.NewLogger(),
		RequestTimeout:      5 * time.Second,
	})
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterUnauthenticatedStatusUpdateRejected(t *testing.T) {
	router := newTestRouter()
	body := strings.NewReader(`{"status":"accepted"}`)
	req := httptest.NewRequest(http.MethodPatch, "/applications/5f3c41a0-0000-0000-0000-000000000001/status", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouterBadBearerTokenRejected(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouterWrongRoleRejected(t *testing.T) {
	provider := security.NewJWTProvider("secret")
	token, _, err := provider.Generate("5f3c41a0-0000-0000-0000-0000000000aa", "student", time.Minute)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	router := newTestRouter()
	body := strings.NewReader(`{"status":"accepted"}`)
	req := httptest.NewRequest(http.MethodPatch, "/applications/5f3c41a0-0000-0000-0000-000000000001/status", body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRouterUnknownRouteIs404(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
