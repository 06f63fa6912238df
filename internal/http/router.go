package http

import (
	"net/http"
	"strings"
	"time"

	"unijoblink/internal/domain/account"
	"unijoblink/internal/http/handlers"
	"unijoblink/internal/http/metrics"
	httpmw "unijoblink/internal/http/middleware"
	"unijoblink/internal/observability"
)

type RouterDependencies struct {
	AuthHandler         *handlers.AuthHandler
	ProfileHandler      *handlers.ProfileHandler
	PostHandler         *handlers.PostHandler
	ApplicationHandler  *handlers.ApplicationHandler
	InterviewHandler    *handlers.InterviewHandler
	NotificationHandler *handlers.NotificationHandler
	AdminHandler        *handlers.AdminHandler
	AuthMiddleware      *httpmw.AuthMiddleware
	Metrics             *metrics.Collector
	Logger              *observability.Logger
	RequestTimeout      time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		r.deps.Metrics.Instrument,
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.Metrics.Handler().ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/refresh":
			r.deps.AuthHandler.Refresh(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/logout":
			r.deps.AuthHandler.Logout(w, req)
			return
		case req.Method == http.MethodGet && path == "/posts":
			r.deps.PostHandler.List(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/posts/"):
			r.deps.PostHandler.Get(w, req)
			return
		}

		if protectedPrefix(path) {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func protectedPrefix(path string) bool {
	for _, prefix := range []string{"/students", "/companies", "/universities", "/teachers", "/posts", "/applications", "/interviews", "/notifications", "/admin"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case path == "/students/profile" && req.Method == http.MethodGet:
		httpmw.RequireRole(account.RoleStudent)(http.HandlerFunc(r.deps.ProfileHandler.GetStudent)).ServeHTTP(w, req)
		return
	case path == "/students/profile" && (req.Method == http.MethodPost || req.Method == http.MethodPut):
		httpmw.RequireRole(account.RoleStudent)(http.HandlerFunc(r.deps.ProfileHandler.UpsertStudent)).ServeHTTP(w, req)
		return
	case path == "/companies/profile" && req.Method == http.MethodGet:
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.ProfileHandler.GetCompany)).ServeHTTP(w, req)
		return
	case path == "/companies/profile" && (req.Method == http.MethodPost || req.Method == http.MethodPut):
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.ProfileHandler.UpsertCompany)).ServeHTTP(w, req)
		return
	case path == "/universities/profile" && req.Method == http.MethodGet:
		httpmw.RequireRole(account.RoleUniversity)(http.HandlerFunc(r.deps.ProfileHandler.GetUniversity)).ServeHTTP(w, req)
		return
	case path == "/universities/profile" && (req.Method == http.MethodPost || req.Method == http.MethodPut):
		httpmw.RequireRole(account.RoleUniversity)(http.HandlerFunc(r.deps.ProfileHandler.UpsertUniversity)).ServeHTTP(w, req)
		return
	case path == "/teachers/profile" && req.Method == http.MethodGet:
		httpmw.RequireRole(account.RoleTeacher)(http.HandlerFunc(r.deps.ProfileHandler.GetTeacher)).ServeHTTP(w, req)
		return
	case path == "/teachers/profile" && (req.Method == http.MethodPost || req.Method == http.MethodPut):
		httpmw.RequireRole(account.RoleTeacher)(http.HandlerFunc(r.deps.ProfileHandler.UpsertTeacher)).ServeHTTP(w, req)
		return
	case path == "/companies/posts" && req.Method == http.MethodGet:
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.PostHandler.ListByCompany)).ServeHTTP(w, req)
		return
	case path == "/posts" && req.Method == http.MethodPost:
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.PostHandler.Create)).ServeHTTP(w, req)
		return
	case strings.HasPrefix(path, "/posts/") && req.Method == http.MethodPatch:
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.PostHandler.Update)).ServeHTTP(w, req)
		return
	case strings.HasPrefix(path, "/posts/") && req.Method == http.MethodDelete:
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.PostHandler.Delete)).ServeHTTP(w, req)
		return
	case path == "/applications" && req.Method == http.MethodPost:
		httpmw.RequireRole(account.RoleStudent)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case path == "/applications" && req.Method == http.MethodGet:
		r.deps.ApplicationHandler.List(w, req)
		return
	case strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status") && req.Method == http.MethodPatch:
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case strings.HasPrefix(path, "/applications/") && req.Method == http.MethodGet:
		r.deps.ApplicationHandler.Get(w, req)
		return
	case path == "/interviews" && req.Method == http.MethodPost:
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.InterviewHandler.Schedule)).ServeHTTP(w, req)
		return
	case path == "/interviews" && req.Method == http.MethodGet:
		r.deps.InterviewHandler.List(w, req)
		return
	case strings.HasPrefix(path, "/interviews/") && strings.HasSuffix(path, "/response") && req.Method == http.MethodPost:
		httpmw.RequireRole(account.RoleStudent)(http.HandlerFunc(r.deps.InterviewHandler.Respond)).ServeHTTP(w, req)
		return
	case strings.HasPrefix(path, "/interviews/") && req.Method == http.MethodPatch:
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.InterviewHandler.Update)).ServeHTTP(w, req)
		return
	case strings.HasPrefix(path, "/interviews/") && req.Method == http.MethodGet:
		r.deps.InterviewHandler.Get(w, req)
		return
	case path == "/notifications" && req.Method == http.MethodGet:
		r.deps.NotificationHandler.List(w, req)
		return
	case strings.HasPrefix(path, "/notifications/") && strings.HasSuffix(path, "/read") && req.Method == http.MethodPatch:
		r.deps.NotificationHandler.MarkRead(w, req)
		return
	case path == "/admin/accounts" && req.Method == http.MethodGet:
		httpmw.RequireRole(account.RoleAdmin, account.RoleUniversity)(http.HandlerFunc(r.deps.AdminHandler.ListAccounts)).ServeHTTP(w, req)
		return
	case path == "/admin/accounts" && req.Method == http.MethodPost:
		httpmw.RequireRole(account.RoleAdmin)(http.HandlerFunc(r.deps.AdminHandler.CreateAccount)).ServeHTTP(w, req)
		return
	case strings.HasPrefix(path, "/admin/accounts/") && strings.HasSuffix(path, "/status") && req.Method == http.MethodPatch:
		httpmw.RequireRole(account.RoleAdmin, account.RoleUniversity)(http.HandlerFunc(r.deps.AdminHandler.ReviewAccount)).ServeHTTP(w, req)
		return
	case strings.HasPrefix(path, "/admin/accounts/") && req.Method == http.MethodGet:
		httpmw.RequireRole(account.RoleAdmin, account.RoleUniversity)(http.HandlerFunc(r.deps.AdminHandler.GetAccount)).ServeHTTP(w, req)
		return
	case strings.HasPrefix(path, "/admin/accounts/") && req.Method == http.MethodDelete:
		httpmw.RequireRole(account.RoleAdmin)(http.HandlerFunc(r.deps.AdminHandler.DeleteAccount)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
