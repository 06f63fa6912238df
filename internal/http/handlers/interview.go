package handlers

import (
	"net/http"
	"strings"
	"time"

	"unijoblink/internal/app"
	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/domain/interview"
	"unijoblink/internal/http/middleware"
	"unijoblink/internal/http/response"
)

type InterviewHandler struct {
	interviews *app.InterviewService
}

func NewInterviewHandler(interviews *app.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

type scheduleRequest struct {
	ApplicationID string `json:"application_id"`
	ScheduledAt   string `json:"scheduled_at"`
	Location      string `json:"location"`
	Type          string `json:"type"`
}

func (h *InterviewHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req scheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	input := app.ScheduleInput{Location: req.Location, Type: req.Type}
	if strings.TrimSpace(req.ApplicationID) != "" {
		id, err := common.ParseUUID(req.ApplicationID)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid request", map[string]string{"application_id": "invalid uuid"}))
			return
		}
		input.ApplicationID = id
	}
	if strings.TrimSpace(req.ScheduledAt) != "" {
		at, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid request", map[string]string{"scheduled_at": "must be RFC 3339"}))
			return
		}
		input.ScheduledAt = at
	}
	created, err := h.interviews.Schedule(r.Context(), companyID, input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	interviewID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.interviews.Get(r.Context(), actor, interviewID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	switch actor.Role {
	case account.RoleStudent:
		items, err := h.interviews.ListByStudent(r.Context(), actor.AccountID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
	case account.RoleCompany:
		items, err := h.interviews.ListByCompany(r.Context(), actor.AccountID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
	default:
		response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
	}
}

type updateInterviewRequest struct {
	ScheduledAt string `json:"scheduled_at,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Update reschedules when scheduled_at is set and cancels when status is
// CANCELLED; the two are mutually exclusive.
func (h *InterviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	interviewID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateInterviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	hasTime := strings.TrimSpace(req.ScheduledAt) != ""
	hasStatus := strings.TrimSpace(req.Status) != ""
	switch {
	case hasTime && hasStatus:
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"status": "provide scheduled_at or status, not both"}))
	case hasTime:
		at, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid request", map[string]string{"scheduled_at": "must be RFC 3339"}))
			return
		}
		updated, err := h.interviews.Reschedule(r.Context(), companyID, interviewID, at)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, updated)
	case hasStatus:
		status, err := interview.ParseStatus(req.Status)
		if err != nil {
			response.Error(w, err)
			return
		}
		if status != interview.StatusCancelled {
			response.Error(w, common.NewValidationError("invalid request", map[string]string{"status": "companies may only set CANCELLED"}))
			return
		}
		updated, err := h.interviews.Cancel(r.Context(), companyID, interviewID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, updated)
	default:
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"scheduled_at": "scheduled_at or status is required"}))
	}
}

type respondRequest struct {
	Status string `json:"status"`
}

func (h *InterviewHandler) Respond(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	interviewID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req respondRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	status, err := interview.ParseStatus(req.Status)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.interviews.Respond(r.Context(), studentID, interviewID, status)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
