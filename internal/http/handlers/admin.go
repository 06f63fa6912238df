package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"unijoblink/internal/app"
	"unijoblink/internal/common"
	"unijoblink/internal/domain/account"
	"unijoblink/internal/http/response"
)

type AdminHandler struct {
	accounts  *app.AccountService
	directory *app.DirectoryService
}

func NewAdminHandler(accounts *app.AccountService, directory *app.DirectoryService) *AdminHandler {
	return &AdminHandler{accounts: accounts, directory: directory}
}

func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	actor, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	filter, err := directoryFilterFromQuery(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	entries, err := h.directory.List(r.Context(), actor, filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, entries)
}

func (h *AdminHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	actor, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	targetID, err := idFromPath(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	target, err := h.accounts.Get(r.Context(), actor, targetID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, target)
}

type reviewRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) ReviewAccount(w http.ResponseWriter, r *http.Request) {
	actor, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	targetID, err := idFromPath(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	status, err := account.ParseStatus(req.Status)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.accounts.Review(r.Context(), actor, targetID, status)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	actor, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	targetID, err := idFromPath(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.accounts.Delete(r.Context(), actor, targetID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	actor, ok := principalFromRequest(r)
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	input, err := registerInputFromRequest(req)
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.accounts.AdminCreate(r.Context(), actor, input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func directoryFilterFromQuery(r *http.Request) (app.DirectoryFilter, error) {
	q := r.URL.Query()
	role, err := account.ParseRole(q.Get("role"))
	if err != nil {
		return app.DirectoryFilter{}, err
	}
	filter := app.DirectoryFilter{
		Role:   role,
		Search: strings.TrimSpace(q.Get("search")),
		Status: strings.TrimSpace(q.Get("status")),
		Major:  strings.TrimSpace(q.Get("major")),
	}
	if value := strings.TrimSpace(q.Get("batch_year")); value != "" {
		year, err := strconv.Atoi(value)
		if err != nil {
			return app.DirectoryFilter{}, common.NewValidationError("invalid filter", map[string]string{"batch_year": "must be an integer"})
		}
		filter.BatchYear = year
	}
	return filter, nil
}
