package handlers

import (
	"net/http"

	"unijoblink/internal/app"
	"unijoblink/internal/common"
	"unijoblink/internal/domain/profile"
	"unijoblink/internal/http/middleware"
	"unijoblink/internal/http/response"
)

type ProfileHandler struct {
	profiles *app.ProfileService
}

func NewProfileHandler(profiles *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	p, err := h.profiles.GetStudent(r.Context(), accountID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

type studentProfileRequest struct {
	UniversityID string   `json:"university_id,omitempty"`
	Major        string   `json:"major"`
	BatchYear    int      `json:"batch_year"`
	Skills       []string `json:"skills,omitempty"`
}

func (h *ProfileHandler) UpsertStudent(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req studentProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	p := profile.StudentProfile{
		AccountID: accountID,
		Major:     req.Major,
		BatchYear: req.BatchYear,
		Skills:    req.Skills,
	}
	if req.UniversityID != "" {
		id, err := common.ParseUUID(req.UniversityID)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid request", map[string]string{"university_id": "invalid uuid"}))
			return
		}
		p.UniversityID = id
	}
	updated, err := h.profiles.UpsertStudent(r.Context(), p)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ProfileHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	p, err := h.profiles.GetCompany(r.Context(), accountID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

type companyProfileRequest struct {
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
}

func (h *ProfileHandler) UpsertCompany(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req companyProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.profiles.UpsertCompany(r.Context(), profile.CompanyProfile{
		AccountID: accountID,
		Location:  req.Location,
		Website:   req.Website,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ProfileHandler) GetUniversity(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	p, err := h.profiles.GetUniversity(r.Context(), accountID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

type universityProfileRequest struct {
	Address string `json:"address"`
}

func (h *ProfileHandler) UpsertUniversity(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req universityProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.profiles.UpsertUniversity(r.Context(), profile.UniversityProfile{
		AccountID: accountID,
		Address:   req.Address,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ProfileHandler) GetTeacher(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	p, err := h.profiles.GetTeacher(r.Context(), accountID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

type teacherProfileRequest struct {
	UniversityID string `json:"university_id,omitempty"`
	Department   string `json:"department"`
}

func (h *ProfileHandler) UpsertTeacher(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req teacherProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	p := profile.TeacherProfile{
		AccountID:  accountID,
		Department: req.Department,
	}
	if req.UniversityID != "" {
		id, err := common.ParseUUID(req.UniversityID)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid request", map[string]string{"university_id": "invalid uuid"}))
			return
		}
		p.UniversityID = id
	}
	updated, err := h.profiles.UpsertTeacher(r.Context(), p)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
