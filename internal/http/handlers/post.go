package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"unijoblink/internal/app"
	"unijoblink/internal/common"
	"unijoblink/internal/domain/post"
	"unijoblink/internal/http/middleware"
	"unijoblink/internal/http/response"
)

type PostHandler struct {
	posts *app.PostService
}

func NewPostHandler(posts *app.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type postRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements,omitempty"`
	Paid         bool     `json:"paid"`
	Salary       string   `json:"salary,omitempty"`
	Location     string   `json:"location,omitempty"`
	Remote       bool     `json:"remote"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Deadline     string   `json:"deadline"`
	Positions    int      `json:"positions"`
	ContactEmail string   `json:"contact_email"`
}

func postFromRequest(req postRequest, companyID common.UUID) (post.Post, error) {
	p := post.Post{
		CompanyID:    companyID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Paid:         req.Paid,
		Salary:       req.Salary,
		Location:     req.Location,
		Remote:       req.Remote,
		Positions:    req.Positions,
		ContactEmail: req.ContactEmail,
	}
	fields := map[string]string{}
	for _, item := range []struct {
		name  string
		value string
		dst   *time.Time
	}{
		{"start_date", req.StartDate, &p.StartDate},
		{"end_date", req.EndDate, &p.EndDate},
		{"deadline", req.Deadline, &p.Deadline},
	} {
		if item.value == "" {
			continue
		}
		parsed, err := time.Parse(time.RFC3339, item.value)
		if err != nil {
			fields[item.name] = "must be RFC 3339"
			continue
		}
		*item.dst = parsed.UTC()
	}
	if len(fields) > 0 {
		return post.Post{}, common.NewValidationError("invalid post", fields)
	}
	return p, nil
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	p, err := postFromRequest(req, companyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.posts.Create(r.Context(), p)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	postID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	p, err := postFromRequest(req, companyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	p.ID = postID
	updated, err := h.posts.Update(r.Context(), p)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	postID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.posts.Delete(r.Context(), companyID, postID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.posts.Get(r.Context(), postID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := postFilterFromQuery(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.posts.List(r.Context(), filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *PostHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.posts.ListByCompany(r.Context(), companyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func postFilterFromQuery(r *http.Request) (post.Filter, error) {
	q := r.URL.Query()
	filter := post.Filter{
		Search:   strings.TrimSpace(q.Get("search")),
		Location: strings.TrimSpace(q.Get("location")),
	}
	fields := map[string]string{}
	for _, name := range []string{"remote", "paid"} {
		value := strings.TrimSpace(q.Get(name))
		if value == "" {
			continue
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			fields[name] = "must be true or false"
			continue
		}
		if name == "remote" {
			filter.Remote = &parsed
		} else {
			filter.Paid = &parsed
		}
	}
	for _, item := range []struct {
		name string
		dst  *int
	}{
		{"limit", &filter.Limit},
		{"offset", &filter.Offset},
	} {
		value := strings.TrimSpace(q.Get(item.name))
		if value == "" {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			fields[item.name] = "must be an integer"
			continue
		}
		*item.dst = parsed
	}
	if len(fields) > 0 {
		return post.Filter{}, common.NewValidationError("invalid filter", fields)
	}
	return filter, nil
}
