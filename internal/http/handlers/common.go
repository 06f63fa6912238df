package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"unijoblink/internal/app"
	"unijoblink/internal/common"
	"unijoblink/internal/http/middleware"
)

func decodeJSON(r *http.Request, dst any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return common.NewValidationError("request body is required", nil)
		}
		return common.NewValidationError("invalid request body", nil)
	}
	return nil
}

// idFromPath returns the path segment at index, so for
// /applications/{id}/status the id sits at index 2.
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index < 1 || index > len(parts) {
		return "", common.NewValidationError("invalid path", nil)
	}
	id, err := common.ParseUUID(parts[index-1])
	if err != nil {
		return "", common.NewValidationError("invalid id", map[string]string{"id": "invalid uuid"})
	}
	return id, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}

func principalFromRequest(r *http.Request) (app.Principal, bool) {
	id, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		return app.Principal{}, false
	}
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		return app.Principal{}, false
	}
	return app.Principal{AccountID: id, Role: role}, true
}
