package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"unijoblink/internal/common"
)

type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// Error maps a coded error to its HTTP status and writes the {message}
// envelope. Unknown errors become opaque 500s.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Message: "internal server error"}

	var coded *common.Error
	if errors.As(err, &coded) {
		body.Message = coded.Message
		body.Fields = coded.Fields
		switch coded.Code {
		case common.CodeValidation:
			status = http.StatusBadRequest
		case common.CodeUnauthorized:
			status = http.StatusUnauthorized
		case common.CodeForbidden:
			status = http.StatusForbidden
		case common.CodeNotFound:
			status = http.StatusNotFound
		case common.CodeConflict:
			status = http.StatusConflict
		case common.CodeRateLimited:
			status = http.StatusTooManyRequests
		default:
			status = http.StatusInternalServerError
			body.Message = "internal server error"
			body.Fields = nil
		}
	}
	JSON(w, status, body)
}
