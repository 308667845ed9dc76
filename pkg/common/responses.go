package common

import (
	"encoding/json"
	"net/http"

	apperrors "freshtrack-backend/pkg/errors"
)

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondMessage sends a {"message": ...} response
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}

// RespondAppError translates an application error into its HTTP shape.
// Validation errors carry the full list of violated rules; anything that is
// not an AppError is masked as a generic 500.
func RespondAppError(w http.ResponseWriter, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		RespondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	body := map[string]interface{}{"message": appErr.Message}
	if violations, ok := appErr.Details["errors"]; ok {
		body["errors"] = violations
	}
	RespondJSON(w, appErr.HTTPStatus, body)
}

// ParseJSONBody parses a JSON request body with a size limit.
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
