// Package httputil centralizes the JSON response envelope so every endpoint
// answers with the same shape: {"response": ..., "code": 200} on success and
// {"error": ..., "code": <status>} on failure.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "scoring-gateway/pkg/domain-errors"
)

// Standard failure strings, keyed by status. Used when a failure carries no
// more specific description.
var failureText = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusUnprocessableEntity: "Invalid Request",
	http.StatusInternalServerError: "Internal Server Error",
}

// WriteResponse writes a success envelope with status 200.
func WriteResponse(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, map[string]any{
		"response": payload,
		"code":     http.StatusOK,
	})
}

// WriteFailure writes a failure envelope. An empty message falls back to the
// standard text for the status.
func WriteFailure(w http.ResponseWriter, status int, message string) {
	if message == "" {
		message = failureText[status]
		if message == "" {
			message = "Unknown Error"
		}
	}
	writeJSON(w, status, map[string]any{
		"error": message,
		"code":  status,
	})
}

// WriteError translates a coded error into a failure envelope. Internal
// errors never leak their message to the caller.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := dErrors.ToHTTPStatus(code)
	if status == http.StatusInternalServerError {
		WriteFailure(w, status, "")
		return
	}
	WriteFailure(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
