package web

// errors.go maps pipeline errors onto HTTP responses.
//
// The technical error is logged with the request ID; the client receives
// the core.MapError message and code as JSON.

import (
	"encoding/json"
	"net/http"

	"github.com/JonMunkholm/replenish/internal/core"
	"github.com/JonMunkholm/replenish/internal/logging"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// statusForCode picks the HTTP status for a user message code.
func statusForCode(code string) int {
	switch code {
	case "HDR001", "COL001":
		return http.StatusUnprocessableEntity
	case "SRC001":
		return http.StatusNotFound
	case "SRC002":
		return http.StatusForbidden
	case "RUN001":
		return http.StatusServiceUnavailable
	case "RUN002":
		return http.StatusGatewayTimeout
	case "ERR000":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes its user-facing JSON form.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	userMsg := core.MapError(err)
	status := statusForCode(userMsg.Code)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	respondErrorJSON(w, userMsg, status)
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}
