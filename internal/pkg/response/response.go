package response

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ServerErrorBody is the opaque body written for every store failure.
const ServerErrorBody = "Server Error"

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes data as the raw JSON body. List endpoints return bare arrays,
// so there is no envelope.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode response body")
	}
}

// OK sends a 200 OK response
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// Error sends a JSON error object
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, map[string]ErrorInfo{
		"error": {Code: code, Message: message},
	})
}

// NotFound sends a 404 Not Found response
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, "NOT_FOUND", message)
}

// MethodNotAllowed sends a 405 Method Not Allowed response
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}

// InternalError sends a 500 with a plain text body that no client can
// mistake for a record array.
func InternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(ServerErrorBody))
}
