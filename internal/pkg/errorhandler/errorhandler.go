package errorhandler

import (
	"context"
	"net/http"

	"github.com/portfolio/portfolio-api/internal/pkg/logger"
	"github.com/portfolio/portfolio-api/internal/pkg/response"
)

// HandleStoreError logs a failed store operation and answers with the generic
// 500. The cause is never reported to the client, whatever its kind.
func HandleStoreError(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	logger.FromContext(ctx).Error().
		Str("operation", operation).
		Err(err).
		Msg("Store error")

	response.InternalError(w)
}

// HandlePanic logs a recovered panic with its stack and answers with the
// generic 500.
func HandlePanic(ctx context.Context, w http.ResponseWriter, r *http.Request, panicErr interface{}, stack string) {
	logger.FromContext(ctx).Error().
		Interface("panic_error", panicErr).
		Str("panic_stack", stack).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Panic recovered")

	response.InternalError(w)
}

// LogValidationError logs rejected fields of a record.
func LogValidationError(ctx context.Context, kind string, fieldErrors map[string]string) {
	logger.FromContext(ctx).Warn().
		Str("kind", kind).
		Interface("validation_errors", fieldErrors).
		Msg("Validation error")
}
