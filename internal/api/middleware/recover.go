package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/taskory-api/internal/api/shared"
	"github.com/phrazzld/taskory-api/internal/platform/logger"
)

// RecovererMiddleware is the terminal handler for panics escaping request
// handling. It emits the standard JSON error body; the stack trace is
// included in the response only when includeStack is set (non-production).
type RecovererMiddleware struct {
	includeStack bool
}

// NewRecovererMiddleware creates a new RecovererMiddleware.
// includeStack should be false in production so stack traces never leak.
func NewRecovererMiddleware(includeStack bool) *RecovererMiddleware {
	return &RecovererMiddleware{includeStack: includeStack}
}

// Recover wraps next, converting panics into 500 responses.
func (m *RecovererMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// The connection is gone; nothing useful to write.
				panic(rec)
			}

			stack := debug.Stack()
			log := logger.FromContext(r.Context())
			log.Error("panic recovered",
				"panic", fmt.Sprint(rec),
				"path", r.URL.Path,
				"method", r.Method,
				"stack", string(stack))

			resp := shared.ErrorResponse{
				Message: "Internal server error",
				TraceID: shared.GetTraceID(r.Context()),
			}
			if m.includeStack {
				resp.Stack = fmt.Sprintf("%v\n%s", rec, stack)
			}
			shared.RespondWithJSON(w, r, http.StatusInternalServerError, resp)
		}()

		next.ServeHTTP(w, r)
	})
}
