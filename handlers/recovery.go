package handlers

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/vitalvas/brickoo/dispatch"
)

// RecoveryConfig configures the recovery middleware.
type RecoveryConfig struct {
	// Logger receives one error record per recovered panic.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Stack adds the goroutine stack to the log record.
	Stack bool
}

// RecoveryMiddleware returns a middleware that turns a panicking controller
// into a 500 response. The record carries the matched route and the request
// ID when those are known.
func RecoveryMiddleware(cfg RecoveryConfig) dispatch.MiddlewareFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				attrs := []any{
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
				}
				if route := dispatch.CurrentRoute(r); route != nil {
					attrs = append(attrs, "route", route.GetName())
				}
				if id := RequestIDFromContext(r.Context()); id != "" {
					attrs = append(attrs, "request_id", id)
				}
				if cfg.Stack {
					attrs = append(attrs, "stack", string(debug.Stack()))
				}
				logger.ErrorContext(r.Context(), "controller panicked", attrs...)

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
