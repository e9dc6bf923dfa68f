package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vitalvas/brickoo/dispatch"
)

type requestIDKey struct{}

// RequestIDFromContext returns the request ID stored by RequestIDMiddleware,
// or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// HeaderName is the header carrying the request ID.
	// Defaults to "X-Request-ID".
	HeaderName string

	// Generate returns a new ID. Defaults to GenerateUUIDv4.
	Generate func(r *http.Request) string

	// TrustIncoming reuses an ID sent by the client.
	TrustIncoming bool
}

// RequestIDMiddleware returns a middleware that assigns every request an ID,
// stores it in the request context and echoes it in the response header.
func RequestIDMiddleware(cfg RequestIDConfig) dispatch.MiddlewareFunc {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = "X-Request-ID"
	}

	generate := cfg.Generate
	if generate == nil {
		generate = GenerateUUIDv4
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cfg.TrustIncoming {
				id = r.Header.Get(headerName)
			}
			if id == "" {
				id = generate(r)
			}

			if id != "" {
				r.Header.Set(headerName, id)
				w.Header().Set(headerName, id)
				r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GenerateUUIDv4 returns a random UUID.
func GenerateUUIDv4(_ *http.Request) string {
	return uuid.New().String()
}

// GenerateUUIDv7 returns a time-ordered UUID.
func GenerateUUIDv7(_ *http.Request) string {
	return uuid.Must(uuid.NewV7()).String()
}
