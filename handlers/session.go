package handlers

import (
	"errors"
	"net/http"

	"github.com/vitalvas/brickoo/dispatch"
)

// ErrNoSessionCheck is returned when SessionConfig.HasSession is nil.
var ErrNoSessionCheck = errors.New("session: HasSession is required")

// SessionConfig configures the session middleware.
type SessionConfig struct {
	// HasSession reports whether the request carries a valid session.
	// Required.
	HasSession func(r *http.Request) bool

	// Unauthorized handles requests to session routes without a session.
	// Defaults to a plain 401 response.
	Unauthorized http.Handler
}

// SessionMiddleware returns a middleware that guards routes marked as
// requiring a session. Other routes pass through unchecked.
func SessionMiddleware(cfg SessionConfig) (dispatch.MiddlewareFunc, error) {
	if cfg.HasSession == nil {
		return nil, ErrNoSessionCheck
	}

	unauthorized := cfg.Unauthorized
	if unauthorized == nil {
		unauthorized = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := dispatch.CurrentRoute(r)
			if route != nil && route.IsSessionRequired() && !cfg.HasSession(r) {
				unauthorized.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
