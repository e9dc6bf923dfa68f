package dispatch

import (
	"context"
	"net/http"

	"github.com/vitalvas/brickoo/routing"
)

// matchContextKey is an unexported type for the single context key.
type matchContextKey struct{}

// ctxKey is the context key the dispatcher stores the match under.
var ctxKey = matchContextKey{}

// CurrentMatch returns the match for the current request, if any.
func CurrentMatch(r *http.Request) *routing.Match {
	if m, ok := r.Context().Value(ctxKey).(*routing.Match); ok {
		return m
	}
	return nil
}

// CurrentRoute returns the matched route for the current request, if any.
func CurrentRoute(r *http.Request) *routing.Route {
	if m := CurrentMatch(r); m != nil {
		return m.Route
	}
	return nil
}

// Params returns the route parameters for the current request, if any.
func Params(r *http.Request) map[string]string {
	if m := CurrentMatch(r); m != nil {
		return m.Parameters
	}
	return nil
}

// Param returns a single route parameter and whether it exists.
func Param(r *http.Request, name string) (string, bool) {
	if m := CurrentMatch(r); m != nil {
		return m.Param(name)
	}
	return "", false
}

// SetMatch returns a copy of r carrying m. Handlers under test can use it
// to simulate a dispatched request.
func SetMatch(r *http.Request, m *routing.Match) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey, m))
}
