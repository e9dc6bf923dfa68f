package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vitalvas/brickoo/dispatch"
)

// ErrInvalidOverrideMethod is returned when MethodOverrideConfig lists a
// method that is empty or not upper case.
var ErrInvalidOverrideMethod = errors.New("method override: methods must be upper case HTTP methods")

// MethodOverrideConfig configures the method override middleware.
type MethodOverrideConfig struct {
	// HeaderNames are checked in order; the first non-empty value is the
	// override. Defaults to X-HTTP-Method-Override, X-Method-Override and
	// X-HTTP-Method.
	HeaderNames []string

	// OriginalMethods may be overridden. Defaults to POST.
	OriginalMethods []string

	// AllowedMethods may be requested as override. Defaults to PUT, PATCH,
	// DELETE, HEAD and OPTIONS.
	AllowedMethods []string
}

var defaultOverrideHeaders = []string{
	"X-HTTP-Method-Override",
	"X-Method-Override",
	"X-HTTP-Method",
}

var defaultOverrideMethods = []string{
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// MethodOverrideMiddleware returns a middleware that lets clients tunnel a
// method through a header. Routes are selected by method, so it has to wrap
// the Dispatcher itself rather than be added with Use:
//
//	mw, err := handlers.MethodOverrideMiddleware(handlers.MethodOverrideConfig{})
//	http.ListenAndServe(":8080", mw(d))
func MethodOverrideMiddleware(cfg MethodOverrideConfig) (dispatch.MiddlewareFunc, error) {
	headers := cfg.HeaderNames
	if len(headers) == 0 {
		headers = defaultOverrideHeaders
	}

	originals := cfg.OriginalMethods
	if originals == nil {
		originals = []string{http.MethodPost}
	}

	methods := cfg.AllowedMethods
	if methods == nil {
		methods = defaultOverrideMethods
	}

	originalSet, err := methodSet(originals)
	if err != nil {
		return nil, err
	}
	allowed, err := methodSet(methods)
	if err != nil {
		return nil, err
	}

	headerNames := append([]string(nil), headers...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := originalSet[r.Method]; ok {
				for _, h := range headerNames {
					v := r.Header.Get(h)
					if v == "" {
						continue
					}
					override := strings.ToUpper(v)
					if _, ok := allowed[override]; ok {
						r.Method = override
						r.Header.Del(h)
					}
					break
				}
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func methodSet(methods []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		if m == "" || m != strings.ToUpper(m) {
			return nil, ErrInvalidOverrideMethod
		}
		set[m] = struct{}{}
	}
	return set, nil
}
