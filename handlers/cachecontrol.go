package handlers

import (
	"net/http"

	"github.com/vitalvas/brickoo/dispatch"
)

// CacheControlConfig configures the cache control middleware.
type CacheControlConfig struct {
	// Cacheable is the Cache-Control value for routes marked cacheable.
	// Defaults to "public, max-age=3600".
	Cacheable string

	// NotCacheable is the Cache-Control value for all other routes.
	// Defaults to "no-store".
	NotCacheable string
}

// CacheControlMiddleware returns a middleware that sets Cache-Control from
// the matched route's cacheable flag. It is added with Dispatcher.Use; a
// controller may still replace the header before writing the response.
func CacheControlMiddleware(cfg CacheControlConfig) dispatch.MiddlewareFunc {
	cacheable := cfg.Cacheable
	if cacheable == "" {
		cacheable = "public, max-age=3600"
	}

	notCacheable := cfg.NotCacheable
	if notCacheable == "" {
		notCacheable = "no-store"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if route := dispatch.CurrentRoute(r); route != nil {
				if route.IsCacheable() {
					w.Header().Set("Cache-Control", cacheable)
				} else {
					w.Header().Set("Cache-Control", notCacheable)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
