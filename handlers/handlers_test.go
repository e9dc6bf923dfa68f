package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/brickoo/dispatch"
	"github.com/vitalvas/brickoo/routing"
)

var (
	uuidV4Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	uuidV7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
)

// newDispatcher returns a dispatcher with one controller per route; each
// handler answers 200 unless noted.
func newDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()

	routes, err := routing.NewCollection(
		routing.NewRoute("public").Path("/public").Method("GET").Cacheable(true).
			Controller(routing.Controller{Target: "pages", Method: "public"}),
		routing.NewRoute("private").Path("/private").Method("GET").RequireSession(true).
			Controller(routing.Controller{Target: "pages", Method: "private"}),
		routing.NewRoute("boom").Path("/boom").Method("GET").
			Controller(routing.Controller{Target: "pages", Method: "boom"}),
		routing.NewRoute("update").Path("/items").Method("PUT").
			Controller(routing.Controller{Target: "items", Method: "update"}),
	)
	require.NoError(t, err)

	d := dispatch.New(routing.NewFinder(routes, nil),
		dispatch.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
	d.HandleFunc("pages", "public", ok)
	d.HandleFunc("pages", "private", ok)
	d.HandleFunc("items", "update", ok)
	d.HandleFunc("pages", "boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	return d
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		config         RequestIDConfig
		incomingHeader string
		wantHeader     string
		wantPattern    *regexp.Regexp
	}{
		{
			name:        "generates UUID v4 by default",
			wantPattern: uuidV4Regex,
		},
		{
			name:           "ignores incoming by default",
			incomingHeader: "existing-id",
			wantPattern:    uuidV4Regex,
		},
		{
			name:           "trusts incoming when configured",
			config:         RequestIDConfig{TrustIncoming: true},
			incomingHeader: "existing-id",
			wantHeader:     "existing-id",
		},
		{
			name:        "UUID v7 generator",
			config:      RequestIDConfig{Generate: GenerateUUIDv7},
			wantPattern: uuidV7Regex,
		},
		{
			name: "custom header",
			config: RequestIDConfig{
				HeaderName: "X-Trace-ID",
				Generate:   func(*http.Request) string { return "trace-1" },
			},
			wantHeader: "trace-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headerName := tt.config.HeaderName
			if headerName == "" {
				headerName = "X-Request-ID"
			}

			var fromContext, fromHeader string
			d := newDispatcher(t)
			d.HandleFunc("pages", "public", func(_ http.ResponseWriter, r *http.Request) {
				fromContext = RequestIDFromContext(r.Context())
				fromHeader = r.Header.Get(headerName)
			})
			d.Use(RequestIDMiddleware(tt.config))

			req := httptest.NewRequest(http.MethodGet, "/public", nil)
			if tt.incomingHeader != "" {
				req.Header.Set(headerName, tt.incomingHeader)
			}
			w := httptest.NewRecorder()
			d.ServeHTTP(w, req)

			got := w.Header().Get(headerName)
			if tt.wantPattern != nil {
				assert.Regexp(t, tt.wantPattern, got)
			} else {
				assert.Equal(t, tt.wantHeader, got)
			}
			assert.Equal(t, got, fromContext)
			assert.Equal(t, got, fromHeader)
		})
	}

	t.Run("empty context", func(t *testing.T) {
		assert.Empty(t, RequestIDFromContext(context.Background()))
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	var buf bytes.Buffer
	d := newDispatcher(t)
	d.Use(
		RequestIDMiddleware(RequestIDConfig{Generate: func(*http.Request) string { return "req-42" }}),
		RecoveryMiddleware(RecoveryConfig{Logger: slog.New(slog.NewTextHandler(&buf, nil))}),
	)

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		d.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	out := buf.String()
	assert.Contains(t, out, "controller panicked")
	assert.Contains(t, out, "panic=boom")
	assert.Contains(t, out, "route=boom")
	assert.Contains(t, out, "request_id=req-42")
	assert.NotContains(t, out, "stack=")

	t.Run("no panic", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		d.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, buf.String())
	})

	t.Run("with stack", func(t *testing.T) {
		var stackBuf bytes.Buffer
		d := newDispatcher(t)
		d.Use(RecoveryMiddleware(RecoveryConfig{
			Logger: slog.New(slog.NewTextHandler(&stackBuf, nil)),
			Stack:  true,
		}))

		d.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Contains(t, stackBuf.String(), "stack=")
	})
}

func TestMethodOverrideMiddleware(t *testing.T) {
	mw, err := MethodOverrideMiddleware(MethodOverrideConfig{})
	require.NoError(t, err)
	h := mw(newDispatcher(t))

	tests := []struct {
		name       string
		method     string
		header     string
		value      string
		wantStatus int
	}{
		{"override selects PUT route", http.MethodPost, "X-HTTP-Method-Override", "put", http.StatusOK},
		{"secondary header", http.MethodPost, "X-HTTP-Method", "PUT", http.StatusOK},
		{"no override", http.MethodPost, "", "", http.StatusNotFound},
		{"disallowed override", http.MethodPost, "X-HTTP-Method-Override", "TRACE", http.StatusNotFound},
		{"GET is not overridable", http.MethodGet, "X-HTTP-Method-Override", "PUT", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/items", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("invalid config", func(t *testing.T) {
		_, err := MethodOverrideMiddleware(MethodOverrideConfig{AllowedMethods: []string{"put"}})
		assert.ErrorIs(t, err, ErrInvalidOverrideMethod)

		_, err = MethodOverrideMiddleware(MethodOverrideConfig{OriginalMethods: []string{""}})
		assert.ErrorIs(t, err, ErrInvalidOverrideMethod)
	})
}

func TestCacheControlMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		config CacheControlConfig
		target string
		want   string
	}{
		{"cacheable default", CacheControlConfig{}, "/public", "public, max-age=3600"},
		{"not cacheable default", CacheControlConfig{}, "/private", "no-store"},
		{"custom cacheable", CacheControlConfig{Cacheable: "max-age=60"}, "/public", "max-age=60"},
		{"custom not cacheable", CacheControlConfig{NotCacheable: "no-cache"}, "/items", "no-cache"},
		{"no route", CacheControlConfig{}, "/missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDispatcher(t)
			d.Use(CacheControlMiddleware(tt.config))

			method := http.MethodGet
			if tt.target == "/items" {
				method = http.MethodPut
			}

			w := httptest.NewRecorder()
			d.ServeHTTP(w, httptest.NewRequest(method, tt.target, nil))
			assert.Equal(t, tt.want, w.Header().Get("Cache-Control"))
		})
	}

	t.Run("controller overrides", func(t *testing.T) {
		d := newDispatcher(t)
		d.HandleFunc("pages", "public", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Cache-Control", "private")
		})
		d.Use(CacheControlMiddleware(CacheControlConfig{}))

		w := httptest.NewRecorder()
		d.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public", nil))
		assert.Equal(t, "private", w.Header().Get("Cache-Control"))
	})
}

func TestSessionMiddleware(t *testing.T) {
	hasCookie := func(r *http.Request) bool {
		_, err := r.Cookie("session")
		return err == nil
	}

	mw, err := SessionMiddleware(SessionConfig{HasSession: hasCookie})
	require.NoError(t, err)

	d := newDispatcher(t)
	d.Use(mw)

	tests := []struct {
		name       string
		target     string
		cookie     bool
		wantStatus int
	}{
		{"session route without session", "/private", false, http.StatusUnauthorized},
		{"session route with session", "/private", true, http.StatusOK},
		{"open route", "/public", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie {
				req.AddCookie(&http.Cookie{Name: "session", Value: "abc"})
			}
			w := httptest.NewRecorder()
			d.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("custom unauthorized handler", func(t *testing.T) {
		mw, err := SessionMiddleware(SessionConfig{
			HasSession: hasCookie,
			Unauthorized: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/login", http.StatusFound)
			}),
		})
		require.NoError(t, err)

		d := newDispatcher(t)
		d.Use(mw)

		w := httptest.NewRecorder()
		d.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("missing check", func(t *testing.T) {
		_, err := SessionMiddleware(SessionConfig{})
		assert.ErrorIs(t, err, ErrNoSessionCheck)
	})
}
