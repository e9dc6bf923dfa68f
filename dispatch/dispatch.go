package dispatch

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/vitalvas/brickoo/routing"
)

// MiddlewareFunc is a function which receives an http.Handler and returns
// another http.Handler.
type MiddlewareFunc func(http.Handler) http.Handler

// Middleware allows MiddlewareFunc to be used as a chain element.
func (mw MiddlewareFunc) Middleware(handler http.Handler) http.Handler {
	return mw(handler)
}

// Dispatcher serves HTTP requests by finding the matching route and calling
// the handler registered for the route's controller.
//
//	d := dispatch.New(finder)
//	d.HandleFunc("articles", "list", listArticles)
//	http.ListenAndServe(":8080", d)
type Dispatcher struct {
	finder     *routing.Finder
	logger     *slog.Logger
	metrics    *Metrics
	notFound   http.Handler
	negotiator Negotiator

	mu          sync.RWMutex
	controllers map[string]http.Handler
	middlewares []MiddlewareFunc

	// handlerCache caches the middleware-wrapped handler per controller.
	handlerCache sync.Map // map[string]http.Handler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger for dispatch failures.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics enables dispatch metrics.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// WithNotFoundHandler sets the handler for requests no route matches.
// Defaults to http.NotFoundHandler.
func WithNotFoundHandler(h http.Handler) Option {
	return func(d *Dispatcher) {
		if h != nil {
			d.notFound = h
		}
	}
}

// WithNegotiator sets how the accepted format is derived from a request.
// Defaults to DefaultMediaTypes.
func WithNegotiator(n Negotiator) Option {
	return func(d *Dispatcher) {
		d.negotiator = n
	}
}

// New returns a Dispatcher over finder.
func New(finder *routing.Finder, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		finder:      finder,
		logger:      slog.Default(),
		notFound:    http.NotFoundHandler(),
		negotiator:  DefaultMediaTypes,
		controllers: make(map[string]http.Handler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle registers the handler for the controller target and method.
func (d *Dispatcher) Handle(target, method string, handler http.Handler) {
	key := routing.Controller{Target: target, Method: method}.String()

	d.mu.Lock()
	d.controllers[key] = handler
	d.mu.Unlock()

	d.handlerCache.Delete(key)
}

// HandleFunc registers the handler function for the controller target and
// method.
func (d *Dispatcher) HandleFunc(target, method string, f func(http.ResponseWriter, *http.Request)) {
	d.Handle(target, method, http.HandlerFunc(f))
}

// Use appends middleware to the chain. Middleware is applied to controller
// handlers only, not to the not-found handler.
func (d *Dispatcher) Use(mwf ...MiddlewareFunc) {
	d.mu.Lock()
	d.middlewares = append(d.middlewares, mwf...)
	d.mu.Unlock()

	d.handlerCache.Clear()
}

// ServeHTTP finds the route for req and calls its controller handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if cleaned := cleanPath(req.URL.Path); cleaned != req.URL.Path {
		u := *req.URL
		u.Path = cleaned
		u.RawPath = ""
		req = req.Clone(req.Context())
		req.URL = &u
	}

	start := time.Now()
	m, err := d.finder.Find(d.request(req))
	d.metrics.observe(time.Since(start))

	if err != nil {
		if errors.Is(err, routing.ErrNoRouteFound) {
			d.metrics.dispatched("", OutcomeNotFound)
			d.notFound.ServeHTTP(w, req)
			return
		}

		d.metrics.dispatched("", OutcomeError)
		d.logger.Error("route lookup failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	name := m.Route.GetName()
	handler := d.handler(m.Route)
	if handler == nil {
		d.metrics.dispatched(name, OutcomeNoController)
		d.logger.Error("no controller registered for route",
			"route", name,
			"controller", controllerKey(m.Route),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	d.metrics.dispatched(name, OutcomeMatched)
	handler.ServeHTTP(w, SetMatch(req, m))
}

// request builds the matcher's view of req.
func (d *Dispatcher) request(req *http.Request) *routing.RequestContext {
	rc := routing.NewRequest(req.Method, normalizeHost(req.Host), req.URL.Path)
	if d.negotiator == nil {
		return rc
	}
	if format, ok := d.negotiator.Negotiate(req); ok {
		return rc.WithAcceptedFormat(format)
	}
	return rc
}

// handler returns the middleware-wrapped controller handler for r, or nil
// when no handler is registered.
func (d *Dispatcher) handler(r *routing.Route) http.Handler {
	key := controllerKey(r)
	if key == "" {
		return nil
	}
	if cached, ok := d.handlerCache.Load(key); ok {
		return cached.(http.Handler)
	}

	d.mu.RLock()
	h, ok := d.controllers[key]
	middlewares := d.middlewares
	d.mu.RUnlock()
	if !ok {
		return nil
	}

	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i].Middleware(h)
	}

	actual, _ := d.handlerCache.LoadOrStore(key, h)
	return actual.(http.Handler)
}

func controllerKey(r *routing.Route) string {
	c, err := r.GetController()
	if err != nil {
		return ""
	}
	return c.String()
}
