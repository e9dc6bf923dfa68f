package routing

import (
	"errors"
	"log/slog"
	"sync"
)

// Finder selects the route responsible for a request. It scans the
// collection in insertion order and the first route whose method, host and
// path all match wins.
//
// Regular expressions are compiled on first use and cached per route. A
// Finder is safe for concurrent use once the collection and alias table are
// no longer modified.
type Finder struct {
	routes   *Collection
	aliases  *Aliases
	logger   *slog.Logger
	preset   map[string]CompiledRoute
	compiled sync.Map // map[*Route]*compiledRoute
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger used for match diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithCompiled supplies regular expressions computed earlier, for example
// by a route table cache. Records are matched to routes by name; routes
// without a record are compiled from their definition.
func WithCompiled(records []CompiledRoute) Option {
	return func(f *Finder) {
		if f.preset == nil {
			f.preset = make(map[string]CompiledRoute, len(records))
		}
		for _, rec := range records {
			f.preset[rec.Name] = rec
		}
	}
}

// NewFinder returns a Finder over routes. aliases may be nil.
func NewFinder(routes *Collection, aliases *Aliases, opts ...Option) *Finder {
	if routes == nil {
		routes = &Collection{}
	}
	if aliases == nil {
		aliases = NewAliases()
	}
	f := &Finder{
		routes:  routes,
		aliases: aliases,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find is a shorthand for NewFinder(routes, aliases).Find(req). Prefer a
// long-lived Finder so compiled routes are reused.
func Find(routes *Collection, aliases *Aliases, req Request) (*Match, error) {
	return NewFinder(routes, aliases).Find(req)
}

// Collection returns the routes the Finder scans.
func (f *Finder) Collection() *Collection {
	return f.routes
}

// Find returns the first route matching req. When nothing matches the error
// is a *NoRouteFoundError; a route whose patterns do not compile stops the
// scan with the regular expression engine error.
func (f *Finder) Find(req Request) (*Match, error) {
	method, host, path := req.Method(), req.Host(), req.Path()

	for _, r := range f.routes.routes {
		cr, err := f.compiledRoute(r)
		if err != nil {
			return nil, err
		}
		if !cr.accepts(method, host) {
			continue
		}

		submatches := cr.path.FindStringSubmatch(path)
		if submatches == nil {
			continue
		}

		m := &Match{
			Route:      r,
			Parameters: cr.parameters(submatches, req),
		}
		f.logger.Debug("route matched",
			"route", r.name,
			"method", method,
			"host", host,
			"path", path,
		)
		return m, nil
	}

	f.logger.Debug("no route matched",
		"method", method,
		"host", host,
		"path", path,
	)
	return nil, &NoRouteFoundError{Path: path, Method: method, Host: host}
}

// Compile compiles every route up front, returning all failures joined.
func (f *Finder) Compile() error {
	var errs []error
	for _, r := range f.routes.routes {
		if _, err := f.compiledRoute(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Compiled returns the regular expression sources of every route in
// collection order.
func (f *Finder) Compiled() ([]CompiledRoute, error) {
	out := make([]CompiledRoute, 0, f.routes.Len())
	for _, r := range f.routes.routes {
		cr, err := f.compiledRoute(r)
		if err != nil {
			return nil, err
		}
		out = append(out, cr.source)
	}
	return out, nil
}

// CompiledByName returns the regular expression sources of a single route.
// Other routes are not compiled.
func (f *Finder) CompiledByName(name string) (CompiledRoute, error) {
	r, err := f.routes.Get(name)
	if err != nil {
		return CompiledRoute{}, err
	}
	cr, err := f.compiledRoute(r)
	if err != nil {
		return CompiledRoute{}, err
	}
	return cr.source, nil
}

// compiledRoute returns the cached compilation of r. Concurrent first calls
// may both compile; the results are equal and the first store wins.
func (f *Finder) compiledRoute(r *Route) (*compiledRoute, error) {
	if v, ok := f.compiled.Load(r); ok {
		return v.(*compiledRoute), nil
	}

	src, ok := f.preset[r.name]
	if !ok {
		var err error
		if src, err = deriveRoute(r, f.aliases); err != nil {
			return nil, err
		}
	}

	cr, err := compileRoute(r, src)
	if err != nil {
		return nil, err
	}

	actual, _ := f.compiled.LoadOrStore(r, cr)
	return actual.(*compiledRoute), nil
}

// parameters builds the parameter bag of a match: ruled captures, then
// defaults for ruled parameters left empty, then the resolved format. The
// format comes from the path extension, the default format, a "format"
// default value or the accepted format, in that order.
func (c *compiledRoute) parameters(submatches []string, req Request) map[string]string {
	r := c.route
	params := make(map[string]string, len(r.rules)+1)

	for name := range r.rules {
		if idx, ok := c.groups[name]; ok && submatches[idx] != "" {
			params[name] = submatches[idx]
			continue
		}
		if v, ok := r.defaults[name]; ok {
			params[name] = v
		}
	}

	switch {
	case c.formatIdx > 0 && submatches[c.formatIdx] != "":
		params["format"] = submatches[c.formatIdx]
	case r.defaultFormat != "":
		params["format"] = r.defaultFormat
	case r.defaults["format"] != "":
		params["format"] = r.defaults["format"]
	default:
		if f, ok := req.AcceptedFormat(); ok {
			params["format"] = f
		}
	}

	return params
}
