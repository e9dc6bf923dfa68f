package routing

import (
	"fmt"
	"regexp"
	"sync"
)

// regexpCache caches compiled regular expressions by pattern string.
// The number of unique patterns is bounded by the number of registered
// routes, so the cache grows to a fixed size and stays there.
var regexpCache sync.Map

// compileRegexp returns a cached *regexp.Regexp for the given pattern,
// compiling and caching it on first use.
func compileRegexp(pattern string) (*regexp.Regexp, error) {
	if v, ok := regexpCache.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := regexpCache.LoadOrStore(pattern, re)

	return actual.(*regexp.Regexp), nil
}

// CompiledRoute holds the regular expression sources derived from a route.
// It is the unit persisted by a route table cache; feeding it back through
// WithCompiled skips regex synthesis for the route.
type CompiledRoute struct {
	Name     string `json:"name"`
	Method   string `json:"method"`
	Path     string `json:"path"`
	Hostname string `json:"hostname,omitempty"`
}

// compiledRoute is a route with its regular expressions compiled.
type compiledRoute struct {
	route  *Route
	source CompiledRoute
	method *regexp.Regexp
	host   *regexp.Regexp
	path   *regexp.Regexp
	// formatIdx is the submatch index of FormatGroup, or -1.
	formatIdx int
	// groups maps ruled parameter names to their submatch index.
	groups map[string]int
}

// deriveRoute computes the regular expression sources for r.
func deriveRoute(r *Route, aliases *Aliases) (CompiledRoute, error) {
	method, err := methodRegexp(r)
	if err != nil {
		return CompiledRoute{}, err
	}
	path, err := PathRegexp(r, aliases)
	if err != nil {
		return CompiledRoute{}, err
	}
	return CompiledRoute{
		Name:     r.name,
		Method:   method,
		Path:     path,
		Hostname: hostRegexp(r),
	}, nil
}

// compileRoute compiles the regular expression sources of r. Engine errors
// are returned wrapped so callers can still inspect them.
func compileRoute(r *Route, src CompiledRoute) (*compiledRoute, error) {
	method, err := compileRegexp(src.Method)
	if err != nil {
		return nil, fmt.Errorf("routing: route %q method: %w", r.name, err)
	}

	var host *regexp.Regexp
	if src.Hostname != "" {
		if host, err = compileRegexp(src.Hostname); err != nil {
			return nil, fmt.Errorf("routing: route %q hostname: %w", r.name, err)
		}
	}

	path, err := compileRegexp(src.Path)
	if err != nil {
		return nil, fmt.Errorf("routing: route %q path: %w", r.name, err)
	}

	cr := &compiledRoute{
		route:     r,
		source:    src,
		method:    method,
		host:      host,
		path:      path,
		formatIdx: -1,
		groups:    make(map[string]int, len(r.rules)),
	}
	for i, name := range path.SubexpNames() {
		switch {
		case name == "":
		case name == FormatGroup:
			cr.formatIdx = i
		default:
			cr.groups[name] = i
		}
	}
	return cr, nil
}

// accepts reports whether method and host satisfy the route.
func (c *compiledRoute) accepts(method, host string) bool {
	if !c.method.MatchString(method) {
		return false
	}
	return c.host == nil || c.host.MatchString(host)
}
