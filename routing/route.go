package routing

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
)

// Controller describes the target a matched route dispatches to. The
// matcher never interprets it.
type Controller struct {
	// Target identifies the controller, e.g. a type or service name.
	Target string
	// Method is the action invoked on the target.
	Method string
	// Static marks the action as not needing a controller instance.
	Static bool
}

// String returns the binding in "Target::Method" form.
func (c Controller) String() string {
	return c.Target + "::" + c.Method
}

// Route describes a single route: a path template with named placeholders
// plus the method, host and format constraints that select it.
//
// Routes are configured with the chained setters and must not be modified
// once they are part of a Collection handed to a Finder. Setter failures are
// sticky and reported by GetError and by Collection.Add.
type Route struct {
	name          string
	path          string
	method        string
	hostname      string
	format        string
	defaultFormat string
	rules         map[string]string
	defaults      map[string]string
	session       bool
	cacheable     bool
	controller    *Controller
	err           error
}

// NewRoute returns an empty route with the given unique name.
func NewRoute(name string) *Route {
	r := &Route{
		name:     name,
		rules:    make(map[string]string),
		defaults: make(map[string]string),
	}
	if name == "" {
		r.err = ErrMissingName
	}
	return r
}

// Path sets the path template, e.g. "/articles/{page}". Braces that do not
// form a {name} placeholder are literal text.
func (r *Route) Path(tpl string) *Route {
	if r.err != nil {
		return r
	}
	if tpl == "" {
		r.err = fmt.Errorf("%w: empty template for %q", ErrMissingPath, r.name)
		return r
	}
	r.path = tpl
	return r
}

// Method sets the method pattern as a regular expression alternation,
// e.g. "GET|HEAD". Matching is case-insensitive.
func (r *Route) Method(pattern string) *Route {
	if r.err != nil {
		return r
	}
	if pattern == "" {
		r.err = fmt.Errorf("%w: empty pattern for %q", ErrMissingMethod, r.name)
		return r
	}
	r.method = pattern
	return r
}

// Methods sets the method pattern from a list of literal method tokens.
func (r *Route) Methods(methods ...string) *Route {
	return r.Method(MethodPattern(methods...))
}

// MethodPattern quotes method tokens and joins them into an alternation.
// Empty tokens are skipped.
func MethodPattern(methods ...string) string {
	quoted := make([]string, 0, len(methods))
	for _, m := range methods {
		if m == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(strings.ToUpper(m)))
	}
	return strings.Join(quoted, "|")
}

// Host sets the hostname pattern. An empty pattern matches any host.
func (r *Route) Host(pattern string) *Route {
	if r.err == nil {
		r.hostname = pattern
	}
	return r
}

// Format sets the pattern of accepted path extensions, e.g. "json|xml".
func (r *Route) Format(pattern string) *Route {
	if r.err == nil {
		r.format = pattern
	}
	return r
}

// DefaultFormat sets the format used when the request path carries none.
func (r *Route) DefaultFormat(format string) *Route {
	if r.err == nil {
		r.defaultFormat = format
	}
	return r
}

// Rule constrains a placeholder with a regular expression fragment. The
// fragment is used verbatim: no anchors, no delimiters, no escaping.
func (r *Route) Rule(param, pattern string) *Route {
	if r.err == nil {
		r.rules[param] = pattern
	}
	return r
}

// RuleMacro constrains a placeholder with a named pattern such as "int"
// or "uuid".
func (r *Route) RuleMacro(param, name string) *Route {
	if r.err != nil {
		return r
	}
	pattern, ok := expandMacro(name)
	if !ok {
		r.err = fmt.Errorf("%w: %q for parameter %q", ErrUnknownMacro, name, param)
		return r
	}
	return r.Rule(param, pattern)
}

// Default sets the value a parameter takes when it is absent from the
// request path. A ruled parameter with a default becomes optional.
func (r *Route) Default(param, value string) *Route {
	if r.err == nil {
		r.defaults[param] = value
	}
	return r
}

// RequireSession flags the route as needing a session.
func (r *Route) RequireSession(required bool) *Route {
	if r.err == nil {
		r.session = required
	}
	return r
}

// Cacheable flags the route response as cacheable.
func (r *Route) Cacheable(cacheable bool) *Route {
	if r.err == nil {
		r.cacheable = cacheable
	}
	return r
}

// Controller binds the route to a controller.
func (r *Route) Controller(c Controller) *Route {
	if r.err != nil {
		return r
	}
	if c.Target == "" || c.Method == "" {
		r.err = fmt.Errorf("%w: incomplete binding %q for %q", ErrMissingController, c.String(), r.name)
		return r
	}
	r.controller = &c
	return r
}

// --- Inspection ---

// GetName returns the route name.
func (r *Route) GetName() string {
	return r.name
}

// GetPath returns the path template.
func (r *Route) GetPath() (string, error) {
	if r.path == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingPath, r.name)
	}
	return r.path, nil
}

// GetMethod returns the method pattern.
func (r *Route) GetMethod() (string, error) {
	if r.method == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingMethod, r.name)
	}
	return r.method, nil
}

// GetHost returns the hostname pattern, empty when any host is accepted.
func (r *Route) GetHost() string {
	return r.hostname
}

// GetFormat returns the accepted extension pattern, if any.
func (r *Route) GetFormat() string {
	return r.format
}

// GetDefaultFormat returns the fallback format, if any.
func (r *Route) GetDefaultFormat() string {
	return r.defaultFormat
}

// GetRule returns the rule of a parameter.
func (r *Route) GetRule(param string) (string, bool) {
	v, ok := r.rules[param]
	return v, ok
}

// GetRules returns a copy of all parameter rules.
func (r *Route) GetRules() map[string]string {
	return maps.Clone(r.rules)
}

// GetDefault returns the default value of a parameter.
func (r *Route) GetDefault(param string) (string, bool) {
	v, ok := r.defaults[param]
	return v, ok
}

// GetDefaults returns a copy of all default values.
func (r *Route) GetDefaults() map[string]string {
	return maps.Clone(r.defaults)
}

// IsSessionRequired reports whether the route needs a session.
func (r *Route) IsSessionRequired() bool {
	return r.session
}

// IsCacheable reports whether the route response may be cached.
func (r *Route) IsCacheable() bool {
	return r.cacheable
}

// GetController returns the controller binding.
func (r *Route) GetController() (Controller, error) {
	if r.controller == nil {
		return Controller{}, fmt.Errorf("%w: %q", ErrMissingController, r.name)
	}
	return *r.controller, nil
}

// GetParameterNames returns the placeholder names of the path template in
// order of appearance.
func (r *Route) GetParameterNames() ([]string, error) {
	tpl, err := r.GetPath()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(tpl, -1) {
		names = append(names, m[1])
	}
	return names, nil
}

// GetError returns the first error recorded while configuring the route.
func (r *Route) GetError() error {
	return r.err
}

// validate reports whether the route has everything matching needs.
func (r *Route) validate() error {
	if r.err != nil {
		return r.err
	}
	if _, err := r.GetPath(); err != nil {
		return err
	}
	if _, err := r.GetMethod(); err != nil {
		return err
	}
	return nil
}
