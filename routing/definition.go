package routing

import "maps"

// ControllerDefinition is the data form of a Controller.
type ControllerDefinition struct {
	Target string `yaml:"target" json:"target"`
	Method string `yaml:"method" json:"method"`
	Static bool   `yaml:"static,omitempty" json:"static,omitempty"`
}

// Definition is the plain data form of a Route, used by configuration
// files and route table caches.
type Definition struct {
	Name          string                `yaml:"name" json:"name"`
	Path          string                `yaml:"path" json:"path"`
	Method        string                `yaml:"method" json:"method"`
	Hostname      string                `yaml:"hostname,omitempty" json:"hostname,omitempty"`
	Format        string                `yaml:"format,omitempty" json:"format,omitempty"`
	DefaultFormat string                `yaml:"default_format,omitempty" json:"default_format,omitempty"`
	Rules         map[string]string     `yaml:"rules,omitempty" json:"rules,omitempty"`
	Macros        map[string]string     `yaml:"macros,omitempty" json:"-"`
	Defaults      map[string]string     `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Session       bool                  `yaml:"session,omitempty" json:"session,omitempty"`
	Cacheable     bool                  `yaml:"cacheable,omitempty" json:"cacheable,omitempty"`
	Controller    *ControllerDefinition `yaml:"controller,omitempty" json:"controller,omitempty"`
}

// Build turns the definition into a Route. Configuration errors are
// reported on the route, see Route.GetError.
func (d Definition) Build() *Route {
	r := NewRoute(d.Name).
		Path(d.Path).
		Method(d.Method).
		Host(d.Hostname).
		Format(d.Format).
		DefaultFormat(d.DefaultFormat).
		RequireSession(d.Session).
		Cacheable(d.Cacheable)

	for param, pattern := range d.Rules {
		r.Rule(param, pattern)
	}
	for param, macro := range d.Macros {
		r.RuleMacro(param, macro)
	}
	for param, value := range d.Defaults {
		r.Default(param, value)
	}
	if d.Controller != nil {
		r.Controller(Controller{
			Target: d.Controller.Target,
			Method: d.Controller.Method,
			Static: d.Controller.Static,
		})
	}
	return r
}

// Definition returns the data form of the route. Macros are already
// expanded into Rules.
func (r *Route) Definition() Definition {
	d := Definition{
		Name:          r.name,
		Path:          r.path,
		Method:        r.method,
		Hostname:      r.hostname,
		Format:        r.format,
		DefaultFormat: r.defaultFormat,
		Session:       r.session,
		Cacheable:     r.cacheable,
	}
	if len(r.rules) > 0 {
		d.Rules = maps.Clone(r.rules)
	}
	if len(r.defaults) > 0 {
		d.Defaults = maps.Clone(r.defaults)
	}
	if r.controller != nil {
		d.Controller = &ControllerDefinition{
			Target: r.controller.Target,
			Method: r.controller.Method,
			Static: r.controller.Static,
		}
	}
	return d
}
