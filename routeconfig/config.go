package routeconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vitalvas/brickoo/routing"
	"gopkg.in/yaml.v3"
)

// ErrEmptyAliasToken is returned when an alias has an empty token.
var ErrEmptyAliasToken = errors.New("routeconfig: alias token must not be empty")

// Config is the file form of a route table.
type Config struct {
	// Aliases are tried in file order during regex synthesis.
	Aliases AliasList `yaml:"aliases,omitempty"`

	// Routes are matched in file order.
	Routes []Route `yaml:"routes"`
}

// Route is the file form of a single route. It mirrors
// routing.Definition, except that method may also be written as a list.
type Route struct {
	Name          string                        `yaml:"name"`
	Path          string                        `yaml:"path"`
	Method        Methods                       `yaml:"method"`
	Hostname      string                        `yaml:"hostname,omitempty"`
	Format        string                        `yaml:"format,omitempty"`
	DefaultFormat string                        `yaml:"default_format,omitempty"`
	Rules         map[string]string             `yaml:"rules,omitempty"`
	Macros        map[string]string             `yaml:"macros,omitempty"`
	Defaults      map[string]string             `yaml:"defaults,omitempty"`
	Session       bool                          `yaml:"session,omitempty"`
	Cacheable     bool                          `yaml:"cacheable,omitempty"`
	Controller    *routing.ControllerDefinition `yaml:"controller,omitempty"`
}

// Definition converts the file form into a routing.Definition.
func (r Route) Definition() routing.Definition {
	return routing.Definition{
		Name:          r.Name,
		Path:          r.Path,
		Method:        r.Method.Pattern(),
		Hostname:      r.Hostname,
		Format:        r.Format,
		DefaultFormat: r.DefaultFormat,
		Rules:         r.Rules,
		Macros:        r.Macros,
		Defaults:      r.Defaults,
		Session:       r.Session,
		Cacheable:     r.Cacheable,
		Controller:    r.Controller,
	}
}

// Methods is a method pattern written either as a scalar regex
// alternation ("GET|HEAD") or as a sequence of method tokens.
type Methods struct {
	pattern string
}

// Pattern returns the method pattern.
func (m Methods) Pattern() string {
	return m.pattern
}

// UnmarshalYAML decodes the methods from either a YAML scalar or sequence.
func (m *Methods) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		m.pattern = node.Value
		return nil
	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}
		m.pattern = routing.MethodPattern(arr...)
		return nil
	default:
		return fmt.Errorf("routeconfig: unsupported YAML node kind %d for method", node.Kind)
	}
}

// Alias is one entry of an alias table.
type Alias struct {
	Token       string `yaml:"token"`
	Replacement string `yaml:"replacement"`
}

// AliasList is an ordered alias table. In YAML it is either a mapping of
// token to replacement, whose key order is kept, or a sequence of
// token/replacement objects.
type AliasList []Alias

// UnmarshalYAML decodes the alias table keeping file order.
func (l *AliasList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(AliasList, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var a Alias
			if err := node.Content[i].Decode(&a.Token); err != nil {
				return err
			}
			if err := node.Content[i+1].Decode(&a.Replacement); err != nil {
				return err
			}
			out = append(out, a)
		}
		*l = out
		return nil
	case yaml.SequenceNode:
		var arr []Alias
		if err := node.Decode(&arr); err != nil {
			return err
		}
		*l = arr
		return nil
	default:
		return fmt.Errorf("routeconfig: unsupported YAML node kind %d for aliases", node.Kind)
	}
}

// Decode reads a YAML route table. Unknown keys are rejected. An empty
// document yields an empty table.
func Decode(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("routeconfig: decode: %w", err)
	}
	return &cfg, nil
}

// Parse reads a YAML route table from a string.
func Parse(s string) (*Config, error) {
	return Decode(strings.NewReader(s))
}

// Load reads a YAML route table from a file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("routeconfig: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Build turns the table into a route collection and alias table. It fails
// on the first invalid route or alias.
func (c *Config) Build() (*routing.Collection, *routing.Aliases, error) {
	aliases := routing.NewAliases()
	for _, a := range c.Aliases {
		if a.Token == "" {
			return nil, nil, ErrEmptyAliasToken
		}
		aliases.Add(a.Token, a.Replacement)
	}

	routes := make([]*routing.Route, 0, len(c.Routes))
	for i, r := range c.Routes {
		route := r.Definition().Build()
		if err := route.GetError(); err != nil {
			return nil, nil, fmt.Errorf("routeconfig: route #%d: %w", i, err)
		}
		routes = append(routes, route)
	}

	collection, err := routing.NewCollection(routes...)
	if err != nil {
		return nil, nil, fmt.Errorf("routeconfig: %w", err)
	}
	return collection, aliases, nil
}
