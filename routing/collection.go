package routing

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Collection is an ordered set of uniquely named routes. Matching visits
// routes in insertion order.
//
// A Collection is not safe for concurrent writes. Build it once at startup;
// any number of goroutines may read it afterwards.
type Collection struct {
	routes []*Route
	byName map[string]*Route
}

// NewCollection returns a collection holding the given routes. It fails
// like Add.
func NewCollection(routes ...*Route) (*Collection, error) {
	c := &Collection{byName: make(map[string]*Route, len(routes))}
	if err := c.Add(routes...); err != nil {
		return nil, err
	}
	return c, nil
}

// Add appends routes in order. Either all routes are added or none: a name
// already in the collection, a name repeated in the arguments, or a route
// with a configuration error rejects the whole call.
func (c *Collection) Add(routes ...*Route) error {
	if c.byName == nil {
		c.byName = make(map[string]*Route, len(routes))
	}

	seen := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		if r == nil {
			return errors.New("routing: nil route")
		}
		if err := r.validate(); err != nil {
			return err
		}
		if _, ok := c.byName[r.name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateRoute, r.name)
		}
		if _, ok := seen[r.name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateRoute, r.name)
		}
		seen[r.name] = struct{}{}
	}

	for _, r := range routes {
		c.routes = append(c.routes, r)
		c.byName[r.name] = r
	}
	return nil
}

// Merge appends all routes of other, failing like Add.
func (c *Collection) Merge(other *Collection) error {
	if other == nil {
		return nil
	}
	return c.Add(other.routes...)
}

// Get returns the route registered under name.
func (c *Collection) Get(name string) (*Route, error) {
	if r, ok := c.byName[name]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrRouteNotFound, name)
}

// Has reports whether a route named name exists.
func (c *Collection) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// HasRoutes reports whether the collection holds at least one route.
func (c *Collection) HasRoutes() bool {
	return len(c.routes) > 0
}

// Len returns the number of routes.
func (c *Collection) Len() int {
	return len(c.routes)
}

// Routes returns the routes in insertion order.
func (c *Collection) Routes() []*Route {
	return slices.Clone(c.routes)
}

// All yields the routes in insertion order.
func (c *Collection) All() iter.Seq[*Route] {
	return func(yield func(*Route) bool) {
		for _, r := range c.routes {
			if !yield(r) {
				return
			}
		}
	}
}
