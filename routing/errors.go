package routing

import (
	"errors"
	"fmt"
)

// Configuration errors. These indicate a broken route table and should
// abort application startup.
var (
	// ErrDuplicateRoute is returned when a route name is already present
	// in a collection.
	ErrDuplicateRoute = errors.New("routing: duplicate route name")

	// ErrMissingName is returned when a route is created without a name.
	ErrMissingName = errors.New("routing: route name must not be empty")

	// ErrMissingPath is returned when the path of a route is read before
	// it was set.
	ErrMissingPath = errors.New("routing: route has no path")

	// ErrMissingMethod is returned when the method pattern of a route is
	// read before it was set.
	ErrMissingMethod = errors.New("routing: route has no method")

	// ErrMissingController is returned when the controller binding of a
	// route is read before it was set.
	ErrMissingController = errors.New("routing: route has no controller")

	// ErrDuplicateParameter is returned when a path template names the
	// same placeholder twice.
	ErrDuplicateParameter = errors.New("routing: duplicated route parameter")

	// ErrUnknownMacro is returned when a rule macro name is not known.
	ErrUnknownMacro = errors.New("routing: unknown rule macro")
)

// Lookup errors.
var (
	// ErrRouteNotFound is returned when a route is looked up by a name that
	// is not part of the collection.
	ErrRouteNotFound = errors.New("routing: route not found")

	// ErrNoRouteFound is the not-found signal of the matcher. Callers
	// should test for it with errors.Is and answer with a 404.
	ErrNoRouteFound = errors.New("routing: no route matches the request")
)

// NoRouteFoundError is returned by Finder.Find when no route in the
// collection accepts the request. It matches ErrNoRouteFound via errors.Is.
type NoRouteFoundError struct {
	Path   string
	Method string
	Host   string
}

func (e *NoRouteFoundError) Error() string {
	return fmt.Sprintf("routing: no route matches %s %s (host %q)", e.Method, e.Path, e.Host)
}

// Is reports whether target is ErrNoRouteFound.
func (e *NoRouteFoundError) Is(target error) bool {
	return target == ErrNoRouteFound
}
