// Package routecache encodes a compiled route table so that a later process
// can rebuild its routing.Finder without synthesizing regular expressions
// again.
//
// Each record holds the compiled method, path and hostname patterns next to
// the route definition they were derived from. Storage is left to the
// caller; this package only reads and writes the JSON encoding.
package routecache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vitalvas/brickoo/routing"
)

// Version is the encoding version written by Encode.
const Version = 1

// ErrVersion is returned when decoding a table of another version.
var ErrVersion = errors.New("routecache: unsupported table version")

// Record is one cached route.
type Record struct {
	Method   string             `json:"method"`
	Path     string             `json:"path"`
	Hostname string             `json:"hostname,omitempty"`
	Route    routing.Definition `json:"route"`
}

// Table is a cached route table in match order.
type Table struct {
	Version int      `json:"version"`
	Records []Record `json:"records"`
}

// Snapshot compiles every route of f and returns the table.
func Snapshot(f *routing.Finder) (*Table, error) {
	compiled, err := f.Compiled()
	if err != nil {
		return nil, err
	}

	routes := f.Collection().Routes()
	t := &Table{
		Version: Version,
		Records: make([]Record, len(compiled)),
	}
	for i, c := range compiled {
		t.Records[i] = Record{
			Method:   c.Method,
			Path:     c.Path,
			Hostname: c.Hostname,
			Route:    routes[i].Definition(),
		}
	}
	return t, nil
}

// Encode writes the table as JSON.
func (t *Table) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// Decode reads a table written by Encode.
func Decode(r io.Reader) (*Table, error) {
	var t Table
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("routecache: decode: %w", err)
	}
	if t.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, t.Version)
	}
	return &t, nil
}

// Restore rebuilds the routes and returns a Finder that uses the cached
// patterns. The alias table is not needed: aliases are already part of the
// cached path patterns.
func (t *Table) Restore(opts ...routing.Option) (*routing.Finder, error) {
	routes := make([]*routing.Route, len(t.Records))
	compiled := make([]routing.CompiledRoute, len(t.Records))

	for i, rec := range t.Records {
		r := rec.Route.Build()
		if err := r.GetError(); err != nil {
			return nil, fmt.Errorf("routecache: record #%d: %w", i, err)
		}
		routes[i] = r
		compiled[i] = routing.CompiledRoute{
			Name:     rec.Route.Name,
			Method:   rec.Method,
			Path:     rec.Path,
			Hostname: rec.Hostname,
		}
	}

	collection, err := routing.NewCollection(routes...)
	if err != nil {
		return nil, fmt.Errorf("routecache: %w", err)
	}

	opts = append([]routing.Option{routing.WithCompiled(compiled)}, opts...)
	return routing.NewFinder(collection, nil, opts...), nil
}
