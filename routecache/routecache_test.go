package routecache

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/brickoo/routing"
)

func newFinder(t *testing.T) *routing.Finder {
	t.Helper()

	routes, err := routing.NewCollection(
		routing.NewRoute("article").
			Path("/articles/{page}").
			Method("GET|HEAD").
			Rule("page", "[0-9]+").
			Default("page", "1").
			Format("json|xml").
			DefaultFormat("xml").
			Cacheable(true).
			Controller(routing.Controller{Target: "articles", Method: "list"}),
		routing.NewRoute("api").
			Path("/status").
			Method("GET").
			Host(`api\.example\.com`),
	)
	require.NoError(t, err)

	return routing.NewFinder(routes, routing.NewAliases().Add("articles", "artikel"))
}

func TestSnapshotRestore(t *testing.T) {
	original := newFinder(t)

	table, err := Snapshot(original)
	require.NoError(t, err)
	require.Len(t, table.Records, 2)
	assert.Equal(t, Version, table.Version)
	assert.Equal(t, "(?i)^(?:GET|HEAD)$", table.Records[0].Method)
	assert.Equal(t, `(?i)^(?:api\.example\.com)$`, table.Records[1].Hostname)
	assert.Equal(t, "article", table.Records[0].Route.Name)

	var buf bytes.Buffer
	require.NoError(t, table.Encode(&buf))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, decoded)

	restored, err := decoded.Restore()
	require.NoError(t, err)

	requests := []*routing.RequestContext{
		routing.NewRequest("GET", "www.example.com", "/artikel"),
		routing.NewRequest("HEAD", "www.example.com", "/articles/4.json"),
		routing.NewRequest("GET", "api.example.com", "/status"),
	}
	for _, req := range requests {
		want, err := original.Find(req)
		require.NoError(t, err, req.Path())
		got, err := restored.Find(req)
		require.NoError(t, err, req.Path())

		assert.Equal(t, want.Route.GetName(), got.Route.GetName())
		assert.Equal(t, want.Parameters, got.Parameters)
		assert.Equal(t, want.Route.Definition(), got.Route.Definition())
	}

	_, err = restored.Find(routing.NewRequest("GET", "www.example.com", "/status"))
	assert.ErrorIs(t, err, routing.ErrNoRouteFound)
}

func TestDecodeErrors(t *testing.T) {
	t.Run("wrong version", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"version": 99, "records": []}`))
		assert.ErrorIs(t, err, ErrVersion)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"version":`))
		assert.Error(t, err)
	})
}

func TestRestoreErrors(t *testing.T) {
	t.Run("invalid route", func(t *testing.T) {
		table := &Table{Version: Version, Records: []Record{{Route: routing.Definition{Name: "x"}}}}
		_, err := table.Restore()
		assert.ErrorIs(t, err, routing.ErrMissingPath)
	})

	t.Run("duplicate route", func(t *testing.T) {
		rec := Record{
			Method: "(?i)^(?:GET)$",
			Path:   `(?i)^/(?:\..*)?$`,
			Route:  routing.Definition{Name: "home", Path: "/", Method: "GET"},
		}
		table := &Table{Version: Version, Records: []Record{rec, rec}}
		_, err := table.Restore()
		assert.ErrorIs(t, err, routing.ErrDuplicateRoute)
	})
}
