package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAliases(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		a := NewAliases().Add("b", "2").Add("a", "1").Add("c", "3")

		var tokens []string
		for token := range a.All() {
			tokens = append(tokens, token)
		}
		assert.Equal(t, []string{"b", "a", "c"}, tokens)
		assert.Equal(t, 3, a.Len())
		assert.False(t, a.IsEmpty())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var a Aliases
		assert.NotPanics(t, func() {
			a.Add("articles", "artikel")
		})

		v, ok := a.Get("articles")
		assert.True(t, ok)
		assert.Equal(t, "artikel", v)
		assert.Equal(t, 1, a.Len())
	})

	t.Run("re-adding replaces in place", func(t *testing.T) {
		a := NewAliases().Add("a", "1").Add("b", "2").Add("a", "one")

		var pairs [][2]string
		for token, replacement := range a.All() {
			pairs = append(pairs, [2]string{token, replacement})
		}
		assert.Equal(t, [][2]string{{"a", "one"}, {"b", "2"}}, pairs)
	})

	t.Run("lookup", func(t *testing.T) {
		a := NewAliases().Add("articles", "artikel")

		v, ok := a.Get("articles")
		assert.True(t, ok)
		assert.Equal(t, "artikel", v)

		_, ok = a.Get("news")
		assert.False(t, ok)
	})

	t.Run("nil table is empty", func(t *testing.T) {
		var a *Aliases
		assert.True(t, a.IsEmpty())
		for range a.All() {
			t.Fatal("nil table yielded an alias")
		}
		_, ok := a.Get("x")
		assert.False(t, ok)
	})

	t.Run("early stop", func(t *testing.T) {
		a := NewAliases().Add("a", "1").Add("b", "2")
		n := 0
		for range a.All() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}
