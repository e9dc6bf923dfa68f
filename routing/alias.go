package routing

import "iter"

// Aliases is an ordered table of path segment aliases. During regex
// synthesis the first alias whose token equals a path segment lets that
// segment match either the token or its replacement.
//
// The table is written during bootstrap and read-only afterwards. The zero
// value is an empty table ready to use.
type Aliases struct {
	tokens       []string
	replacements map[string]string
}

// NewAliases returns an empty alias table.
func NewAliases() *Aliases {
	return &Aliases{replacements: make(map[string]string)}
}

// Add appends an alias. Adding a known token replaces its replacement and
// keeps its position.
func (a *Aliases) Add(token, replacement string) *Aliases {
	if a.replacements == nil {
		a.replacements = make(map[string]string)
	}
	if _, ok := a.replacements[token]; !ok {
		a.tokens = append(a.tokens, token)
	}
	a.replacements[token] = replacement
	return a
}

// Get returns the replacement registered for token.
func (a *Aliases) Get(token string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.replacements[token]
	return v, ok
}

// Len returns the number of aliases.
func (a *Aliases) Len() int {
	if a == nil {
		return 0
	}
	return len(a.tokens)
}

// IsEmpty reports whether the table has no aliases.
func (a *Aliases) IsEmpty() bool {
	return a.Len() == 0
}

// All yields token/replacement pairs in insertion order.
func (a *Aliases) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for _, token := range a.tokens {
			if !yield(token, a.replacements[token]) {
				return
			}
		}
	}
}
