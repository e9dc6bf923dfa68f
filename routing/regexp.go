package routing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// FormatGroup is the name of the capture group holding the path extension.
const FormatGroup = "__FORMAT__"

// placeholderPattern finds {name} placeholders in a path template.
var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// unresolvedNamespace scopes the name-based UUIDs used for placeholders
// that have no rule.
var unresolvedNamespace = uuid.MustParse("6f1c2f8e-3b0a-5c43-9d8e-1b7f2a4c9e10")

// PathRegexp returns the anchored, case-insensitive regular expression
// matching every request path the route accepts. Each ruled placeholder
// becomes a named group; the path extension is captured in FormatGroup when
// the route declares a format.
//
// The result depends only on the route and the alias table, so repeated
// calls return identical strings.
func PathRegexp(r *Route, aliases *Aliases) (string, error) {
	tpl, err := r.GetPath()
	if err != nil {
		return "", err
	}

	var segments []string
	if trimmed := strings.Trim(tpl, "/"); trimmed != "" {
		segments = strings.Split(trimmed, "/")
	}

	aliasIdx, replacement := aliasSegment(segments, aliases)

	var (
		pattern strings.Builder
		seen    = make(map[string]struct{})
	)

	pattern.WriteString("(?i)^/")

	for i, seg := range segments {
		// The slash before the first segment comes from the anchor.
		sep := "/"
		if i == 0 {
			sep = ""
		}

		if i == aliasIdx {
			fmt.Fprintf(&pattern, "%s(?:%s|%s)", sep, regexp.QuoteMeta(seg), regexp.QuoteMeta(replacement))
			continue
		}

		locs := placeholderPattern.FindAllStringSubmatchIndex(seg, -1)
		if len(locs) == 0 {
			pattern.WriteString(sep)
			pattern.WriteString(regexp.QuoteMeta(seg))
			continue
		}

		end := 0
		for j, loc := range locs {
			name := seg[loc[2]:loc[3]]
			if _, ok := seen[name]; ok {
				return "", fmt.Errorf("%w: %q in %q", ErrDuplicateParameter, name, tpl)
			}
			seen[name] = struct{}{}

			if j == 0 && loc[0] == 0 {
				pattern.WriteString(segmentFragment(r, name, sep))
			} else {
				if j == 0 {
					pattern.WriteString(sep)
				}
				pattern.WriteString(regexp.QuoteMeta(seg[end:loc[0]]))
				pattern.WriteString(inlineFragment(r, name))
			}
			end = loc[1]
		}
		pattern.WriteString(regexp.QuoteMeta(seg[end:]))
	}

	if r.format == "" {
		pattern.WriteString(`(?:\..*)?`)
	} else {
		fmt.Fprintf(&pattern, `(?:\.(?P<%s>%s))?`, FormatGroup, r.format)
	}

	pattern.WriteByte('$')
	return pattern.String(), nil
}

// segmentFragment renders a placeholder that opens a path segment. With a
// rule and a default the whole segment, separator included, is optional.
func segmentFragment(r *Route, name, sep string) string {
	rule, ok := r.rules[name]
	if !ok {
		return sep + unresolvedToken(name)
	}
	if _, ok := r.defaults[name]; ok {
		if sep == "" {
			return fmt.Sprintf("(?P<%s>(?:%s)?)", name, rule)
		}
		return fmt.Sprintf("(?:%s(?P<%s>(?:%s)?))?", sep, name, rule)
	}
	return fmt.Sprintf("%s(?P<%s>%s)", sep, name, rule)
}

// inlineFragment renders a placeholder preceded by literal text in the
// same segment, e.g. the {id} of "item-{id}".
func inlineFragment(r *Route, name string) string {
	rule, ok := r.rules[name]
	if !ok {
		return unresolvedToken(name)
	}
	if _, ok := r.defaults[name]; ok {
		return fmt.Sprintf("(?P<%s>(?:%s)?)", name, rule)
	}
	return fmt.Sprintf("(?P<%s>%s)", name, rule)
}

// unresolvedToken returns a fragment for a placeholder without a rule. It
// asserts the end of input and then demands more text, so it never matches.
// The name-based UUID keeps the fragment unique per name and stable across
// calls.
func unresolvedToken(name string) string {
	id := uuid.NewSHA1(unresolvedNamespace, []byte(name))
	return `\z` + strings.ReplaceAll(id.String(), "-", "")
}

// aliasSegment returns the index of the first segment equal to an alias
// token, trying aliases in table order, and the alias replacement. The
// index is -1 when no alias applies.
func aliasSegment(segments []string, aliases *Aliases) (int, string) {
	for token, replacement := range aliases.All() {
		for i, seg := range segments {
			if seg == token {
				return i, replacement
			}
		}
	}
	return -1, ""
}

// methodRegexp returns the anchored, case-insensitive method pattern.
func methodRegexp(r *Route) (string, error) {
	m, err := r.GetMethod()
	if err != nil {
		return "", err
	}
	return "(?i)^(?:" + m + ")$", nil
}

// hostRegexp returns the anchored, case-insensitive hostname pattern, or
// an empty string when the route accepts any host.
func hostRegexp(r *Route) string {
	if r.hostname == "" {
		return ""
	}
	return "(?i)^(?:" + r.hostname + ")$"
}
