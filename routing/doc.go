// Package routing implements the route-matching engine: it compiles
// declarative route definitions into regular expressions and selects the
// single route responsible for a request.
//
// # Routes
//
// A route has a unique name, a path template with {name} placeholders, a
// method pattern and optional hostname and format constraints:
//
//	r := routing.NewRoute("article").
//	    Path("/articles/{page}").
//	    Method("GET|HEAD").
//	    Rule("page", "[0-9]+").
//	    Default("page", "1").
//	    Format("json|xml").
//	    DefaultFormat("xml")
//
// Method and hostname patterns are regular expression alternations matched
// case-insensitively against the whole request method or host.
//
// # Placeholders
//
// A placeholder with a rule becomes a named capture group. When it also has
// a default value the whole segment, leading slash included, is optional:
// "/articles" and "/articles/7" both match the route above. A placeholder
// without a rule can never match a request; it stays in the template for
// URL building or documentation only.
//
// Rules are regular expression fragments inserted verbatim. RuleMacro offers
// named fragments instead:
//
//	uuid, int, float, slug, alpha, alphanum, date, hex, domain
//
// # Aliases
//
// An alias table lets one literal path segment match a replacement as well:
//
//	aliases := routing.NewAliases().Add("articles", "artikel")
//
// Only the first alias found in a path applies, trying aliases in table
// order.
//
// # Formats
//
// A route with a Format accepts an optional ".ext" suffix restricted to that
// pattern. The resolved format is stored in the "format" parameter and
// falls back to DefaultFormat, then to the request's accepted format. A
// route without a Format accepts and ignores any suffix.
//
// # Matching
//
// Collection keeps routes in insertion order; Finder scans them and the
// first route whose method, host and path match wins:
//
//	routes, err := routing.NewCollection(r)
//	finder := routing.NewFinder(routes, aliases)
//	m, err := finder.Find(routing.NewRequest("GET", "example.com", "/articles.json"))
//	if errors.Is(err, routing.ErrNoRouteFound) {
//	    // answer 404
//	}
//	page := m.Parameters["page"] // "1"
//	format := m.Format()         // "json"
//
// Collections, routes and alias tables must not change once a Finder uses
// them; after that a Finder may serve any number of goroutines.
//
// # Compiled routes
//
// Finder.Compiled exports the regular expressions of every route and
// WithCompiled feeds them back, so a cached route table skips regex
// synthesis.
package routing
