package routing

import "slices"

// ruleMacros maps macro names to rule fragments usable with Route.RuleMacro.
var ruleMacros = map[string]string{
	"uuid":     `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
	"int":      `[0-9]+`,
	"float":    `[0-9]*\.?[0-9]+`,
	"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
	"alpha":    `[a-zA-Z]+`,
	"alphanum": `[a-zA-Z0-9]+`,
	"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
	"hex":      `[0-9a-fA-F]+`,
	// RFC 1123 host labels.
	"domain": `(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`,
}

// expandMacro returns the rule fragment registered under name.
func expandMacro(name string) (string, bool) {
	p, ok := ruleMacros[name]
	return p, ok
}

// MacroNames returns the known rule macro names in sorted order.
func MacroNames() []string {
	names := make([]string, 0, len(ruleMacros))
	for name := range ruleMacros {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
