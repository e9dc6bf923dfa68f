// Command brickoo inspects YAML route tables: it matches sample requests,
// prints the synthesized regular expressions and emits the compiled table.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
