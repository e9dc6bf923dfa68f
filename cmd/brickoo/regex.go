package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitalvas/brickoo/routing"
)

func newRegexCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "regex [name]",
		Short: "Print the regular expressions of the routes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := global.loadFinder(cmd)
			if err != nil {
				return err
			}

			var compiled []routing.CompiledRoute
			if len(args) == 1 {
				c, err := f.CompiledByName(args[0])
				if err != nil {
					return err
				}
				compiled = append(compiled, c)
			} else if compiled, err = f.Compiled(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range compiled {
				printCompiled(cmd, c)
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func printCompiled(cmd *cobra.Command, c routing.CompiledRoute) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, c.Name)
	fmt.Fprintf(out, "  method:   %s\n", c.Method)
	if c.Hostname != "" {
		fmt.Fprintf(out, "  hostname: %s\n", c.Hostname)
	}
	fmt.Fprintf(out, "  path:     %s\n", c.Path)
}
