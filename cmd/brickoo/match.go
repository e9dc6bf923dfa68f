package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"github.com/vitalvas/brickoo/routing"
)

func newMatchCommand(global *globalOptions) *cobra.Command {
	var method, host, format string

	cmd := &cobra.Command{
		Use:   "match [flags] path",
		Short: "Find the route responsible for a request",
		Long: `Find the route responsible for a request and print its name,
controller and parameters.

    $ brickoo match --method GET /articles/2.json
    route: article
    controller: articles::list
    format: json
    page: 2

The command fails when no route matches.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := global.loadFinder(cmd)
			if err != nil {
				return err
			}

			req := routing.NewRequest(method, host, args[0]).WithAcceptedFormat(format)
			m, err := f.Find(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "route: %s\n", m.Route.GetName())
			if c, err := m.Route.GetController(); err == nil {
				fmt.Fprintf(out, "controller: %s\n", c)
			}
			for _, name := range slices.Sorted(maps.Keys(m.Parameters)) {
				fmt.Fprintf(out, "%s: %s\n", name, m.Parameters[name])
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&method, "method", "m", "GET", "Request method")
	flags.StringVar(&host, "host", "localhost", "Request host")
	flags.StringVarP(&format, "format", "f", "", "Format accepted by the client")
	return cmd
}
