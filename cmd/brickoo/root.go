package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/vitalvas/brickoo/routeconfig"
	"github.com/vitalvas/brickoo/routing"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	config  string
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "brickoo",
		Short:        "Inspect and compile route tables",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "routes.yaml", "Route table file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log match diagnostics to stderr")

	root.AddCommand(
		newMatchCommand(opts),
		newRegexCommand(opts),
		newCompileCommand(opts),
	)
	return root
}

// loadFinder reads the route table named by --config.
func (o *globalOptions) loadFinder(cmd *cobra.Command) (*routing.Finder, error) {
	cfg, err := routeconfig.Load(o.config)
	if err != nil {
		return nil, err
	}

	routes, aliases, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return routing.NewFinder(routes, aliases, routing.WithLogger(logger)), nil
}
