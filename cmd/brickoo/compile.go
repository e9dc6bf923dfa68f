package main

import (
	"github.com/spf13/cobra"
	"github.com/vitalvas/brickoo/routecache"
)

func newCompileCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compile",
		Short: "Write the compiled route table to stdout",
		Long: `Compile every route and write the table as JSON. The output can be
stored and later loaded with routecache.Decode to skip regular expression
synthesis at startup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := global.loadFinder(cmd)
			if err != nil {
				return err
			}

			table, err := routecache.Snapshot(f)
			if err != nil {
				return err
			}
			return table.Encode(cmd.OutOrStdout())
		},
	}
}
