package main

import (
	"github.com/spf13/cobra"

	"github.com/openspades/website/internal/adapters/cli"
)

func newRoutesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the pages the site serves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			app, err := newApp(cfg, stderrLogger(cmd, cfg))
			if err != nil {
				return err
			}

			output := cli.NewWriterOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
			for _, route := range app.Routes() {
				output.PrintRoute(route.Pattern, route.Options.Title)
			}
			return nil
		},
	}
}
