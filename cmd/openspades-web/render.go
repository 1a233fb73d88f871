package main

import (
	"github.com/spf13/cobra"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render <path>",
		Short: "Write the composed page for a route to stdout",
		Example: `  openspades-web render /
  openspades-web render /download.php > download.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			app, err := newApp(cfg, stderrLogger(cmd, cfg))
			if err != nil {
				return err
			}

			return app.Render(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}
