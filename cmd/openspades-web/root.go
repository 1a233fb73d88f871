package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/openspades/website"
	"github.com/openspades/website/internal/adapters/cli"
	"github.com/openspades/website/internal/adapters/env"
	"github.com/openspades/website/internal/config"
	"github.com/openspades/website/internal/content"
	"github.com/openspades/website/internal/core"
)

type rootFlags struct {
	configPath string
	dev        bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "openspades-web",
		Short: "Serve the OpenSpades website",
		Long: `openspades-web serves the OpenSpades website: each page's content is
wrapped in the shared header and navigation shell.

Usage:
  openspades-web serve [flags]
  openspades-web render <path>
  openspades-web routes`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a JSON config file (created with defaults if missing)")
	cmd.PersistentFlags().BoolVar(&flags.dev, "dev", false, "Read content and assets from disk and show error details")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newRoutesCmd(flags))

	return cmd
}

// Execute runs the root command.
func Execute() {
	os.Exit(run(newRootCmd(), cli.NewOutput()))
}

func run(cmd *cobra.Command, output *cli.Output) int {
	if err := cmd.Execute(); err != nil {
		output.PrintError("%v", err)
		return 1
	}
	return 0
}

func (f *rootFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dev") {
		cfg.Dev = f.dev
	} else if env.DetectMode() == core.ModeDev {
		cfg.Dev = true
	}

	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp(cfg *config.Config, logger *slog.Logger) (*website.App, error) {
	contentFS := fs.FS(content.FS)
	publicFS := website.PublicFS
	if cfg.Dev {
		contentFS = os.DirFS(cfg.ContentDir)
		publicFS = os.DirFS(cfg.PublicDir)
	}

	routes, err := website.DefaultRoutes(contentFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load pages: %w", err)
	}

	return website.New(routes,
		website.WithPublicFS(publicFS),
		website.WithDev(cfg.Dev),
		website.WithLogger(logger),
	)
}

func stderrLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return cfg.Logger(cmd.ErrOrStderr())
}
