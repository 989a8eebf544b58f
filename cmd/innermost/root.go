package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/chiranperera/inner-most/internal/config"
	"github.com/chiranperera/inner-most/internal/render"
	"github.com/chiranperera/inner-most/internal/version"
)

// NewRootCommand builds the command tree. A fresh tree per call keeps flag
// state out of package globals.
func NewRootCommand() *cobra.Command {
	var envDir string

	root := &cobra.Command{
		Use:   "innermost",
		Short: "InnorMost landing site",
		Long: `Server-rendered landing site for the InnorMost dating product.

Run "innermost serve" to serve the pages over HTTP, or "innermost render"
to write them out as static files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnvFiles(envDir)
		},
	}

	root.PersistentFlags().StringVar(&envDir, "env-dir", ".", "directory holding .env and .env.local")

	root.AddCommand(
		newServeCommand(),
		newRenderCommand(),
		newVersionCommand(),
	)
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fx.New(serverOptions()).Run()
		},
	}
}

func newRenderCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the site to static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				pages *render.Pages
				log   *slog.Logger
			)
			app := fx.New(siteOptions(), fx.Populate(&pages, &log))
			if err := app.Err(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			files, err := render.Export(ctx, out, pages, log)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info().String())
		},
	}
}
