// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/witoldexec80th12/discovertrailraces/internal/entryfees"
	"github.com/witoldexec80th12/discovertrailraces/internal/site"
)

var serveAddr string

// serveCmd runs the website.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Cost Per KM website",
	Long: `The serve command starts the web server. Credentials are resolved before the
listener is bound: AIRTABLE_TOKEN and AIRTABLE_BASE_ID from the environment,
otherwise the token saved by 'discovertrailraces login' and the base ID from
the config file. The server exits with an error when either is missing.

The listen address comes from --addr, then PORT, then the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.ListenAddr = serveAddr
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		creds, err := credentials(cfg)
		if err != nil {
			return err
		}

		client := newAirtableClient(cfg, creds)
		opts := site.Options{
			Service: entryfees.NewService(client),
			Logger:  logger,
		}
		if cfg.DebugRoutes {
			opts.Prober = client
		}
		srv, err := site.New(opts)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("starting", logger.Args(
			"version", Version,
			"credentials", creds.Source,
			"debug_routes", cfg.DebugRoutes,
		))
		return srv.ListenAndServe(ctx, cfg.ListenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, e.g. :8080")
}
