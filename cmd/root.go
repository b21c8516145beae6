// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface of discovertrailraces:
// the web server and the operator commands around it (diagnostics,
// credentials and data export), built on Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	apperrors "github.com/witoldexec80th12/discovertrailraces/internal/errors"
	"github.com/witoldexec80th12/discovertrailraces/internal/logging"
)

var (
	showVersion bool
	logLevel    string
	logFormat   string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "discovertrailraces",
	Short: "Trail race entry fees, compared per kilometre",
	Long: `discovertrailraces serves the Cost Per KM website from race entry-fee data
kept in Airtable, and provides operator commands to check the connection,
manage credentials and export snapshots.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("discovertrailraces %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		presentError(err)
		os.Exit(1)
	}
}

// presentError prints a masked error with a hint for the kinds an
// operator can fix.
func presentError(err error) {
	pterm.Error.Println(logging.PresentError("", err))
	switch {
	case apperrors.Is(err, apperrors.CredentialsMissing):
		pterm.Println("   Set AIRTABLE_TOKEN and AIRTABLE_BASE_ID, or run: discovertrailraces login")
	case apperrors.Is(err, apperrors.ConfigInvalid):
		pterm.Println("   Fix the config file shown above, or remove it to use defaults.")
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: colorful or json (overrides config)")
}
