// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/witoldexec80th12/discovertrailraces/internal/config"
	"github.com/witoldexec80th12/discovertrailraces/internal/entryfees"
	"github.com/witoldexec80th12/discovertrailraces/internal/logging"
)

// debugCmd runs the diagnostic query from the terminal.
var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Run the diagnostic entry-fees query and print the raw response",
	Long: `The debug command sends the same request as /api/debug-entry-fees (three rows
of the public entry-fees view, cheapest per km first) and prints the status,
URL and raw JSON body. It does not need a running server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		creds, err := credentials(cfg)
		if err != nil {
			return err
		}
		client := newAirtableClient(cfg, creds)

		stop := startSpinner("querying Airtable")
		res, err := client.Probe(cmd.Context(), config.Tables.EntryFees, entryfees.DebugQuery().Params())
		stop()
		if err != nil {
			return explainAirtableError(err, "querying Airtable")
		}

		body, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		status := pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint(res.Status)
		if !res.OK {
			status = pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(res.Status)
		}
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Status: ") + status)
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ URL:    ") + res.URL)
		pterm.Println()
		fmt.Println(logging.Mask(string(body)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
