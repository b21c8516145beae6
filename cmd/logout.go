// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/witoldexec80th12/discovertrailraces/internal/config"
	"github.com/witoldexec80th12/discovertrailraces/internal/keychain"
)

// logoutCmd removes saved credentials.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved Airtable token and base ID",
	Long: `The logout command deletes the Airtable token from the OS keychain and the
base ID from the config file. Environment variables are not affected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if km, err := keychain.GetManager(); err == nil {
			if err := km.ClearToken(); err != nil {
				pterm.Warning.Println("Could not remove the token from the keychain: " + err.Error())
			}
		}

		cfg, err := config.Load()
		if err == nil && cfg.Airtable.BaseID != "" {
			cfg.Airtable.BaseID = ""
			if err := config.Save(cfg); err != nil {
				return err
			}
		}

		pterm.Success.Println("Saved Airtable credentials have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
