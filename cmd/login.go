// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/witoldexec80th12/discovertrailraces/internal/airtable"
	"github.com/witoldexec80th12/discovertrailraces/internal/config"
	"github.com/witoldexec80th12/discovertrailraces/internal/keychain"
	"github.com/witoldexec80th12/discovertrailraces/internal/terminal"
)

var loginBaseID string

// loginCmd stores Airtable credentials after checking them.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save and verify Airtable credentials",
	Long: `The login command prompts for an Airtable personal access token and base ID,
verifies them by reading one row of the public entry-fees view, then stores
the token in the OS keychain and the base ID in the config file.

Environment variables AIRTABLE_TOKEN and AIRTABLE_BASE_ID still take
precedence over saved credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		prompter := terminal.NewPrompter()

		baseID := strings.TrimSpace(loginBaseID)
		if baseID == "" {
			prompt := "Airtable base ID (starts with app): "
			if cfg.Airtable.BaseID != "" {
				prompt = "Airtable base ID [" + cfg.Airtable.BaseID + "]: "
			}
			baseID, err = prompter.Ask(prompt)
			if err != nil {
				return err
			}
			if baseID == "" {
				baseID = cfg.Airtable.BaseID
			}
		}
		if baseID == "" {
			return errors.New("base ID is required")
		}

		prompt := "Airtable personal access token: "
		token, err := prompter.AskSecret(prompt)
		if err != nil {
			return err
		}
		if token == "" {
			return errors.New("token is required")
		}

		creds := config.Credentials{Token: token, BaseID: baseID}
		if err := verifyCredentials(cmd.Context(), cfg, creds); err != nil {
			return err
		}

		km, err := keychain.GetManager()
		if err != nil {
			pterm.Error.Println("Secure storage is not available on this system.")
			pterm.Println("   Credentials verified but not saved. Use AIRTABLE_TOKEN instead.")
			return err
		}
		if err := km.SaveToken(token); err != nil {
			pterm.Error.Println("Failed to save the token securely.")
			return err
		}

		cfg.Airtable.BaseID = baseID
		if err := config.Save(cfg); err != nil {
			return err
		}

		pterm.Success.Println("Airtable credentials verified and saved!")
		pterm.Println("   You're ready to run 'discovertrailraces serve'")
		return nil
	},
}

// verifyCredentials reads a single row with creds.
func verifyCredentials(ctx context.Context, cfg config.Config, creds config.Credentials) error {
	client := newAirtableClient(cfg, creds)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	stop := startSpinner("verifying credentials")
	q := airtable.Query{View: config.Views.EntryFeesPublic, PageSize: 1}
	_, err := client.List(ctx, config.Tables.EntryFees, q.Params())
	stop()
	if err != nil {
		return explainAirtableError(err, "verifying credentials")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginBaseID, "base-id", "", "Airtable base ID (skips the prompt)")
}
