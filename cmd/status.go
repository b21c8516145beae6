package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/witoldexec80th12/discovertrailraces/internal/config"
	apperrors "github.com/witoldexec80th12/discovertrailraces/internal/errors"
)

var statusCheck bool

// statusCmd shows where settings and credentials come from.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and credential status",
	Long: `The status command prints the config file location, the resolved settings and
where the Airtable credentials come from. With --check it also reads one row
from Airtable to confirm the credentials work.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		path, _ := config.Path()

		creds, credErr := credentials(cfg)
		token := "not set"
		if creds.Token != "" {
			token = maskToken(creds.Token) + " (" + creds.Source + ")"
		}
		base := creds.BaseID
		if base == "" {
			base = "not set"
		}
		apiURL := cfg.Airtable.APIURL
		if apiURL == "" {
			apiURL = "https://api.airtable.com (default)"
		}

		details := strings.Join([]string{
			"Config file:   " + path,
			"Listen addr:   " + cfg.ListenAddr,
			"Log:           " + cfg.LogLevel + " / " + cfg.LogFormat,
			"Airtable API:  " + apiURL,
			"Base ID:       " + base,
			"Token:         " + token,
			fmt.Sprintf("Debug routes:  %t", cfg.DebugRoutes),
		}, "\n")
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Discover Trail Races")).
			WithPadding(1).
			Println(details)

		if credErr != nil {
			if apperrors.Is(credErr, apperrors.CredentialsMissing) {
				pterm.Warning.Println("Airtable credentials are incomplete.")
				pterm.Println("   Please run: discovertrailraces login")
				return nil
			}
			return credErr
		}
		if statusCheck {
			if err := verifyCredentials(cmd.Context(), cfg, creds); err != nil {
				return err
			}
			pterm.Success.Println("Airtable connection verified")
		}
		return nil
	},
}

// maskToken keeps the "pat" prefix and the last four characters.
func maskToken(tok string) string {
	if len(tok) <= 8 {
		return "***"
	}
	return tok[:3] + "***" + tok[len(tok)-4:]
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusCheck, "check", false, "Verify the credentials against Airtable")
}
