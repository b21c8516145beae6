// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"time"

	"github.com/pterm/pterm"

	"github.com/witoldexec80th12/discovertrailraces/internal/airtable"
	"github.com/witoldexec80th12/discovertrailraces/internal/config"
	"github.com/witoldexec80th12/discovertrailraces/internal/format"
	"github.com/witoldexec80th12/discovertrailraces/internal/keychain"
	"github.com/witoldexec80th12/discovertrailraces/internal/logging"
)

// loadSettings reads the config file, applies the persistent flags and
// loads the lookup tables override when one is configured.
func loadSettings() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if cfg.TablesFile != "" {
		if err := format.LoadTablesFile(cfg.TablesFile); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*pterm.Logger, error) {
	return logging.NewLogger(cfg.LogLevel, cfg.LogFormat, nil)
}

// credentials resolves the Airtable token and base ID. A keychain that
// cannot be opened is treated as empty.
func credentials(cfg config.Config) (config.Credentials, error) {
	var store config.TokenStore
	if km, err := keychain.GetManager(); err == nil {
		store = km
	}
	return config.ResolveCredentials(cfg, store)
}

func newAirtableClient(cfg config.Config, creds config.Credentials) *airtable.Client {
	return airtable.New(airtable.Options{
		BaseURL:   cfg.Airtable.APIURL,
		Token:     creds.Token,
		BaseID:    creds.BaseID,
		Timeout:   time.Duration(cfg.Airtable.TimeoutSeconds) * time.Second,
		UserAgent: "discovertrailraces/" + Version,
	})
}
