// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"errors"
	"os"
	"strings"

	apperrors "github.com/witoldexec80th12/discovertrailraces/internal/errors"
	"github.com/witoldexec80th12/discovertrailraces/internal/keychain"
)

// Environment variables consulted before the keychain and config file.
const (
	EnvToken  = "AIRTABLE_TOKEN"
	EnvBaseID = "AIRTABLE_BASE_ID"
)

// Credentials authenticate requests against one Airtable base.
type Credentials struct {
	Token  string
	BaseID string
	// Source records where the token came from: "env" or "keychain".
	Source string
}

// TokenStore is the subset of the keychain manager used for lookups.
type TokenStore interface {
	LoadToken() (string, error)
}

// ResolveCredentials returns the token and base ID, preferring the
// environment. store may be nil when no keychain is available. A
// CredentialsMissing error names whatever could not be found.
func ResolveCredentials(c Config, store TokenStore) (Credentials, error) {
	var creds Credentials

	if tok := strings.TrimSpace(os.Getenv(EnvToken)); tok != "" {
		creds.Token, creds.Source = tok, "env"
	} else if store != nil {
		tok, err := store.LoadToken()
		switch {
		case err == nil:
			creds.Token, creds.Source = tok, "keychain"
		case !errors.Is(err, keychain.ErrNotFound):
			return creds, apperrors.Wrap(apperrors.CredentialsMissing, "cannot read token from keychain", err)
		}
	}

	creds.BaseID = strings.TrimSpace(os.Getenv(EnvBaseID))
	if creds.BaseID == "" {
		creds.BaseID = c.Airtable.BaseID
	}

	var missing []string
	if creds.Token == "" {
		missing = append(missing, EnvToken)
	}
	if creds.BaseID == "" {
		missing = append(missing, EnvBaseID)
	}
	if len(missing) > 0 {
		return creds, apperrors.New(apperrors.CredentialsMissing,
			"missing "+strings.Join(missing, " and ")+"; set the environment or run `discovertrailraces login`")
	}
	return creds, nil
}
