// Package config loads and stores settings in the XDG config dir.
// Only non-secret settings are kept here; the Airtable token goes to the
// OS keychain or the environment.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	apperrors "github.com/witoldexec80th12/discovertrailraces/internal/errors"
	"github.com/witoldexec80th12/discovertrailraces/internal/logging"
	"github.com/witoldexec80th12/discovertrailraces/internal/xdg"
)

// DefaultListenAddr is used when neither the config file, PORT nor --addr
// name one.
const DefaultListenAddr = ":8080"

// Config holds non-sensitive settings.
type Config struct {
	LogLevel    string         `json:"log_level"`
	LogFormat   string         `json:"log_format"`
	ListenAddr  string         `json:"listen_addr"`
	Airtable    AirtableConfig `json:"airtable"`
	TablesFile  string         `json:"tables_file,omitempty"`
	DebugRoutes bool           `json:"debug_routes"`
}

// AirtableConfig holds the remote endpoint settings.
type AirtableConfig struct {
	APIURL string `json:"api_url,omitempty"`
	// TimeoutSeconds bounds each request; 0 means no client-side timeout.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
	// BaseID may be stored here by `login`; AIRTABLE_BASE_ID wins.
	BaseID string `json:"base_id,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   "colorful",
		ListenAddr:  DefaultListenAddr,
		DebugRoutes: true,
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults. Keys absent
// from the file keep their default values. PORT, when set, overrides the
// listen address.
func Load() (Config, error) {
	c := Default()
	p, err := Path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, err
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, apperrors.Wrap(apperrors.ConfigInvalid, "cannot parse "+p, err)
		}
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		c.ListenAddr = ":" + strings.TrimPrefix(port, ":")
	}
	if err := c.Validate(); err != nil {
		return c, apperrors.Wrap(apperrors.ConfigInvalid, p, err)
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.LogLevel, validation.In(anySlice(logging.Levels)...)),
		validation.Field(&c.LogFormat, validation.In(anySlice(logging.Formats)...)),
		validation.Field(&c.ListenAddr, validation.Required),
		validation.Field(&c.Airtable),
	)
}

// Validate checks the remote endpoint settings.
func (a AirtableConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.APIURL, is.RequestURL),
		validation.Field(&a.TimeoutSeconds, validation.Min(0)),
		validation.Field(&a.BaseID, validation.Match(baseIDPattern)),
	)
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
