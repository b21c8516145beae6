// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package format

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

//go:embed data/tables.yaml
var defaultTablesYAML []byte

// BandRule maps labels containing any of Contains, and none of Unless, to
// a normalised range.
type BandRule struct {
	Range    string   `yaml:"range"`
	Contains []string `yaml:"contains"`
	Unless   []string `yaml:"unless,omitempty"`
}

// BucketRule assigns a colour bucket to labels containing any of Contains
// or equal to one of Equals.
type BucketRule struct {
	Bucket   Bucket   `yaml:"bucket"`
	Contains []string `yaml:"contains"`
	Equals   []string `yaml:"equals,omitempty"`
}

// Tables is the lookup data behind CountryToCode, FormatBand and
// ClassifyBand.
type Tables struct {
	Countries map[string]string `yaml:"countries"`
	Bands     []BandRule        `yaml:"bands"`
	Buckets   []BucketRule      `yaml:"buckets"`
}

var current atomic.Pointer[Tables]

func init() {
	t, err := ParseTables(defaultTablesYAML)
	if err != nil {
		panic(fmt.Sprintf("format: embedded tables: %v", err))
	}
	current.Store(t)
}

// ParseTables decodes and normalises a tables document.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if len(t.Countries) == 0 {
		return nil, fmt.Errorf("no countries defined")
	}
	countries := make(map[string]string, len(t.Countries))
	for name, code := range t.Countries {
		countries[strings.ToLower(strings.TrimSpace(name))] = strings.ToLower(strings.TrimSpace(code))
	}
	t.Countries = countries
	for i, r := range t.Bands {
		if r.Range == "" || len(r.Contains) == 0 {
			return nil, fmt.Errorf("band rule %d: range and contains are required", i)
		}
	}
	for i, r := range t.Buckets {
		switch r.Bucket {
		case Cheap, Mid, Expensive:
		default:
			return nil, fmt.Errorf("bucket rule %d: unknown bucket %q", i, r.Bucket)
		}
	}
	return &t, nil
}

// LoadTablesFile replaces the active tables with the contents of path.
// Call it at startup, before serving requests.
func LoadTablesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	t, err := ParseTables(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	current.Store(t)
	return nil
}

// Default returns the built-in tables.
func Default() *Tables {
	t, _ := ParseTables(defaultTablesYAML)
	return t
}

// Active returns the tables currently in use.
func Active() *Tables { return current.Load() }
