// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package format turns raw Airtable cell values into display strings:
// text coercion, flags, price bands, money, rates, dates and race names.
// Every function is pure apart from reading the active lookup tables.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholder is rendered for unknown values.
const Placeholder = "—"

// AsText collapses a cell value into one string. Lists keep their truthy
// elements joined with ", "; nil becomes "".
func AsText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []string:
		parts := make([]string, 0, len(x))
		for _, s := range x {
			if s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			if truthy(e) {
				parts = append(parts, AsText(e))
			}
		}
		return strings.Join(parts, ", ")
	case float64:
		return formatNumber(x)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	return true
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
