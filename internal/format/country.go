// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package format

import "strings"

// CountryToCode returns the two-letter code for a country name.
func CountryToCode(name string) (string, bool) { return Active().CountryToCode(name) }

// CountryToCode looks the trimmed, lowercased name up in t.
func (t *Tables) CountryToCode(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}
	code, ok := t.Countries[key]
	return code, ok && code != ""
}

// FlagURL returns the flag image URL for a two-letter country code.
func FlagURL(code string) string {
	return "https://flagcdn.com/w320/" + code + ".png"
}
