// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package format

import (
	"regexp"
	"strings"
)

var nameDistanceSep = regexp.MustCompile(`\s[–—-]\s`)

// ExtractNameAndDistance splits "Beara Way Ultra (IMRA) – 161 km" into the
// race name and its trailing distance. Without a spaced dash the whole
// string is the name.
func ExtractNameAndDistance(s string) (name, distance string) {
	parts := nameDistanceSep.Split(s, -1)
	if len(parts) < 2 {
		return s, ""
	}
	return strings.Join(parts[:len(parts)-1], " – "), parts[len(parts)-1]
}
