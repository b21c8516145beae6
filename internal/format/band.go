// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package format

import "strings"

// Bucket is the colour class of a price band.
type Bucket string

const (
	Cheap     Bucket = "cheap"
	Mid       Bucket = "mid"
	Expensive Bucket = "expensive"
	Unknown   Bucket = "unknown"
)

// ClassifyBand buckets a band label for colouring.
func ClassifyBand(label string) Bucket { return Active().ClassifyBand(label) }

// FormatBand normalises a band label to "0–1", "1–2", "2–3" or "3+".
// Unmatched labels are returned unchanged; an empty label yields "—".
func FormatBand(label string) string { return Active().FormatBand(label) }

// ClassifyBand buckets label using t's rules.
func (t *Tables) ClassifyBand(label string) Bucket {
	if label == "" {
		return Unknown
	}
	b := strings.ToLower(label)
	for _, r := range t.Buckets {
		for _, e := range r.Equals {
			if b == e {
				return r.Bucket
			}
		}
		if containsAny(b, r.Contains) {
			return r.Bucket
		}
	}
	return Unknown
}

// FormatBand normalises label using t's rules.
func (t *Tables) FormatBand(label string) string {
	if label == "" {
		return Placeholder
	}
	b := strings.ToLower(label)
	for _, r := range t.Bands {
		if containsAny(b, r.Contains) && !containsAny(b, r.Unless) {
			return r.Range
		}
	}
	return label
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
