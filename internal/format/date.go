// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package format

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseDate accepts the ISO 8601 forms Airtable emits for date and
// date-time fields. Values without a zone are read as UTC; date-times
// carrying an offset keep it, so the calendar day is the one written.
func ParseDate(iso string) (time.Time, bool) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateLong renders "June 6, 2026"; invalid input yields "".
func FormatDateLong(iso string) string {
	t, ok := ParseDate(iso)
	if !ok {
		return ""
	}
	return t.Format("January 2, 2006")
}

// FormatDateMonthDay renders "June 6"; invalid input yields "".
func FormatDateMonthDay(iso string) string {
	t, ok := ParseDate(iso)
	if !ok {
		return ""
	}
	return t.Format("January 2")
}
