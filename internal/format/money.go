// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package format

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var english = message.NewPrinter(language.English)

// Positive keeps v only when it is a finite number above zero. Fees and
// rates of zero mean "not yet known" in the base.
func Positive(v float64, ok bool) (float64, bool) {
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// FormatMoney rounds amount to a whole number with thousands separators
// and appends the currency code, e.g. "1,250 EUR".
func FormatMoney(amount float64, ok bool, currency string) string {
	if !ok || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Placeholder
	}
	n := english.Sprintf("%d", int64(math.Round(amount)))
	return strings.TrimSpace(n + " " + currency)
}

// FormatEurPerKm renders a per-kilometre rate as "€1.23".
func FormatEurPerKm(epk float64, ok bool) string {
	if !ok || math.IsNaN(epk) || math.IsInf(epk, 0) {
		return Placeholder
	}
	return fmt.Sprintf("€%.2f", epk)
}
