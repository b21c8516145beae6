// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package entryfees

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/goliatone/go-slug"

	"github.com/witoldexec80th12/discovertrailraces/internal/airtable"
	"github.com/witoldexec80th12/discovertrailraces/internal/config"
	"github.com/witoldexec80th12/discovertrailraces/internal/format"
)

// SiteName is appended to page titles.
const SiteName = "Discover Trail Races"

// Entry is one row of the cost index.
type Entry struct {
	ID   string
	Name string
	Slug string
	// Href is empty when the row has no routable slug; such rows are not links.
	Href       string
	Location   string
	FlagURL    string
	Date       string
	ThumbURL   string
	Blurb      string
	DistanceKm string
	Fee        string
	HasFee     bool
	EurPerKm   string
	Band       string
	Bucket     format.Bucket
}

// Routable reports whether s can address a race page. Non-canonical
// slugs such as "Zugspitz_Ultra" are accepted as stored; only values
// with control characters or nothing sluggable are refused.
func Routable(s string) bool {
	if strings.ContainsFunc(s, unicode.IsControl) {
		return false
	}
	_, err := slug.Normalize(s)
	return err == nil
}

// NewEntry projects an index record.
func NewEntry(r airtable.Record) Entry {
	e := Entry{
		ID:         r.ID,
		Name:       raceName(r),
		Location:   joinNonEmpty(" · ", format.AsText(r.Value(config.FieldCountry)), format.AsText(r.Value(config.FieldRegion))),
		FlagURL:    flagFor(r.Value(config.FieldCountry)),
		Date:       format.FormatDateMonthDay(r.Text(config.FieldStartDate)),
		ThumbURL:   firstURL(r.Attachments(config.FieldFeaturedImage)),
		Blurb:      format.AsText(r.Value(config.FieldFeaturedBlurb)),
		DistanceKm: format.AsText(r.Value(config.FieldDistanceKm)),
	}
	if slugs := r.Strings(config.FieldRaceSlug); len(slugs) > 0 && slugs[0] != "" {
		e.Slug = slugs[0]
		if Routable(e.Slug) {
			e.Href = "/races/" + url.PathEscape(e.Slug)
		}
	}

	fee, feeOK := format.Positive(r.Number(config.FieldFeeUsed))
	e.HasFee = feeOK
	if feeOK {
		e.Fee = format.FormatMoney(fee, true, r.Text(config.FieldCurrency))
	}
	e.EurPerKm = format.FormatEurPerKm(format.Positive(r.Number(config.FieldEurPerKm)))

	band := format.AsText(r.Value(config.FieldPriceBand))
	e.Band = format.FormatBand(band)
	e.Bucket = format.ClassifyBand(band)
	return e
}

func raceName(r airtable.Record) string {
	if name := format.AsText(r.Value(config.FieldID)); name != "" {
		return name
	}
	return format.AsText(r.Value(config.FieldRaceEvent))
}

// flagFor resolves the first country of a lookup field to a flag image.
func flagFor(v any) string {
	var country string
	switch x := v.(type) {
	case string:
		country = x
	case []any:
		if len(x) > 0 {
			country, _ = x[0].(string)
		}
	}
	code, ok := format.CountryToCode(country)
	if !ok {
		return ""
	}
	return format.FlagURL(code)
}

func firstURL(atts []airtable.Attachment) string {
	if len(atts) == 0 {
		return ""
	}
	return atts[0].URL
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
