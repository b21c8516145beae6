// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package entryfees

import (
	"github.com/witoldexec80th12/discovertrailraces/internal/airtable"
	"github.com/witoldexec80th12/discovertrailraces/internal/config"
	"github.com/witoldexec80th12/discovertrailraces/internal/format"
)

// Detail is the projection rendered by a race page.
type Detail struct {
	ID          string
	Title       string
	Description string

	Name     string
	Distance string
	Location string
	FlagURL  string
	Date     string
	Fee      string
	EurPerKm string
	Band     string
	Bucket   format.Bucket
	ImageURL string
	// Blurb is Markdown.
	Blurb string

	Terrain     string
	Elevation   string
	PctIncrease string
	UTMB        bool

	Logistics   string
	Airport     string
	AirportCode string
	LastChecked string
}

// NewDetail projects the selected row of a race.
func NewDetail(r airtable.Record) Detail {
	name, distance := format.ExtractNameAndDistance(raceName(r))
	d := Detail{
		ID:          r.ID,
		Title:       name + " | " + SiteName,
		Description: "Key details for " + name + ": date, distance, entry fee, and cost per km.",
		Name:        name,
		Distance:    distance,
		Location:    joinNonEmpty(" · ", format.AsText(r.Value(config.FieldLkpCountry)), format.AsText(r.Value(config.FieldLkpRegion))),
		FlagURL:     flagFor(r.Value(config.FieldLkpCountry)),
		Date:        format.FormatDateLong(r.Text(config.FieldStartDate)),
		Terrain:     format.AsText(r.Value(config.FieldTerrain)),
		Elevation:   optionalText(r.Value(config.FieldElevation)),
		PctIncrease: optionalText(r.Value(config.FieldPctIncrease)),
		UTMB:        r.Bool(config.FieldUTMB),
		Logistics:   format.AsText(r.Value(config.FieldLogistics)),
		Airport:     format.AsText(r.Value(config.FieldAirport)),
		AirportCode: format.AsText(r.Value(config.FieldAirportCode)),
		LastChecked: format.AsText(r.Value(config.FieldLastChecked)),
	}

	fee, feeOK := format.Positive(r.Number(config.FieldFeeUsed))
	d.Fee = format.FormatMoney(fee, feeOK, r.Text(config.FieldCurrency))
	d.EurPerKm = format.FormatEurPerKm(format.Positive(r.Number(config.FieldEurPerKm)))

	band := format.AsText(r.Value(config.FieldPriceBand))
	d.Band = format.FormatBand(band)
	d.Bucket = format.ClassifyBand(band)

	d.ImageURL = firstURL(r.Attachments(config.FieldLkpImage))
	if d.ImageURL == "" {
		d.ImageURL = firstURL(r.Attachments(config.FieldTemporaryImage))
	}
	d.Blurb = format.AsText(r.Value(config.FieldFinalBlurb))
	if d.Blurb == "" {
		d.Blurb = format.AsText(r.Value(config.FieldFeaturedBlurb))
	}
	return d
}

// ElevationSummary joins "<elevation> m" and the climb ratio.
func (d Detail) ElevationSummary() string {
	var elev string
	if d.Elevation != "" {
		elev = d.Elevation + " m"
	}
	return joinNonEmpty(" · ", elev, d.PctIncrease)
}

// AirportLabel renders "Geneva (GVA)".
func (d Detail) AirportLabel() string {
	var code string
	if d.AirportCode != "" {
		code = "(" + d.AirportCode + ")"
	}
	return joinNonEmpty(" ", d.Airport, code)
}

// HasLogistics reports whether the logistics section has anything to show.
func (d Detail) HasLogistics() bool {
	return d.Logistics != "" || d.Airport != "" || d.AirportCode != ""
}

// optionalText treats zero and false like a missing cell.
func optionalText(v any) string {
	switch x := v.(type) {
	case float64:
		if x == 0 {
			return ""
		}
	case bool:
		if !x {
			return ""
		}
	}
	return format.AsText(v)
}
