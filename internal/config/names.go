// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import "regexp"

// baseIDPattern matches Airtable base identifiers such as appA1b2C3d4E5f6G7.
var baseIDPattern = regexp.MustCompile(`^app[A-Za-z0-9]{14}$`)

// Tables names the Airtable tables the site reads.
var Tables = struct {
	EntryFees  string
	RaceEvents string
}{
	EntryFees:  "Entry Fees",
	RaceEvents: "Race Events",
}

// Views names the server-side views. Explore views pre-filter the public
// entry fees by €/km range.
var Views = struct {
	EntryFeesPublic    string
	RaceEventsPublic   string
	HomepageFeatured   string
	ExploreValue1To1p5 string
	ExploreValue1p5To2 string
	ExploreValue2To2p5 string
	ExploreValue2p5To3 string
	ExploreValue3Up    string
	// Debug is the view queried by the diagnostic endpoint.
	Debug string
}{
	EntryFeesPublic:    "entry_fees_public",
	RaceEventsPublic:   "race_events_public",
	HomepageFeatured:   "homepage_featured",
	ExploreValue1To1p5: "explore_value_1_1p5",
	ExploreValue1p5To2: "explore_value_1p5_2",
	ExploreValue2To2p5: "explore_value_2_2p5",
	ExploreValue2p5To3: "explore_value_2p5_3",
	ExploreValue3Up:    "explore_value_3_up",
	Debug:              "🌍 Entry Fees – Public",
}

// ExploreViews maps the ?range= keys of the cost index to explore views.
var ExploreViews = map[string]string{
	"1-1.5": Views.ExploreValue1To1p5,
	"1.5-2": Views.ExploreValue1p5To2,
	"2-2.5": Views.ExploreValue2To2p5,
	"2.5-3": Views.ExploreValue2p5To3,
	"3+":    Views.ExploreValue3Up,
}

// ExploreKeys lists the range keys in ascending order.
var ExploreKeys = []string{"1-1.5", "1.5-2", "2-2.5", "2.5-3", "3+"}

// Field names used in queries and projections.
const (
	FieldEurPerKm       = "AUTO €/km"
	FieldFeeUsed        = "AUTO Fee used"
	FieldPriceBand      = "AUTO Price Bands"
	FieldRaceSlug       = "Race Slug"
	FieldIsPrimary      = "Is Primary Distance (from Distance)"
	FieldID             = "ID"
	FieldRaceEvent      = "Race Event"
	FieldCountry        = "Country (from Race)"
	FieldRegion         = "Region (from Race)"
	FieldDistanceKm     = "Distance (km)"
	FieldCurrency       = "Currency"
	FieldFeaturedImage  = "Featured Image"
	FieldFeaturedBlurb  = "Featured Blurb"
	FieldStartDate      = "Distance Start Date"
	FieldLastChecked    = "Last Checked"
	FieldLkpCountry     = "LKP_country"
	FieldLkpRegion      = "LKP_region"
	FieldLkpImage       = "LKP_featured_image"
	FieldTemporaryImage = "temporary_image"
	FieldFinalBlurb     = "FINAL_blurb"
	FieldTerrain        = "LKP_terrain"
	FieldElevation      = "LKP_elevation"
	FieldPctIncrease    = "LKP_%increase"
	FieldUTMB           = "LKP_utmb"
	FieldLogistics      = "LKP_logistics"
	FieldAirport        = "LKP_primaryairport"
	FieldAirportCode    = "LKP_airportcode"
)
