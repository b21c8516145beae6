// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package entryfees

import (
	"testing"

	"github.com/witoldexec80th12/discovertrailraces/internal/format"
)

func TestNewEntry(t *testing.T) {
	r := record(t, "rec1", `{
		"ID": "UTMB – 171 km",
		"Country (from Race)": ["France"],
		"Region (from Race)": ["Auvergne-Rhône-Alpes"],
		"Distance (km)": 171,
		"Currency": "EUR",
		"AUTO Fee used": 1249.6,
		"AUTO €/km": 2.35,
		"AUTO Price Bands": "2-3",
		"Featured Image": [{"id":"att","url":"https://img/utmb.jpg","filename":"utmb.jpg"}],
		"Featured Blurb": "The big one.",
		"Race Slug": ["utmb"],
		"Distance Start Date": "2026-08-28"
	}`)
	e := NewEntry(r)

	checks := []struct {
		name, got, want string
	}{
		{"Name", e.Name, "UTMB – 171 km"},
		{"Href", e.Href, "/races/utmb"},
		{"Location", e.Location, "France · Auvergne-Rhône-Alpes"},
		{"FlagURL", e.FlagURL, "https://flagcdn.com/w320/fr.png"},
		{"Date", e.Date, "August 28"},
		{"ThumbURL", e.ThumbURL, "https://img/utmb.jpg"},
		{"DistanceKm", e.DistanceKm, "171"},
		{"Fee", e.Fee, "1,250 EUR"},
		{"EurPerKm", e.EurPerKm, "€2.35"},
		{"Band", e.Band, "2–3"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if e.Bucket != format.Expensive {
		t.Errorf("Bucket = %q", e.Bucket)
	}
}

func TestNewEntryZeroValuesArePlaceholders(t *testing.T) {
	e := NewEntry(record(t, "rec1", `{"AUTO Fee used": 0, "AUTO €/km": -1, "Country (from Race)": "Atlantis"}`))
	if e.HasFee || e.Fee != "" {
		t.Errorf("fee = %q, %v", e.Fee, e.HasFee)
	}
	if e.EurPerKm != "—" {
		t.Errorf("EurPerKm = %q", e.EurPerKm)
	}
	if e.FlagURL != "" {
		t.Errorf("FlagURL = %q", e.FlagURL)
	}
	if e.Band != "—" || e.Bucket != format.Unknown {
		t.Errorf("band = %q %q", e.Band, e.Bucket)
	}
}

func TestNewDetail(t *testing.T) {
	r := record(t, "rec9", `{
		"ID": "Beara Way Ultra (IMRA) – 161 km",
		"LKP_country": ["Ireland"],
		"LKP_region": ["Munster"],
		"Distance Start Date": "2026-06-06",
		"AUTO Fee used": 0,
		"AUTO €/km": 0.9,
		"temporary_image": [{"id":"t","url":"https://img/tmp.jpg","filename":"tmp.jpg"}],
		"Featured Blurb": "fallback",
		"LKP_elevation": 5200,
		"LKP_%increase": 32,
		"LKP_utmb": true,
		"LKP_primaryairport": ["Kerry"],
		"LKP_airportcode": ["KIR"]
	}`)
	d := NewDetail(r)

	checks := []struct {
		name, got, want string
	}{
		{"Title", d.Title, "Beara Way Ultra (IMRA) | Discover Trail Races"},
		{"Description", d.Description, "Key details for Beara Way Ultra (IMRA): date, distance, entry fee, and cost per km."},
		{"Name", d.Name, "Beara Way Ultra (IMRA)"},
		{"Distance", d.Distance, "161 km"},
		{"Location", d.Location, "Ireland · Munster"},
		{"Date", d.Date, "June 6, 2026"},
		{"Fee", d.Fee, "—"},
		{"EurPerKm", d.EurPerKm, "€0.90"},
		{"ImageURL", d.ImageURL, "https://img/tmp.jpg"},
		{"Blurb", d.Blurb, "fallback"},
		{"ElevationSummary", d.ElevationSummary(), "5200 m · 32"},
		{"AirportLabel", d.AirportLabel(), "Kerry (KIR)"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if !d.UTMB || !d.HasLogistics() {
		t.Errorf("UTMB %v, HasLogistics %v", d.UTMB, d.HasLogistics())
	}
}

func TestNewDetailPrefersFinalBlurbAndFeaturedImage(t *testing.T) {
	d := NewDetail(record(t, "r", `{
		"FINAL_blurb": "final",
		"Featured Blurb": "featured",
		"LKP_featured_image": [{"id":"a","url":"https://img/lkp.jpg","filename":"a"}],
		"temporary_image": [{"id":"b","url":"https://img/tmp.jpg","filename":"b"}],
		"LKP_elevation": 0
	}`))
	if d.Blurb != "final" || d.ImageURL != "https://img/lkp.jpg" {
		t.Errorf("blurb %q image %q", d.Blurb, d.ImageURL)
	}
	if d.ElevationSummary() != "" || d.HasLogistics() {
		t.Errorf("unexpected summary %q", d.ElevationSummary())
	}
}

func TestRoutable(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"utmb", true},
		{"zugspitz_ultra", true},
		{"Lavaredo-Ultra-Trail", true},
		{"transgrancanaria--classic", true},
		{"", false},
		{"!!!", false},
		{"utmb\n", false},
		{"a\x00b", false},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			if got := Routable(tt.slug); got != tt.want {
				t.Errorf("Routable(%q) = %v, want %v", tt.slug, got, tt.want)
			}
		})
	}
}

func TestNewEntryLinksNonCanonicalSlug(t *testing.T) {
	e := NewEntry(record(t, "rec1", `{"Race Slug": ["zugspitz_ultra"]}`))
	if e.Href != "/races/zugspitz_ultra" {
		t.Errorf("Href = %q", e.Href)
	}
	e = NewEntry(record(t, "rec2", `{"Race Slug": ["???"]}`))
	if e.Slug != "???" || e.Href != "" {
		t.Errorf("Slug = %q, Href = %q", e.Slug, e.Href)
	}
}
