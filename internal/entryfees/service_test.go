// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package entryfees

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/witoldexec80th12/discovertrailraces/internal/airtable"
)

type fakeLister struct {
	records []airtable.Record
	err     error

	table  string
	params airtable.Params
}

func (f *fakeLister) List(_ context.Context, table string, params airtable.Params) ([]airtable.Record, error) {
	f.table, f.params = table, params
	return f.records, f.err
}

func record(t *testing.T, id, fields string) airtable.Record {
	t.Helper()
	r := airtable.Record{ID: id}
	if err := json.Unmarshal([]byte(fields), &r.Fields); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestIndexQuery(t *testing.T) {
	tests := []struct {
		explore string
		view    string
	}{
		{"", "entry_fees_public"},
		{"1-1.5", "explore_value_1_1p5"},
		{"3+", "explore_value_3_up"},
		{"bogus", "entry_fees_public"},
	}
	for _, tt := range tests {
		t.Run(tt.explore, func(t *testing.T) {
			p := IndexQuery(tt.explore).Params()
			if p["view"] != tt.view {
				t.Errorf("view = %v, want %q", p["view"], tt.view)
			}
			if p["sort[0][field]"] != "AUTO €/km" || p["sort[0][direction]"] != "asc" {
				t.Errorf("sort = %v %v", p["sort[0][field]"], p["sort[0][direction]"])
			}
			if p["pageSize"] != 20 {
				t.Errorf("pageSize = %v", p["pageSize"])
			}
		})
	}
}

func TestSlugFilter(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"utmb-mont-blanc", `FIND("utmb-mont-blanc", ARRAYJOIN({Race Slug}))`},
		{`a"b\c`, `FIND("a\"b\\c", ARRAYJOIN({Race Slug}))`},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			if got := SlugFilter(tt.slug); got != tt.want {
				t.Errorf("SlugFilter() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	f := &fakeLister{records: []airtable.Record{
		record(t, "rec1", `{"ID":"Zegama – 42 km","Race Slug":["zegama"],"AUTO €/km":2.5}`),
		record(t, "rec2", `{"Race Event":["Transvulcania"]}`),
	}}
	entries, err := NewService(f).Index(context.Background(), "")
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	if f.table != "Entry Fees" {
		t.Errorf("table = %q", f.table)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d", len(entries))
	}
	if entries[0].Href != "/races/zegama" || entries[1].Href != "" {
		t.Errorf("hrefs = %q, %q", entries[0].Href, entries[1].Href)
	}
	if entries[1].Name != "Transvulcania" {
		t.Errorf("Name = %q", entries[1].Name)
	}
}

func TestIndexError(t *testing.T) {
	want := &airtable.APIError{Status: 401, Type: "AUTHENTICATION_REQUIRED"}
	_, err := NewService(&fakeLister{err: want}).Index(context.Background(), "")
	var apiErr *airtable.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 401 {
		t.Errorf("Index() error = %v", err)
	}
}

func TestForSlugNarrowsToExactMatches(t *testing.T) {
	f := &fakeLister{records: []airtable.Record{
		record(t, "a", `{"Race Slug":["ultra-trail"]}`),
		record(t, "b", `{"Race Slug":["trail"]}`),
		record(t, "c", `{"Race Slug":["x","trail"]}`),
	}}
	rows, err := NewService(f).ForSlug(context.Background(), "trail")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].ID != "b" || rows[1].ID != "c" {
		t.Errorf("rows = %+v", rows)
	}
	if f.params["filterByFormula"] != `FIND("trail", ARRAYJOIN({Race Slug}))` || f.params["pageSize"] != 50 {
		t.Errorf("params = %v", f.params)
	}
}

func TestSelectPrimary(t *testing.T) {
	plain := record(t, "plain", `{}`)
	primary := record(t, "primary", `{"Is Primary Distance (from Distance)":true}`)
	notPrimary := record(t, "no", `{"Is Primary Distance (from Distance)":false}`)

	tests := []struct {
		name   string
		rows   []airtable.Record
		want   string
		wantOK bool
	}{
		{"empty", nil, "", false},
		{"first when none flagged", []airtable.Record{plain, notPrimary}, "plain", true},
		{"primary last", []airtable.Record{plain, notPrimary, primary}, "primary", true},
		{"primary first", []airtable.Record{primary, plain}, "primary", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectPrimary(tt.rows)
			if ok != tt.wantOK || got.ID != tt.want {
				t.Errorf("SelectPrimary() = %q, %v", got.ID, ok)
			}
		})
	}
}

func TestRaceNotFound(t *testing.T) {
	_, ok, err := NewService(&fakeLister{records: []airtable.Record{}}).Race(context.Background(), "nope")
	if err != nil || ok {
		t.Errorf("Race() = ok %v, err %v", ok, err)
	}
}
