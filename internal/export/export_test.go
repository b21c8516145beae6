// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package export

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/witoldexec80th12/discovertrailraces/internal/airtable"
)

type fakePages struct {
	records  []airtable.Record
	query    airtable.Query
	maxPages int
}

func (f *fakePages) ListAll(_ context.Context, _ string, q airtable.Query, maxPages int) ([]airtable.Record, error) {
	f.query, f.maxPages = q, maxPages
	return f.records, nil
}

func record(t *testing.T, id, fields string) airtable.Record {
	t.Helper()
	r := airtable.Record{ID: id}
	if err := json.Unmarshal([]byte(fields), &r.Fields); err != nil {
		t.Fatal(err)
	}
	return r
}

func sampleRecords(t *testing.T) []airtable.Record {
	return []airtable.Record{
		record(t, "rec1", `{"ID":"Zegama – 42 km","Race Slug":["zegama"],"Country (from Race)":["Spain"],"Distance (km)":42,"Currency":"EUR","AUTO Fee used":105,"AUTO €/km":2.5,"AUTO Price Bands":"2-3","Distance Start Date":"2026-05-17","Is Primary Distance (from Distance)":true}`),
		record(t, "rec2", `{"Race Event":["Unpriced"],"AUTO Fee used":0}`),
	}
}

func TestSnapshot(t *testing.T) {
	f := &fakePages{records: sampleRecords(t)}
	rows, err := Snapshot(context.Background(), f)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if f.maxPages != MaxPages || f.query.PageSize != 100 || f.query.View != "entry_fees_public" {
		t.Errorf("query = %+v, maxPages %d", f.query, f.maxPages)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d", len(rows))
	}

	r := rows[0]
	if r.Slug != "zegama" || r.Bucket != "expensive" || !r.IsPrimary {
		t.Errorf("row = %+v", r)
	}
	if r.Fee == nil || *r.Fee != 105 || r.StartDate == nil || r.StartDate.Day() != 17 {
		t.Errorf("row = %+v", r)
	}

	u := rows[1]
	if u.Race != "Unpriced" || u.Fee != nil || u.EurPerKm != nil || u.StartDate != nil {
		t.Errorf("row = %+v", u)
	}
	if vals := u.Values(); len(vals) != len(Columns) || vals[7] != nil {
		t.Errorf("Values() = %v", vals)
	}
}

func TestXLSXSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fees.xlsx")
	rows := []Row{NewRow(sampleRecords(t)[0]), NewRow(sampleRecords(t)[1])}
	if err := (XLSXSink{Path: path}).Write(context.Background(), rows); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := f.GetRows("Entry Fees")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("rows = %d", len(got))
	}
	if strings.Join(got[0], ",") != strings.Join(Columns, ",") {
		t.Errorf("header = %v", got[0])
	}
	if got[1][0] != "rec1" || got[1][2] != "zegama" {
		t.Errorf("first row = %v", got[1])
	}
	if got[2][1] != "Unpriced" {
		t.Errorf("second row = %v", got[2])
	}
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		t.Error("default sheet should be removed")
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", `"entry_fees_snapshot"`, false},
		{"fees", `"fees"`, false},
		{"analytics.fees", `"analytics"."fees"`, false},
		{`we"ird`, `"we""ird"`, false},
		{"a.b.c", "", true},
		{"a.", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, err := Identifier(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := id.Sanitize(); got != tt.want {
				t.Errorf("Sanitize() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCreateTableSQLCoversColumns(t *testing.T) {
	id, _ := Identifier("")
	ddl := CreateTableSQL(id)
	for _, c := range Columns {
		if !strings.Contains(ddl, "\t"+c+" ") {
			t.Errorf("DDL missing column %s", c)
		}
	}
}
