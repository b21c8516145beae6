// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package export snapshots the public entry fees into an XLSX workbook or a
// PostgreSQL table for offline analysis. Unlike page renders, a snapshot
// follows pagination to the end of the view.
package export

import (
	"context"
	"time"

	"github.com/witoldexec80th12/discovertrailraces/internal/airtable"
	"github.com/witoldexec80th12/discovertrailraces/internal/config"
	"github.com/witoldexec80th12/discovertrailraces/internal/format"
)

// MaxPages bounds a snapshot at 100 pages of 100 rows.
const MaxPages = 100

// PageLister fetches every page of a query.
type PageLister interface {
	ListAll(ctx context.Context, table string, q airtable.Query, maxPages int) ([]airtable.Record, error)
}

// Sink receives a snapshot.
type Sink interface {
	Write(ctx context.Context, rows []Row) error
}

// Row is one entry fee flattened for tabular output. Pointer members are
// nil when the cell is unset or not a usable value.
type Row struct {
	RecordID    string
	Race        string
	Slug        string
	Country     string
	Region      string
	DistanceKm  *float64
	Currency    string
	Fee         *float64
	EurPerKm    *float64
	Band        string
	Bucket      string
	StartDate   *time.Time
	IsPrimary   bool
	LastChecked string
}

// Columns are the output column names, in Row field order.
var Columns = []string{
	"record_id", "race", "slug", "country", "region", "distance_km",
	"currency", "fee", "eur_per_km", "band", "bucket", "start_date",
	"is_primary", "last_checked",
}

// Values returns r in Columns order with nil for unset cells.
func (r Row) Values() []any {
	return []any{
		r.RecordID, r.Race, r.Slug, r.Country, r.Region, floatOrNil(r.DistanceKm),
		r.Currency, floatOrNil(r.Fee), floatOrNil(r.EurPerKm), r.Band, r.Bucket, timeOrNil(r.StartDate),
		r.IsPrimary, r.LastChecked,
	}
}

// Query is the snapshot query: the public view sorted by €/km, in pages of
// 100 rows.
func Query() airtable.Query {
	return airtable.Query{
		View:     config.Views.EntryFeesPublic,
		Sort:     []airtable.Sort{{Field: config.FieldEurPerKm, Direction: airtable.Asc}},
		PageSize: 100,
	}
}

// Snapshot reads the whole public view.
func Snapshot(ctx context.Context, client PageLister) ([]Row, error) {
	recs, err := client.ListAll(ctx, config.Tables.EntryFees, Query(), MaxPages)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, NewRow(r))
	}
	return rows, nil
}

// NewRow flattens a record.
func NewRow(r airtable.Record) Row {
	band := format.AsText(r.Value(config.FieldPriceBand))
	row := Row{
		RecordID:    r.ID,
		Race:        format.AsText(r.Value(config.FieldID)),
		Country:     format.AsText(r.Value(config.FieldCountry)),
		Region:      format.AsText(r.Value(config.FieldRegion)),
		Currency:    r.Text(config.FieldCurrency),
		Band:        band,
		Bucket:      string(format.ClassifyBand(band)),
		IsPrimary:   r.Bool(config.FieldIsPrimary),
		LastChecked: format.AsText(r.Value(config.FieldLastChecked)),
	}
	if row.Race == "" {
		row.Race = format.AsText(r.Value(config.FieldRaceEvent))
	}
	if slugs := r.Strings(config.FieldRaceSlug); len(slugs) > 0 {
		row.Slug = slugs[0]
	}
	row.DistanceKm = positive(r.Number(config.FieldDistanceKm))
	row.Fee = positive(r.Number(config.FieldFeeUsed))
	row.EurPerKm = positive(r.Number(config.FieldEurPerKm))
	if t, ok := format.ParseDate(r.Text(config.FieldStartDate)); ok {
		row.StartDate = &t
	}
	return row
}

func positive(v float64, ok bool) *float64 {
	v, ok = format.Positive(v, ok)
	if !ok {
		return nil
	}
	return &v
}

func floatOrNil(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func timeOrNil(p *time.Time) any {
	if p == nil {
		return nil
	}
	return *p
}
