// Package entryfees reads race entry fees from Airtable and projects them
// into the values rendered by the cost index and the race pages.
package entryfees

import (
	"context"
	"slices"
	"strings"

	"github.com/witoldexec80th12/discovertrailraces/internal/airtable"
	"github.com/witoldexec80th12/discovertrailraces/internal/config"
)

// Page sizes of the two page queries.
const (
	IndexPageSize = 20
	SlugPageSize  = 50
	DebugPageSize = 3
)

// Lister fetches one page of records from a table.
type Lister interface {
	List(ctx context.Context, table string, params airtable.Params) ([]airtable.Record, error)
}

// Service runs the entry-fee queries. It holds no per-request state.
type Service struct {
	client Lister
}

// NewService returns a Service backed by client.
func NewService(client Lister) *Service {
	return &Service{client: client}
}

var byEurPerKm = []airtable.Sort{{Field: config.FieldEurPerKm, Direction: airtable.Asc}}

// IndexQuery returns the cost index query. A known explore range key
// swaps the public view for the matching explore view.
func IndexQuery(explore string) airtable.Query {
	view := config.Views.EntryFeesPublic
	if v, ok := config.ExploreViews[explore]; ok {
		view = v
	}
	return airtable.Query{View: view, Sort: byEurPerKm, PageSize: IndexPageSize}
}

// DebugQuery is the fixed query behind the diagnostic endpoint.
func DebugQuery() airtable.Query {
	return airtable.Query{View: config.Views.Debug, Sort: byEurPerKm, PageSize: DebugPageSize}
}

// SlugFilter builds the filterByFormula expression matching rows whose
// slug list mentions slug.
func SlugFilter(slug string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(slug)
	return `FIND("` + escaped + `", ARRAYJOIN({` + config.FieldRaceSlug + `}))`
}

// SlugQuery returns the race page query for slug.
func SlugQuery(slug string) airtable.Query {
	return airtable.Query{
		View:     config.Views.EntryFeesPublic,
		Filter:   SlugFilter(slug),
		PageSize: SlugPageSize,
	}
}

// Index fetches the first page of the cost index, cheapest per km first.
func (s *Service) Index(ctx context.Context, explore string) ([]Entry, error) {
	recs, err := s.client.List(ctx, config.Tables.EntryFees, IndexQuery(explore).Params())
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, NewEntry(r))
	}
	return entries, nil
}

// ForSlug returns the rows of one race, one per distance. FIND matches
// substrings, so rows are narrowed to those listing slug exactly.
func (s *Service) ForSlug(ctx context.Context, slug string) ([]airtable.Record, error) {
	recs, err := s.client.List(ctx, config.Tables.EntryFees, SlugQuery(slug).Params())
	if err != nil {
		return nil, err
	}
	out := recs[:0:0]
	for _, r := range recs {
		if slices.Contains(r.Strings(config.FieldRaceSlug), slug) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Race returns the detail projection for slug. ok is false when no row
// matches.
func (s *Service) Race(ctx context.Context, slug string) (d Detail, ok bool, err error) {
	rows, err := s.ForSlug(ctx, slug)
	if err != nil {
		return Detail{}, false, err
	}
	row, ok := SelectPrimary(rows)
	if !ok {
		return Detail{}, false, nil
	}
	return NewDetail(row), true, nil
}

// SelectPrimary picks the row flagged as the primary distance, else the
// first row.
func SelectPrimary(rows []airtable.Record) (airtable.Record, bool) {
	for _, r := range rows {
		if r.Bool(config.FieldIsPrimary) {
			return r, true
		}
	}
	if len(rows) == 0 {
		return airtable.Record{}, false
	}
	return rows[0], true
}
