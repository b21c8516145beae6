// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package site

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/witoldexec80th12/discovertrailraces/internal/config"
	"github.com/witoldexec80th12/discovertrailraces/internal/entryfees"
	"github.com/witoldexec80th12/discovertrailraces/internal/logging"
)

// handlerFunc is an http.HandlerFunc that may fail. Errors reach the
// generic 500 response in handle.
type handlerFunc func(http.ResponseWriter, *http.Request) error

func (s *Server) handle(h handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.log.Error("request failed", s.log.Args(
				"method", r.Method,
				"path", r.URL.Path,
				"error", logging.Mask(err.Error()),
			))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}

type rangeLink struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

type costRow struct {
	entryfees.Entry
	BlurbHTML template.HTML
}

type costPage struct {
	meta
	Rows   []costRow
	Failed bool
	Ranges []rangeLink
}

func rangeLinks(active string) []rangeLink {
	links := []rangeLink{{Label: "All", Href: "/cost", Active: active == ""}}
	for _, k := range config.ExploreKeys {
		links = append(links, rangeLink{
			Key:    k,
			Label:  "€" + strings.ReplaceAll(k, "-", "–"),
			Href:   "/cost?range=" + url.QueryEscape(k),
			Active: k == active,
		})
	}
	return links
}

// handleCost renders the cost index. A failed fetch is shown as an error
// panel instead of failing the request.
func (s *Server) handleCost(w http.ResponseWriter, r *http.Request) error {
	explore := r.URL.Query().Get("range")
	if _, ok := config.ExploreViews[explore]; !ok {
		explore = ""
	}
	page := costPage{
		meta: meta{
			Title:       "Cost Per KM | " + entryfees.SiteName,
			Description: "Cost Per KM is our internal tool comparing prices across trail races per km run. Applied to Europe's top independent trail races.",
		},
		Ranges: rangeLinks(explore),
	}

	entries, err := s.svc.Index(r.Context(), explore)
	if err != nil {
		s.log.Error("cost index fetch failed", s.log.Args("error", logging.Mask(err.Error())))
		page.Failed = true
	}
	for _, e := range entries {
		page.Rows = append(page.Rows, costRow{Entry: e, BlurbHTML: s.renderMarkdown(e.Blurb)})
	}
	return s.render(w, http.StatusOK, "cost", page)
}

type racePage struct {
	meta
	Race      entryfees.Detail
	BlurbHTML template.HTML
}

// handleRace renders one race. Fetch errors are returned to handle.
func (s *Server) handleRace(w http.ResponseWriter, r *http.Request) error {
	raceSlug := r.PathValue("slug")
	if !entryfees.Routable(raceSlug) {
		return s.notFound(w)
	}
	d, ok, err := s.svc.Race(r.Context(), raceSlug)
	if err != nil {
		return err
	}
	if !ok {
		return s.notFound(w)
	}
	return s.render(w, http.StatusOK, "race", racePage{
		meta:      meta{Title: d.Title, Description: d.Description},
		Race:      d,
		BlurbHTML: s.renderMarkdown(d.Blurb),
	})
}

func (s *Server) notFound(w http.ResponseWriter) error {
	return s.render(w, http.StatusNotFound, "notfound", meta{
		Title:       "Not found | " + entryfees.SiteName,
		Description: "This page could not be found.",
	})
}

// handleDebug returns the raw Airtable response of the diagnostic query.
// The status is always 200; the upstream status is in the body.
func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) error {
	res, err := s.prober.Probe(r.Context(), config.Tables.EntryFees, entryfees.DebugQuery().Params())
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	return json.NewEncoder(w).Encode(res)
}
