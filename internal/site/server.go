// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package site serves the public website: the cost index, race pages and
// the operator diagnostic endpoint.
package site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/pterm/pterm"
	"github.com/yuin/goldmark"

	"github.com/witoldexec80th12/discovertrailraces/internal/airtable"
	"github.com/witoldexec80th12/discovertrailraces/internal/entryfees"
	"github.com/witoldexec80th12/discovertrailraces/internal/logging"
)

// Prober performs the raw diagnostic fetch.
type Prober interface {
	Probe(ctx context.Context, table string, params airtable.Params) (airtable.ProbeResult, error)
}

// Options configures a Server.
type Options struct {
	Service *entryfees.Service
	// Prober backs /api/debug-entry-fees; nil disables the route.
	Prober Prober
	Logger *pterm.Logger
}

// Server renders pages from entry-fee data. It keeps no per-request state.
type Server struct {
	svc    *entryfees.Service
	prober Prober
	log    *pterm.Logger
	md     goldmark.Markdown
	tmpl   map[string]*template.Template
}

// New parses the embedded templates and returns a Server.
func New(opts Options) (*Server, error) {
	if opts.Service == nil {
		return nil, errors.New("site: entry fee service is required")
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("site: parse templates: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Server{
		svc:    opts.Service,
		prober: opts.Prober,
		log:    log,
		md:     newMarkdown(),
		tmpl:   tmpl,
	}, nil
}

// Handler returns the routed, logged handler tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/cost", http.StatusTemporaryRedirect)
	})
	mux.Handle("GET /cost", s.handle(s.handleCost))
	mux.Handle("GET /races/{slug}", s.handle(s.handleRace))
	if s.prober != nil {
		mux.Handle("GET /api/debug-entry-fees", s.handle(s.handleDebug))
	}
	mux.Handle("GET /static/", staticHandler())
	mux.Handle("/", s.handle(func(w http.ResponseWriter, r *http.Request) error {
		return s.notFound(w)
	}))
	return s.logRequests(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", s.log.Args("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
