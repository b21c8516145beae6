// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package airtable

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL, Token: "patTEST123.secret", BaseID: "appBase"})
}

func TestListSendsRequest(t *testing.T) {
	var gotPath, gotAuth, gotCache string
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		gotCache = r.Header.Get("Cache-Control")
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"records":[{"id":"rec1","fields":{"Race Event":"UTMB"}}]}`))
	})

	recs, err := c.List(context.Background(), "Entry Fees", Params{
		"view":            "entry_fees_public",
		"pageSize":        20,
		"filterByFormula": nil,
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "rec1" {
		t.Fatalf("List() = %+v", recs)
	}
	if gotPath != "/v0/appBase/Entry%20Fees" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer patTEST123.secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotCache != "no-store" {
		t.Errorf("Cache-Control = %q", gotCache)
	}
	if got := gotQuery["pageSize"]; len(got) != 1 || got[0] != "20" {
		t.Errorf("pageSize = %v", got)
	}
	if _, ok := gotQuery["filterByFormula"]; ok {
		t.Error("nil param should be omitted")
	}
}

func TestListResponses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantType   string
		wantMsg    string
		malformed  bool
		wantLen    int
	}{
		{
			name:       "http error with object",
			status:     401,
			body:       `{"error":{"type":"AUTHENTICATION_REQUIRED","message":"Authentication required"}}`,
			wantStatus: 401,
			wantType:   "AUTHENTICATION_REQUIRED",
			wantMsg:    "Authentication required",
		},
		{
			name:       "http error with string",
			status:     404,
			body:       `{"error":"NOT_FOUND"}`,
			wantStatus: 404,
			wantType:   "NOT_FOUND",
			wantMsg:    "NOT_FOUND",
		},
		{
			name:       "http error plain body",
			status:     502,
			body:       "bad gateway\n",
			wantStatus: 502,
			wantType:   "HTTP_ERROR",
			wantMsg:    "bad gateway",
		},
		{
			name:       "http error empty body",
			status:     503,
			wantStatus: 503,
			wantType:   "HTTP_ERROR",
			wantMsg:    "Service Unavailable",
		},
		{
			name:       "embedded error on 200",
			status:     200,
			body:       `{"error":{"type":"INVALID_FILTER_BY_FORMULA","message":"bad formula"}}`,
			wantStatus: 200,
			wantType:   "INVALID_FILTER_BY_FORMULA",
			wantMsg:    "bad formula",
		},
		{
			name:    "null error is ignored",
			status:  200,
			body:    `{"error":null,"records":[]}`,
			wantLen: 0,
		},
		{
			name:      "records missing",
			status:    200,
			body:      `{}`,
			malformed: true,
		},
		{
			name:      "records null",
			status:    200,
			body:      `{"records":null}`,
			malformed: true,
		},
		{
			name:      "records not array",
			status:    200,
			body:      `{"records":{"id":"x"}}`,
			malformed: true,
		},
		{
			name:      "unparseable body",
			status:    200,
			body:      `<html>`,
			malformed: true,
		},
		{
			name:    "two records",
			status:  200,
			body:    `{"records":[{"id":"a","fields":{}},{"id":"b","fields":{}}],"offset":"itr1"}`,
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			recs, err := c.List(context.Background(), "Entry Fees", nil)

			if tt.wantType != "" {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("error = %v, want *APIError", err)
				}
				if apiErr.Status != tt.wantStatus || apiErr.Type != tt.wantType || apiErr.Message != tt.wantMsg {
					t.Errorf("APIError = %+v", apiErr)
				}
				return
			}
			if tt.malformed {
				var mErr *MalformedResponseError
				if !errors.As(err, &mErr) {
					t.Fatalf("error = %v, want *MalformedResponseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if recs == nil {
				t.Fatal("List() returned nil slice")
			}
			if len(recs) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(recs), tt.wantLen)
			}
		})
	}
}

func TestListAllFollowsOffset(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Query().Get("offset") {
		case "":
			_, _ = w.Write([]byte(`{"records":[{"id":"a","fields":{}}],"offset":"next"}`))
		case "next":
			_, _ = w.Write([]byte(`{"records":[{"id":"b","fields":{}}]}`))
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
		}
	})

	recs, err := c.ListAll(context.Background(), "Entry Fees", Query{PageSize: 1}, 0)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if calls != 2 || len(recs) != 2 || recs[1].ID != "b" {
		t.Errorf("calls=%d recs=%+v", calls, recs)
	}
}

func TestListAllPageCap(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"records":[{"id":"a","fields":{}}],"offset":"again"}`))
	})
	if _, err := c.ListAll(context.Background(), "Entry Fees", Query{}, 3); err == nil {
		t.Fatal("expected error when page cap is reached")
	}
}

func TestProbe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"type":"INVALID_PERMISSIONS_OR_MODEL_NOT_FOUND"}}`))
	})
	res, err := c.Probe(context.Background(), "Entry Fees", Params{"pageSize": 3})
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if res.OK || res.Status != http.StatusForbidden {
		t.Errorf("Probe() = %+v", res)
	}
	if !strings.Contains(res.URL, "pageSize=3") {
		t.Errorf("URL = %q", res.URL)
	}
	if strings.Contains(res.URL, "patTEST") {
		t.Error("URL must not contain the token")
	}
	data, ok := res.Data.(map[string]any)
	if !ok || data["error"] == nil {
		t.Errorf("Data = %#v", res.Data)
	}
}

func TestProbeNonJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("oops"))
	})
	res, err := c.Probe(context.Background(), "Entry Fees", nil)
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if !res.OK {
		t.Error("expected OK for 200")
	}
	if m, ok := res.Data.(map[string]any); !ok || len(m) != 0 {
		t.Errorf("Data = %#v, want empty object", res.Data)
	}
}

func TestListTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := New(Options{BaseURL: srv.URL, Token: "t", BaseID: "b"})
	if _, err := c.List(context.Background(), "Entry Fees", nil); err == nil {
		t.Fatal("expected transport error")
	}
}
