// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package airtable

import (
	"encoding/json"
	"strings"
)

// Record is one row returned by the list-records endpoint. Fields are
// sparse: a missing key means the cell is not set.
type Record struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"createdTime,omitempty"`
	Fields      map[string]any `json:"fields"`
}

// Thumbnail is one pre-rendered size of an image attachment.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Attachment describes a file stored in an attachment field.
type Attachment struct {
	ID         string               `json:"id"`
	URL        string               `json:"url"`
	Filename   string               `json:"filename"`
	Width      int                  `json:"width,omitempty"`
	Height     int                  `json:"height,omitempty"`
	Thumbnails map[string]Thumbnail `json:"thumbnails,omitempty"`
}

// Has reports whether the field is present.
func (r Record) Has(name string) bool {
	_, ok := r.Fields[name]
	return ok
}

// Value returns the raw field value, or nil.
func (r Record) Value(name string) any {
	return r.Fields[name]
}

// Text returns a string cell, or the non-empty strings of a list cell
// joined with ", ". Other values yield "".
func (r Record) Text(name string) string {
	switch v := r.Fields[name].(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// Number returns the field when it holds a JSON number.
func (r Record) Number(name string) (float64, bool) {
	v, ok := r.Fields[name].(float64)
	return v, ok
}

// Bool returns true only for a boolean true cell.
func (r Record) Bool(name string) bool {
	v, _ := r.Fields[name].(bool)
	return v
}

// Strings returns a text or lookup field as a list. A single string becomes
// a one-element list; non-string elements are skipped.
func (r Record) Strings(name string) []string {
	switch v := r.Fields[name].(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Attachments decodes an attachment (or attachment lookup) field.
func (r Record) Attachments(name string) []Attachment {
	v, ok := r.Fields[name].([]any)
	if !ok || len(v) == 0 {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out []Attachment
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}
