// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package airtable

import (
	"fmt"
	"net/url"
	"strconv"
)

// Params maps Airtable query-parameter names to values. Keys are used
// verbatim (including bracketed forms such as "sort[0][field]"). Values may
// be strings, booleans, integers or floats; nil values are omitted.
type Params map[string]any

// Values lowers p into url.Values, skipping nil entries.
func (p Params) Values() (url.Values, error) {
	out := url.Values{}
	for k, v := range p {
		if v == nil {
			continue
		}
		s, err := formatParam(v)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", k, err)
		}
		out.Set(k, s)
	}
	return out, nil
}

func formatParam(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort orders results by one field.
type Sort struct {
	Field     string
	Direction Direction
}

// Query is the typed form of a list-records request. Zero-valued members
// are left out of the request.
type Query struct {
	View     string
	Filter   string
	Sort     []Sort
	PageSize int
	Offset   string
}

// Params lowers q into request parameters.
func (q Query) Params() Params {
	p := Params{
		"view":            nilIfEmpty(q.View),
		"filterByFormula": nilIfEmpty(q.Filter),
		"offset":          nilIfEmpty(q.Offset),
		"pageSize":        nil,
	}
	if q.PageSize > 0 {
		p["pageSize"] = q.PageSize
	}
	for i, s := range q.Sort {
		p[fmt.Sprintf("sort[%d][field]", i)] = s.Field
		p[fmt.Sprintf("sort[%d][direction]", i)] = nilIfEmpty(string(s.Direction))
	}
	return p
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
