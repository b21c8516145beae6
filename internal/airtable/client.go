// Package airtable is a read-only client for the Airtable REST API's
// list-records endpoint. Each call issues exactly one GET and maps the
// response onto records or a typed error; there are no retries and nothing
// is cached.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is Airtable's public API endpoint.
const DefaultBaseURL = "https://api.airtable.com"

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 16 << 20

// Options configures a Client.
type Options struct {
	// BaseURL is the API origin, DefaultBaseURL when empty.
	BaseURL string
	// Token is the personal access token sent as a bearer credential.
	Token string
	// BaseID identifies the Airtable base (appXXXXXXXXXXXXXX).
	BaseID string
	// Timeout bounds each request. Zero leaves it to the caller's context.
	Timeout time.Duration
	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
	// UserAgent is sent with every request when set.
	UserAgent string
}

// Client lists records from tables of one Airtable base.
type Client struct {
	baseURL   string
	token     string
	baseID    string
	userAgent string
	client    *http.Client
}

// New creates a Client. It does not contact Airtable.
func New(opts Options) *Client {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		baseURL:   base,
		token:     opts.Token,
		baseID:    opts.BaseID,
		userAgent: opts.UserAgent,
		client:    hc,
	}
}

// Page is one page of records plus the cursor for the next one.
type Page struct {
	Records []Record
	// Offset is empty on the last page.
	Offset string
}

// List fetches a single page of records from table. The offset cursor in
// the response is ignored; callers that need every row use ListAll.
func (c *Client) List(ctx context.Context, table string, params Params) ([]Record, error) {
	page, err := c.ListPage(ctx, table, params)
	if err != nil {
		return nil, err
	}
	return page.Records, nil
}

// ListPage fetches a single page and also returns its offset cursor.
func (c *Client) ListPage(ctx context.Context, table string, params Params) (Page, error) {
	resp, err := c.get(ctx, table, params)
	if err != nil {
		return Page{}, err
	}
	return decodePage(resp.status, resp.body)
}

// ListAll follows offset cursors until the table is exhausted or maxPages
// pages have been read (maxPages <= 0 means 100).
func (c *Client) ListAll(ctx context.Context, table string, q Query, maxPages int) ([]Record, error) {
	if maxPages <= 0 {
		maxPages = 100
	}
	var all []Record
	for i := 0; i < maxPages; i++ {
		page, err := c.ListPage(ctx, table, q.Params())
		if err != nil {
			return nil, err
		}
		all = append(all, page.Records...)
		if page.Offset == "" {
			return all, nil
		}
		q.Offset = page.Offset
	}
	return all, fmt.Errorf("airtable: stopped after %d pages of %q", maxPages, table)
}

// ProbeResult is the unprocessed outcome of a diagnostic request.
type ProbeResult struct {
	OK     bool   `json:"ok"`
	Status int    `json:"status"`
	URL    string `json:"url"`
	Data   any    `json:"data"`
}

// Probe performs a list request and returns the status and decoded body
// as-is. Only transport failures are reported as errors.
func (c *Client) Probe(ctx context.Context, table string, params Params) (ProbeResult, error) {
	resp, err := c.get(ctx, table, params)
	if err != nil {
		return ProbeResult{}, err
	}
	var data any
	if err := json.Unmarshal(resp.body, &data); err != nil || data == nil {
		data = map[string]any{}
	}
	return ProbeResult{
		OK:     resp.status >= 200 && resp.status < 300,
		Status: resp.status,
		URL:    resp.url,
		Data:   data,
	}, nil
}

// URL returns the request URL for table and params without sending anything.
func (c *Client) URL(table string, params Params) (string, error) {
	values, err := params.Values()
	if err != nil {
		return "", err
	}
	u := c.baseURL + "/v0/" + url.PathEscape(c.baseID) + "/" + url.PathEscape(table)
	if len(values) > 0 {
		u += "?" + values.Encode()
	}
	return u, nil
}

type rawResponse struct {
	status int
	body   []byte
	url    string
}

func (c *Client) get(ctx context.Context, table string, params Params) (rawResponse, error) {
	u, err := c.URL(table, params)
	if err != nil {
		return rawResponse{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return rawResponse{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return rawResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return rawResponse{}, fmt.Errorf("read airtable response: %w", err)
	}
	return rawResponse{status: resp.StatusCode, body: body, url: u}, nil
}

// decodePage applies the response contract: status, embedded error, then
// the records array.
func decodePage(status int, body []byte) (Page, error) {
	// Be liberal in what we accept: an unparseable body is an empty object.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		raw = map[string]json.RawMessage{}
	}

	errType, errMsg, hasErr := embeddedError(raw["error"])

	if status < 200 || status > 299 {
		if errType == "" {
			errType = "HTTP_ERROR"
		}
		if errMsg == "" {
			errMsg = strings.TrimSpace(string(body))
		}
		if errMsg == "" {
			errMsg = http.StatusText(status)
		}
		return Page{}, &APIError{Status: status, Type: errType, Message: errMsg}
	}

	if hasErr {
		if errType == "" {
			errType = "UNKNOWN_ERROR"
		}
		return Page{}, &APIError{Status: status, Type: errType, Message: errMsg}
	}

	records := bytes.TrimSpace(raw["records"])
	if len(records) == 0 || records[0] != '[' {
		return Page{}, &MalformedResponseError{Reason: "missing records array"}
	}
	out := make([]Record, 0)
	if err := json.Unmarshal(records, &out); err != nil {
		return Page{}, &MalformedResponseError{Reason: fmt.Sprintf("decode records: %v", err)}
	}

	var offset string
	if v, ok := raw["offset"]; ok {
		_ = json.Unmarshal(v, &offset)
	}
	return Page{Records: out, Offset: offset}, nil
}

// embeddedError reads the "error" member, which Airtable sends either as an
// object {type, message} or as a bare string such as "NOT_FOUND". present
// follows JavaScript truthiness so null, false, "" and 0 do not count.
func embeddedError(v json.RawMessage) (errType, msg string, present bool) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return "", "", false
	}
	var decoded any
	if err := json.Unmarshal(v, &decoded); err != nil {
		return "", "", false
	}
	switch e := decoded.(type) {
	case nil:
		return "", "", false
	case bool:
		if !e {
			return "", "", false
		}
		return "", string(v), true
	case float64:
		if e == 0 {
			return "", "", false
		}
		return "", string(v), true
	case string:
		if e == "" {
			return "", "", false
		}
		return e, e, true
	case map[string]any:
		errType, _ = e["type"].(string)
		msg, _ = e["message"].(string)
		if msg == "" {
			msg = string(v)
		}
		return errType, msg, true
	case []any:
		return "", string(v), true
	}
	return "", "", false
}
