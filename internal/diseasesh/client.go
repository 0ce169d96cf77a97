package diseasesh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Fetcher defines the read-only operations the dashboard needs.
// This interface is implemented by *Client and can be replaced in tests.
type Fetcher interface {
	FetchGlobal(ctx context.Context) (Summary, error)
	FetchCountries(ctx context.Context) ([]Country, error)
	FetchCountry(ctx context.Context, code string) (Country, error)
	FetchHistory(ctx context.Context, days int) (History, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Operation names used in errors, logs and metric labels.
const (
	OpGlobal    = "global"
	OpCountries = "countries"
	OpCountry   = "country"
	OpHistory   = "history"
)

const (
	// DefaultBaseURL is the public disease.sh host.
	DefaultBaseURL = "https://disease.sh"
	// DefaultTimeout bounds every request; the API is otherwise free to hang.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "covidboard/0.1"
	maxBodyBytes     = 16 << 20
	apiPrefix        = "/v3/covid-19"
)

// Client talks to the disease.sh HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithTransport swaps the HTTP transport, mainly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.Transport = rt
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for the given base URL (scheme and host only).
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized API base.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchGlobal retrieves the worldwide summary.
func (c *Client) FetchGlobal(ctx context.Context) (Summary, error) {
	if c == nil {
		return Summary{}, fmt.Errorf("client is nil")
	}
	var payload Summary
	rel := &url.URL{Path: apiPrefix + "/all"}
	if err := c.get(ctx, OpGlobal, rel, requireFields("cases"), &payload); err != nil {
		return Summary{}, err
	}
	return payload, nil
}

// FetchCountries retrieves every country summary in API order.
func (c *Client) FetchCountries(ctx context.Context) ([]Country, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Country
	rel := &url.URL{Path: apiPrefix + "/countries"}
	if err := c.get(ctx, OpCountries, rel, requireArray, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchCountry retrieves the summary for one country by ISO2 code or name.
func (c *Client) FetchCountry(ctx context.Context, code string) (Country, error) {
	if c == nil {
		return Country{}, fmt.Errorf("client is nil")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return Country{}, fmt.Errorf("country code required")
	}
	var payload Country
	rel := &url.URL{Path: apiPrefix + "/countries/" + code}
	if err := c.get(ctx, OpCountry, rel, requireFields("cases", "countryInfo"), &payload); err != nil {
		return Country{}, err
	}
	return payload, nil
}

// FetchHistory retrieves worldwide cumulative series for the last days days.
// A non-positive value requests the full history.
func (c *Client) FetchHistory(ctx context.Context, days int) (History, error) {
	if c == nil {
		return History{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if days > 0 {
		values.Set("lastdays", strconv.Itoa(days))
	} else {
		values.Set("lastdays", "all")
	}
	rel := &url.URL{Path: apiPrefix + "/historical/all", RawQuery: values.Encode()}
	var payload History
	if err := c.get(ctx, OpHistory, rel, requireFields("cases"), &payload); err != nil {
		return History{}, err
	}
	return payload, nil
}

type shapeCheck func(gjson.Result) error

func requireFields(paths ...string) shapeCheck {
	return func(doc gjson.Result) error {
		if !doc.IsObject() {
			return errors.New("expected a JSON object")
		}
		for _, path := range paths {
			if !doc.Get(path).Exists() {
				return fmt.Errorf("missing field %q", path)
			}
		}
		return nil
	}
}

func requireArray(doc gjson.Result) error {
	if !doc.IsArray() {
		return errors.New("expected a JSON array")
	}
	return nil
}

func (c *Client) get(ctx context.Context, op string, rel *url.URL, check shapeCheck, dest any) (err error) {
	start := time.Now()
	defer func() { observeFetch(op, start, err) }()

	reqURL := c.baseURL.ResolveReference(rel).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, URL: reqURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &NetworkError{
			Op:         op,
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &NetworkError{Op: op, URL: reqURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if !gjson.ValidBytes(body) {
		return &ParseError{Op: op, Err: errors.New("body is not valid JSON")}
	}
	if check != nil {
		if err := check(gjson.ParseBytes(body)); err != nil {
			return &ParseError{Op: op, Err: err}
		}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &ParseError{Op: op, Err: err}
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base url %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
