package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StatusFetcher is implemented by *Client and can be faked in tests.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (*Status, error)
}

var _ StatusFetcher = (*Client)(nil)

// Client talks to a running relay.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultRelayBind = "127.0.0.1:8025"
	defaultUserAgent = "reel/0.1"
	requestTimeout   = 5 * time.Second
	submitTimeout    = 30 * time.Second
)

// NewClient builds a Client for a host:port or URL.
func NewClient(relayURL string) (*Client, error) {
	base, err := parseBaseURL(relayURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: submitTimeout},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchStatus retrieves the relay's delivery counters.
func (c *Client) FetchStatus(ctx context.Context) (*Status, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, "/api/status", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("api /api/status returned status %d", resp.StatusCode)
	}
	var payload Status
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &payload, nil
}

// Submit posts a contact form. Rejections come back as a Result with Error
// set together with a non-nil error carrying the status code.
func (c *Client) Submit(ctx context.Context, s Submission) (Result, error) {
	if c == nil {
		return Result{}, fmt.Errorf("client is nil")
	}
	form := url.Values{}
	form.Set(FieldName, s.Name)
	form.Set(FieldEmail, s.Email)
	form.Set(FieldBusinessEmail, s.BusinessEmail)
	form.Set(FieldCompany, s.Company)
	if s.Subject != "" {
		form.Set(FieldSubject, s.Subject)
	}
	form.Set(FieldMessage, s.Message)
	form.Set(FieldHoneypot, s.Honeypot)

	req, err := c.newRequest(ctx, http.MethodPost, "/send_mail", strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Result{}, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 400 {
		return res, fmt.Errorf("relay returned status %d: %s", resp.StatusCode, res.Error)
	}
	return res, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultRelayBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse relay url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
