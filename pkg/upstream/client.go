// Package upstream implements the authenticated HTTP gateway to the
// temporary email provider. It translates transport and HTTP failures into
// a small typed error set; retry policy belongs to callers.
package upstream

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

// DefaultTimeout bounds each individual provider request.
const DefaultTimeout = 20 * time.Second

// httpClient allows http.Client to be mocked for tests.
type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client accesses the provider REST API.
type Client struct {
	baseURL string
	apiKey  string
	client  httpClient
}

// Option configures the upstream client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client = &http.Client{Timeout: d}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc httpClient) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// New creates a provider client for the given base URL and API key.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	if hc, ok := c.client.(*http.Client); ok {
		hc.CloseIdleConnections()
	}
}

// do performs a single authenticated request, decoding a JSON response into
// result when it is non-nil. HTTP 204 yields an empty result.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	reqURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("%s for %q: %w", method, reqURL, err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{URL: reqURL, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if resp.StatusCode == http.StatusNoContent || result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response from %q: %w", reqURL, err)
	}
	return nil
}

// Mailbox is a provider-side folder attached to an account.
type Mailbox struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// AccountResult holds the provider's view of a newly created account.
type AccountResult struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Mailboxes []Mailbox `json:"mailboxes"`
}

// CreateAccount registers a new account address with the provider.
func (c *Client) CreateAccount(ctx context.Context, address, password string) (*AccountResult, error) {
	payload := struct {
		Address  string `json:"address"`
		Password string `json:"password"`
	}{address, password}
	result := &AccountResult{}
	if err := c.do(ctx, http.MethodPost, "/accounts", payload, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListMessages returns the messages in a mailbox. The provider lists newest
// first; ordering is its contract and is not re-derived here. Message content
// is passed through untouched.
func (c *Client) ListMessages(ctx context.Context, accountID, mailboxID string) ([]json.RawMessage, error) {
	path := fmt.Sprintf("/accounts/%s/mailboxes/%s/messages",
		url.PathEscape(accountID), url.PathEscape(mailboxID))
	var messages []json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteAccount removes an account from the provider.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	return c.do(ctx, http.MethodDelete, "/accounts/"+url.PathEscape(accountID), nil, nil)
}
