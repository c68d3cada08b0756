// Package client provides a basic REST client for the inboxproxy API.
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/inboxproxy/inboxproxy/pkg/rest/model"
)

// Client accesses the inboxproxy REST API.
type Client struct {
	restClient
}

// New creates an API client given the base URL of an inboxproxy server, ex:
// "http://localhost:8000".
func New(baseURL string, opts ...Option) (*Client, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		restClient{
			client: &http.Client{
				// wait_for_message holds the connection for its poll timeout.
				Timeout: 5 * time.Minute,
			},
			baseURL: parsedURL,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Option is a function to modify client configuration.
type Option func(*Client)

// WithHTTPClient replaces the client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// Status fetches the service health payload.
func (c *Client) Status(ctx context.Context) (*model.JSONStatus, error) {
	status := &model.JSONStatus{}
	if err := c.doJSON(ctx, "GET", "/", nil, status); err != nil {
		return nil, err
	}
	return status, nil
}

// CreateAccount provisions a new temporary mailbox and returns its
// identifiers.
func (c *Client) CreateAccount(ctx context.Context) (*model.JSONAccount, error) {
	account := &model.JSONAccount{}
	if err := c.doJSON(ctx, "POST", "/api/create_account", nil, account); err != nil {
		return nil, err
	}
	return account, nil
}

// WaitForMessage blocks until the mailbox receives a message or the server's
// poll deadline passes. Timeout and interval are in seconds; zero selects the
// server defaults.
func (c *Client) WaitForMessage(ctx context.Context, accountID, mailboxID string, timeout, interval int) (json.RawMessage, error) {
	body, err := json.Marshal(&model.JSONMessageRequest{
		AccountID: accountID,
		MailboxID: mailboxID,
		Timeout:   timeout,
		Interval:  interval,
	})
	if err != nil {
		return nil, err
	}
	var msg json.RawMessage
	if err := c.doJSON(ctx, "POST", "/api/wait_for_message", body, &msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// DeleteAccount removes a previously created account.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) (*model.JSONResult, error) {
	result := &model.JSONResult{}
	if err := c.doJSON(ctx, "DELETE", "/api/delete_account/"+url.PathEscape(accountID), nil, result); err != nil {
		return nil, err
	}
	return result, nil
}
