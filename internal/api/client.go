// Package api implements the HTTP client for the answer service.
package api

import (
	"net/http"
	"time"

	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/config"
)

// Client talks to the answer service. The base URL is resolved once at
// construction and never re-read afterwards.
type Client struct {
	httpClient *http.Client
	baseURL    string
	askPath    string
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAskPath overrides the backend path questions are posted to
func WithAskPath(path string) ClientOption {
	return func(c *Client) {
		if path != "" {
			c.askPath = path
		}
	}
}

// WithTimeout sets a request timeout on the underlying HTTP client.
// Zero means no timeout; a hung request then blocks until the server
// gives up, which is the accepted behavior for this client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a new Client for the given endpoint configuration
func NewClient(endpoint config.Endpoint, opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{},
		baseURL:    endpoint.BaseURL(),
		askPath:    config.DefaultAskPath,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the resolved base URL (possibly empty)
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AskURL returns the full address questions are posted to
func (c *Client) AskURL() string {
	return c.baseURL + c.askPath
}
