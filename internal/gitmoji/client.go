package gitmoji

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultURL is the upstream gitmoji catalog.
	DefaultURL = "https://raw.githubusercontent.com/carloscuesta/gitmoji/master/src/data/gitmojis.json"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	// UserAgent is the user agent string sent with catalog requests.
	UserAgent = "go-gitmoji/dev (https://github.com/steviee/go-gitmoji)"

	// maxErrorBody caps how much of an error response ends up in APIError.
	maxErrorBody = 512
)

// Client downloads the gitmoji catalog.
// It makes exactly one request per Fetch; there is no retry.
type Client struct {
	url       string
	userAgent string
	http      *resty.Client
}

// Config holds client configuration.
type Config struct {
	URL       string
	Timeout   time.Duration
	UserAgent string
}

// NewClient creates a new catalog client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	if config.URL == "" {
		config.URL = DefaultURL
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	if config.UserAgent == "" {
		config.UserAgent = UserAgent
	}

	slog.Debug("creating gitmoji client",
		"url", config.URL,
		"timeout", config.Timeout)

	return &Client{
		url:       config.URL,
		userAgent: config.UserAgent,
		http: resty.New().
			SetTimeout(config.Timeout).
			SetHeader("User-Agent", config.UserAgent).
			SetHeader("Accept", "application/json"),
	}
}

// URL returns the catalog URL this client fetches.
func (c *Client) URL() string {
	return c.url
}

// Fetch downloads and parses the catalog.
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	slog.Debug("gitmoji catalog request", "url", c.url)

	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		body := resp.String()
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, NewAPIError(resp.StatusCode(), body)
	}

	raw := resp.Body()
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	slog.Debug("gitmoji catalog fetched",
		"url", c.url,
		"records", len(doc.Gitmojis),
		"bytes", len(raw))

	return &Snapshot{Raw: raw, Document: doc}, nil
}
