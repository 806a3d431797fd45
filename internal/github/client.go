// Package github fetches a user's public repositories from the GitHub API.
// The response body is passed through to API clients untouched.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/observability"
)

const defaultBaseURL = "https://api.github.com"

// ErrNoProfile indicates GitHub answered with a non-200 status, typically
// because the username does not exist.
var ErrNoProfile = fmt.Errorf("no github profile found")

// Client calls the GitHub REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithToken authenticates outbound requests, raising the rate limit.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// NewClient creates a GitHub client with a 10 second request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Repos returns the raw JSON listing of a user's five most recent public
// repositories. A non-200 answer from GitHub is reported as ErrNoProfile.
func (c *Client) Repos(ctx context.Context, username string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.GithubProxyRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observability.GithubProxyRequests.WithLabelValues("not_found").Inc()
		return nil, ErrNoProfile
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.GithubProxyRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	observability.GithubProxyRequests.WithLabelValues("ok").Inc()
	return body, nil
}
