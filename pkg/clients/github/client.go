// Package github wraps the GitHub REST API for the community aggregator.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go/failsafehttp"
	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/clients"
)

// ErrMissingToken is returned when no API token is configured.
var ErrMissingToken = errors.New("github token not configured")

// APIError carries the upstream status code of a failed GitHub call
type APIError struct {
	StatusCode int
	Operation  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github %s returned status: %d", e.Operation, e.StatusCode)
}

// Client is a GitHub API client bound to a single repository
type Client struct {
	gh    *gh.Client
	owner string
	repo  string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests to point
// at a stub server; the oauth2 transport is skipped in that case).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.gh = gh.NewClient(httpClient)
		}
	}
}

// NewClient creates a GitHub client for the given repository using a
// personal access token. The token is required: aggregation without a
// credential is a configuration error, not a degraded mode.
func NewClient(token, owner, repo string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	retry := clients.NewHTTPRetryPolicy(clients.DefaultHTTPExecutorConfig())
	breaker := clients.NewHTTPCircuitBreaker()
	base := failsafehttp.NewRoundTripper(clients.DefaultTransport(), retry, breaker)

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: ts, Base: base},
		Timeout:   15 * time.Second,
	}

	c := &Client{
		gh:    gh.NewClient(httpClient),
		owner: owner,
		repo:  repo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Owner returns the repository owner this client is bound to
func (c *Client) Owner() string { return c.owner }

// Repo returns the repository name this client is bound to
func (c *Client) Repo() string { return c.repo }

// ListOpenIssues fetches up to limit open issues sorted by creation time
// descending
func (c *Client) ListOpenIssues(ctx context.Context, limit int) ([]*gh.Issue, error) {
	opts := &gh.IssueListByRepoOptions{
		State:     "open",
		Sort:      "created",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: limit,
		},
	}

	issues, resp, err := c.gh.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
	if err != nil {
		return nil, wrapAPIError("issues", resp, err)
	}
	return issues, nil
}

// ListContributors fetches up to limit contributors ordered by contribution
// count descending (upstream ordering)
func (c *Client) ListContributors(ctx context.Context, limit int) ([]*gh.Contributor, error) {
	opts := &gh.ListContributorsOptions{
		ListOptions: gh.ListOptions{
			PerPage: limit,
		},
	}

	contributors, resp, err := c.gh.Repositories.ListContributors(ctx, c.owner, c.repo, opts)
	if err != nil {
		return nil, wrapAPIError("contributors", resp, err)
	}
	return contributors, nil
}

// GetRepository fetches the repository metadata (open issue count)
func (c *Client) GetRepository(ctx context.Context) (*gh.Repository, error) {
	repo, resp, err := c.gh.Repositories.Get(ctx, c.owner, c.repo)
	if err != nil {
		return nil, wrapAPIError("repository", resp, err)
	}
	return repo, nil
}

func wrapAPIError(operation string, resp *gh.Response, err error) error {
	if resp != nil && resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Operation: operation}
	}
	return fmt.Errorf("github %s request failed: %w", operation, err)
}
