package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v57/github"
)

// newTestClient points a client at a stub server, bypassing oauth2.
func newTestClient(t *testing.T, srvURL string) *Client {
	t.Helper()
	ghc := gh.NewClient(&http.Client{})
	u, err := url.Parse(srvURL + "/")
	if err != nil {
		t.Fatalf("failed to parse server URL: %v", err)
	}
	ghc.BaseURL = u
	ghc.UploadURL = u
	return &Client{gh: ghc, owner: "gitswhy", repo: "gitswhyos"}
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient("", "gitswhy", "gitswhyos")
	if !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient("token", "gitswhy", "gitswhyos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Owner() != "gitswhy" {
		t.Fatalf("expected owner gitswhy, got %s", c.Owner())
	}
	if c.Repo() != "gitswhyos" {
		t.Fatalf("expected repo gitswhyos, got %s", c.Repo())
	}
}

func TestListOpenIssues(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/gitswhy/gitswhyos/issues" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 101, "title": "First", "state": "open", "comments": 3},
			{"id": 102, "title": "Second", "state": "open", "comments": 0}
		]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	issues, err := c.ListOpenIssues(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].GetID() != 101 {
		t.Fatalf("expected issue 101 first, got %d", issues[0].GetID())
	}
	if gotQuery.Get("state") != "open" {
		t.Fatalf("expected state=open, got %q", gotQuery.Get("state"))
	}
	if gotQuery.Get("sort") != "created" {
		t.Fatalf("expected sort=created, got %q", gotQuery.Get("sort"))
	}
	if gotQuery.Get("direction") != "desc" {
		t.Fatalf("expected direction=desc, got %q", gotQuery.Get("direction"))
	}
	if gotQuery.Get("per_page") != "10" {
		t.Fatalf("expected per_page=10, got %q", gotQuery.Get("per_page"))
	}
}

func TestListOpenIssuesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ListOpenIssues(context.Background(), 10)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", apiErr.StatusCode)
	}
	if apiErr.Operation != "issues" {
		t.Fatalf("expected operation issues, got %s", apiErr.Operation)
	}
}

func TestListContributors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/gitswhy/gitswhyos/contributors" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("per_page"); got != "10" {
			t.Errorf("expected per_page=10, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"login": "alice", "contributions": 40},
			{"login": "bob", "contributions": 12}
		]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	contributors, err := c.ListContributors(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contributors) != 2 {
		t.Fatalf("expected 2 contributors, got %d", len(contributors))
	}
	if contributors[0].GetLogin() != "alice" {
		t.Fatalf("expected alice first, got %s", contributors[0].GetLogin())
	}
}

func TestGetRepository(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/gitswhy/gitswhyos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "open_issues_count": 42}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	repo, err := c.GetRepository(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.GetOpenIssuesCount() != 42 {
		t.Fatalf("expected 42 open issues, got %d", repo.GetOpenIssuesCount())
	}
}
