package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/api/community"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/clients/github"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/logging"
)

type snapshotBuilderStub struct {
	snapshot *community.Snapshot
	err      error
	calls    int
}

func (s *snapshotBuilderStub) Snapshot(ctx context.Context) (*community.Snapshot, error) {
	s.calls++
	return s.snapshot, s.err
}

type communityHarness struct {
	router  *gin.Engine
	builder *snapshotBuilderStub
}

func setupCommunityHandler(builder *snapshotBuilderStub) *communityHarness {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var sb SnapshotBuilder
	if builder != nil {
		sb = builder
	}
	handler := NewCommunityHandler(sb, logging.NewLogger(), nil)
	router.GET("/api/community", handler.Handle)
	return &communityHarness{router: router, builder: builder}
}

func TestCommunityHandlerReturnsSnapshot(t *testing.T) {
	builder := &snapshotBuilderStub{snapshot: &community.Snapshot{
		Issues: []community.Issue{{ID: 1, Title: "First issue", State: "open"}},
		Stats:  community.Stats{ContributorCount: 2, OpenIssueCount: 5},
		Contributors: []community.Contributor{
			{Handle: "dev0", ContributionCount: 10},
			{Handle: "dev1", ContributionCount: 4},
		},
	}}
	harness := setupCommunityHandler(builder)

	req := httptest.NewRequest(http.MethodGet, "/api/community", nil)
	resp := httptest.NewRecorder()
	harness.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	stats, ok := body["stats"].(map[string]interface{})
	if !ok {
		t.Fatal("expected stats object in response")
	}
	if stats["contributorCount"] != float64(2) {
		t.Errorf("expected contributorCount 2, got %v", stats["contributorCount"])
	}
	if stats["chatMembers"] != float64(0) {
		t.Errorf("expected chatMembers 0, got %v", stats["chatMembers"])
	}
}

func TestCommunityHandlerWithoutBuilderFailsWithoutUpstreamCalls(t *testing.T) {
	harness := setupCommunityHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/community", nil)
	resp := httptest.NewRecorder()
	harness.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["code"] != "NOT_CONFIGURED" {
		t.Errorf("expected NOT_CONFIGURED code, got %v", body["code"])
	}
}

func TestCommunityHandlerUpstreamAPIError(t *testing.T) {
	builder := &snapshotBuilderStub{
		err: &github.APIError{StatusCode: http.StatusForbidden, Operation: "issues"},
	}
	harness := setupCommunityHandler(builder)

	req := httptest.NewRequest(http.MethodGet, "/api/community", nil)
	resp := httptest.NewRecorder()
	harness.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	details, ok := body["details"].(map[string]interface{})
	if !ok {
		t.Fatal("expected details in upstream error response")
	}
	if details["upstream_status"] != float64(http.StatusForbidden) {
		t.Errorf("expected upstream_status 403, got %v", details["upstream_status"])
	}
}

func TestCommunityHandlerUpstreamTimeout(t *testing.T) {
	builder := &snapshotBuilderStub{err: context.DeadlineExceeded}
	harness := setupCommunityHandler(builder)

	req := httptest.NewRequest(http.MethodGet, "/api/community", nil)
	resp := httptest.NewRecorder()
	harness.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", resp.Code)
	}
}

func TestCommunityHandlerGenericUpstreamError(t *testing.T) {
	builder := &snapshotBuilderStub{err: errors.New("connection refused")}
	harness := setupCommunityHandler(builder)

	req := httptest.NewRequest(http.MethodGet, "/api/community", nil)
	resp := httptest.NewRecorder()
	harness.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
}
