package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/logging"
)

type waitlistStoreStub struct {
	created    bool
	addErr     error
	count      int64
	countErr   error
	addCalls   []addCall
	countCalls int
}

type addCall struct {
	email  string
	name   string
	source string
}

func (s *waitlistStoreStub) Add(ctx context.Context, email, name, source string) (bool, error) {
	s.addCalls = append(s.addCalls, addCall{email: email, name: name, source: source})
	return s.created, s.addErr
}

func (s *waitlistStoreStub) Count(ctx context.Context) (int64, error) {
	s.countCalls++
	return s.count, s.countErr
}

func setupWaitlistHandler(store *waitlistStoreStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var ws WaitlistStore
	if store != nil {
		ws = store
	}
	handler := NewWaitlistHandler(ws, logging.NewLogger(), nil)
	router.POST("/api/waitlist", handler.Handle)
	return router
}

func postWaitlist(router *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestWaitlistHandlerSignup(t *testing.T) {
	store := &waitlistStoreStub{created: true, count: 42}
	router := setupWaitlistHandler(store)

	resp := postWaitlist(router, map[string]string{
		"email": "Dev@Example.com",
		"name":  "Dev",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body WaitlistResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !body.Success || body.Position != 42 {
		t.Errorf("expected success with position 42, got %+v", body)
	}

	if len(store.addCalls) != 1 {
		t.Fatalf("expected one store call, got %d", len(store.addCalls))
	}
	if store.addCalls[0].email != "dev@example.com" {
		t.Errorf("expected lowercased email, got %q", store.addCalls[0].email)
	}
}

func TestWaitlistHandlerRejectsMalformedJSON(t *testing.T) {
	store := &waitlistStoreStub{}
	router := setupWaitlistHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if len(store.addCalls) != 0 {
		t.Fatal("expected no store call")
	}
}

func TestWaitlistHandlerRejectsInvalidEmail(t *testing.T) {
	store := &waitlistStoreStub{}
	router := setupWaitlistHandler(store)

	resp := postWaitlist(router, map[string]string{"email": "not-an-email"})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if len(store.addCalls) != 0 {
		t.Fatal("expected no store call")
	}
}

func TestWaitlistHandlerWithoutStore(t *testing.T) {
	router := setupWaitlistHandler(nil)

	resp := postWaitlist(router, map[string]string{"email": "dev@example.com"})

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestWaitlistHandlerStoreError(t *testing.T) {
	store := &waitlistStoreStub{addErr: errors.New("connection refused")}
	router := setupWaitlistHandler(store)

	resp := postWaitlist(router, map[string]string{"email": "dev@example.com"})

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
}

func TestWaitlistHandlerStoreTimeout(t *testing.T) {
	store := &waitlistStoreStub{addErr: context.DeadlineExceeded}
	router := setupWaitlistHandler(store)

	resp := postWaitlist(router, map[string]string{"email": "dev@example.com"})

	if resp.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", resp.Code)
	}
}

func TestWaitlistHandlerCountFailureStillSucceeds(t *testing.T) {
	store := &waitlistStoreStub{created: true, countErr: errors.New("timeout")}
	router := setupWaitlistHandler(store)

	resp := postWaitlist(router, map[string]string{"email": "dev@example.com"})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body WaitlistResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !body.Success || body.Position != 0 {
		t.Errorf("expected success with zero position, got %+v", body)
	}
}
