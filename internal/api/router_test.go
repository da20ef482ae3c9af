// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testSongs(), nil)
	rec, resp := env.do(t, http.MethodGet, "/api/v1/nothing-here", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeNotFound {
		t.Errorf("Expected NOT_FOUND, got %+v", resp.Error)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testSongs(), nil)
	rec, resp := env.do(t, http.MethodGet, "/api/v1/recommendations", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeMethodNotAllowed {
		t.Errorf("Expected METHOD_NOT_ALLOWED, got %+v", resp.Error)
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testSongs(), nil)
	env.do(t, http.MethodGet, "/api/v1/emotions", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "moodwave_http_requests_total") {
		t.Error("Expected moodwave_http_requests_total in exposition")
	}
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testSongs(), nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "trace-123" {
		t.Errorf("X-Request-ID = %q, want trace-123", got)
	}
	if !strings.Contains(rec.Body.String(), `"request_id":"trace-123"`) {
		t.Errorf("Expected request_id in metadata, got %s", rec.Body.String())
	}
}

func TestRouter_BodyLimit(t *testing.T) {
	t.Parallel()

	store := newTestEnv(t, testSongs(), nil)
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	cfg.MaxBodyBytes = 32
	server := NewRouter(store.handler, NewChiMiddleware(cfg)).SetupChi()

	body := `{"emotions":["happy"],"pop_level":0,"user_id":"` + strings.Repeat("u", 64) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ErrCodeInvalidJSON) {
		t.Errorf("Expected INVALID_JSON, got %s", rec.Body.String())
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testSongs(), nil)
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	server := NewRouter(env.handler, NewChiMiddleware(cfg)).SetupChi()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/emotions", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests && !strings.Contains(rec.Body.String(), ErrCodeTooManyRequests) {
			t.Errorf("Expected TOO_MANY_REQUESTS envelope, got %s", rec.Body.String())
		}
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}

	// Probes have their own, larger limit.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testSongs(), nil)
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	cfg.CORSAllowedOrigins = []string{"https://player.example.com"}
	server := NewRouter(env.handler, NewChiMiddleware(cfg)).SetupChi()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
	req.Header.Set("Origin", "https://player.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://player.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
