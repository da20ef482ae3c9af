// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/moodwave/internal/logging"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{"generated when absent", "", false},
		{"reused from upstream", "edge-abc-123", true},
		{"replaced when too long", strings.Repeat("x", maxRequestIDLen+1), false},
		{"replaced when not printable", "bad id\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxID, corrID string
			handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				ctxID = logging.RequestIDFromContext(r.Context())
				corrID = logging.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got == "" || got != ctxID {
				t.Fatalf("header %q, context %q; want equal and non-empty", got, ctxID)
			}
			if tt.reuse && got != tt.incoming {
				t.Errorf("request ID = %q, want upstream %q", got, tt.incoming)
			}
			if !tt.reuse && got == tt.incoming {
				t.Errorf("request ID %q should have been replaced", got)
			}
			if corrID == "" {
				t.Error("correlation ID not set")
			}
		})
	}
}

func TestMaxBytes(t *testing.T) {
	t.Parallel()

	var readErr error
	handler := MaxBytes(8)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))
	if readErr == nil {
		t.Error("reading an oversized body succeeded")
	}

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	if readErr != nil {
		t.Errorf("reading a small body: %v", readErr)
	}
}
