// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "INVALID_EMOTION",
//	    "message": "unknown emotion \"bored\"",
//	    "details": {"label": "bored"}
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: malformed request fields
//   - INVALID_EMOTION: unknown emotion label, or zero or more than two emotions
//   - INVALID_TIER: pop_level outside 0..2
//   - INVALID_JSON: body is not valid JSON
//   - SESSION_NOT_FOUND: unknown or expired session
//   - NO_RECOMMENDATION: session has nothing to rate yet
//   - FEEDBACK_UNAVAILABLE: feedback log disabled or failing
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
