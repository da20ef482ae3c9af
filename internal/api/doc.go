// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

/*
Package api provides the HTTP REST API layer for Moodwave.

Key Components:

  - Router: chi routes and the middleware stack
  - Handler: request handlers for the recommendation and feedback endpoints
  - Response formatting: a standard JSON envelope with request metadata
  - Rate limiting: per-IP limits via go-chi/httprate
  - CORS: go-chi/cors, applied globally so preflight requests succeed

Endpoints:

	GET  /health                               liveness
	GET  /health/ready                         catalog loaded, feedback store healthy
	GET  /metrics                              Prometheus exposition
	GET  /api/v1/emotions                      the emotion set
	GET  /api/v1/tiers                         popularity tiers with song counts
	POST /api/v1/recommendations               rank songs for 1 or 2 emotions in a tier
	POST /api/v1/feedback                      rate the session's latest recommendation
	GET  /api/v1/sessions/{sessionID}/feedback stored feedback rows

Response Format:

Every response uses models.APIResponse:

	{
	  "status": "success",
	  "data": { ... },
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 1}
	}

Errors carry a machine-readable code:

	{
	  "status": "error",
	  "metadata": {"timestamp": "..."},
	  "error": {"code": "INVALID_TIER", "message": "...", "details": {...}}
	}

Caller mistakes (INVALID_JSON, VALIDATION_ERROR, INVALID_EMOTION,
INVALID_TIER) are 400s. SESSION_NOT_FOUND and NO_RECOMMENDATION are 404s.
FEEDBACK_UNAVAILABLE is a 503 returned when the feedback log rejects a
write; recommendations are still served in that state.
*/
package api
