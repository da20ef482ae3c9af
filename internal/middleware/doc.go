// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: accepts or generates X-Request-ID, echoes it on the response
    and seeds the logging context with request and correlation IDs.
  - PrometheusMetrics: counts requests and observes latency per chi route
    pattern, so /api/v1/sessions/{sessionID}/feedback is one series rather
    than one per session.
  - MaxBytes: caps request bodies.

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.MaxBytes(64 << 10))
*/
package middleware
