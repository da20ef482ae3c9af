// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

/*
Package metrics exposes Prometheus instrumentation for Moodwave.

Collectors are registered on the default registry through promauto and
served by promhttp at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendations:
  - moodwave_recommendations_total{outcome}     ok, empty, invalid_emotion, invalid_tier, error
  - moodwave_recommendation_duration_seconds    engine latency
  - moodwave_recommendation_results             result sizes
  - moodwave_recommendation_emotions_total{emotion}

Catalog:
  - moodwave_catalog_songs{tier}                songs per tier ("none" for untiered)

Sessions and feedback:
  - moodwave_sessions_active
  - moodwave_feedback_records_total{phase,status}
  - moodwave_feedback_ratings_total{rating}
  - moodwave_feedback_breaker_state             0 closed, 1 half-open, 2 open

HTTP:
  - moodwave_http_requests_total{method,route,status}
  - moodwave_http_request_duration_seconds{method,route}
*/
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moodwave"

// Recommendation outcomes.
const (
	OutcomeOK             = "ok"
	OutcomeEmpty          = "empty"
	OutcomeInvalidEmotion = "invalid_emotion"
	OutcomeInvalidTier    = "invalid_tier"
	OutcomeError          = "error"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_duration_seconds",
			Help:      "Time spent ranking a single query",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025},
		},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_results",
			Help:      "Number of matches returned per query",
			Buckets:   []float64{0, 1, 2, 3, 5, 10, 20, 50},
		},
	)

	RecommendationEmotions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendation_emotions_total",
			Help:      "Emotions requested in valid queries",
		},
		[]string{"emotion"},
	)

	CatalogSongs = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_songs",
			Help:      "Songs loaded per popularity tier",
		},
		[]string{"tier"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Listener sessions currently held in memory",
		},
	)

	FeedbackRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_records_total",
			Help:      "Feedback log rows by phase and write status",
		},
		[]string{"phase", "status"},
	)

	FeedbackRatingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_ratings_total",
			Help:      "Submitted satisfaction ratings",
		},
		[]string{"rating"},
	)

	FeedbackBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "feedback_breaker_state",
			Help:      "Feedback sink circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordRecommendation records one engine call. emotions is empty for
// rejected queries.
func RecordRecommendation(outcome string, duration time.Duration, results int, emotions []string) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeOK && outcome != OutcomeEmpty {
		return
	}
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationResults.Observe(float64(results))
	for _, e := range emotions {
		RecommendationEmotions.WithLabelValues(e).Inc()
	}
}

// SetCatalogSongs publishes per-tier counts. untiered counts songs outside
// every tier.
func SetCatalogSongs(perTier map[int]int, untiered int) {
	for tier, n := range perTier {
		CatalogSongs.WithLabelValues(strconv.Itoa(tier)).Set(float64(n))
	}
	CatalogSongs.WithLabelValues("none").Set(float64(untiered))
}

// SetSessionsActive publishes the session store size.
func SetSessionsActive(n int) {
	SessionsActive.Set(float64(n))
}

// RecordFeedbackRows counts rows written or dropped by the feedback sink.
func RecordFeedbackRows(phase string, n int, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	FeedbackRecordsTotal.WithLabelValues(phase, status).Add(float64(n))
}

// RecordRating counts one submitted rating.
func RecordRating(rating int) {
	FeedbackRatingsTotal.WithLabelValues(strconv.Itoa(rating)).Inc()
}

// SetBreakerState publishes the breaker state as 0, 1 or 2.
func SetBreakerState(state int) {
	FeedbackBreakerState.Set(float64(state))
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
