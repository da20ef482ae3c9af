// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/moodwave/internal/middleware"
)

// Router binds the Handler to URL paths.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil cm uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, cm *ChiMiddleware) *Router {
	if cm == nil {
		cm = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: cm}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	// ========================
	// Probes and Metrics
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/health", router.handler.Health)
		r.Get("/health/ready", router.handler.HealthReady)
		r.Handle("/metrics", promhttp.Handler())
	})

	// ========================
	// API v1
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(router.chiMiddleware.MaxBody())

		r.Get("/emotions", router.handler.Emotions)
		r.Get("/tiers", router.handler.Tiers)
		r.Post("/recommendations", router.handler.Recommend)
		r.Post("/feedback", router.handler.Feedback)
		r.Get("/sessions/{sessionID}/feedback", router.handler.SessionFeedback)
	})

	return r
}
