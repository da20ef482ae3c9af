// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moodwave/internal/models"
)

// Health states.
const (
	healthOK       = "ok"
	healthDisabled = "disabled"
)

// Health handles GET /health: a liveness probe that never checks
// dependencies.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, h.healthSnapshot(healthOK), time.Now())
}

// HealthReady handles GET /health/ready. It returns 503 when the catalog is
// empty or the feedback store is failing.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.catalog == nil || h.catalog.Len() == 0 {
		respondAPIError(w, r, http.StatusServiceUnavailable, &models.APIError{
			Code:    ErrCodeServiceUnavailable,
			Message: "Catalog not loaded",
		}, nil)
		return
	}

	snap := h.healthSnapshot(healthOK)
	if h.fbHealth != nil {
		if _, ok := h.fbHealth(); !ok {
			respondAPIError(w, r, http.StatusServiceUnavailable, &models.APIError{
				Code:    ErrCodeServiceUnavailable,
				Message: "Feedback store unavailable",
				Details: map[string]interface{}{"feedback": snap.Feedback},
			}, nil)
			return
		}
	}

	respondSuccess(w, r, http.StatusOK, snap, start)
}

func (h *Handler) healthSnapshot(status string) *models.HealthResponse {
	snap := &models.HealthResponse{
		Status:        status,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Feedback:      healthDisabled,
	}
	if h.catalog != nil {
		snap.CatalogSongs = h.catalog.Len()
	}
	if h.sessions != nil {
		snap.ActiveSessions = h.sessions.Len()
	}
	if h.fbHealth != nil {
		snap.Feedback, _ = h.fbHealth()
	}
	return snap
}
