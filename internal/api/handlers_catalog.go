// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moodwave/internal/catalog"
	"github.com/tomtom215/moodwave/internal/models"
	"github.com/tomtom215/moodwave/internal/recommend"
)

// Emotions handles GET /api/v1/emotions.
func (h *Handler) Emotions(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, &models.EmotionsResponse{
		Emotions:    catalog.EmotionNames(),
		MaxPerQuery: recommend.MaxQueryEmotions,
	}, time.Now())
}

// Tiers handles GET /api/v1/tiers.
func (h *Handler) Tiers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	counts := h.catalog.TierCounts()

	tiers := make([]models.TierInfo, 0, catalog.NumTiers)
	tiered := 0
	for _, t := range catalog.Tiers() {
		rng, _ := t.Range()
		tiers = append(tiers, models.TierInfo{
			Level: int(t),
			Label: t.String(),
			Range: models.PopRange{Min: rng.Min, Max: rng.Max},
			Songs: counts[t],
		})
		tiered += counts[t]
	}

	respondSuccess(w, r, http.StatusOK, &models.TiersResponse{
		Tiers:    tiers,
		Untiered: h.catalog.Len() - tiered,
	}, start)
}
