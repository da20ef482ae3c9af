// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/moodwave/internal/catalog"
	"github.com/tomtom215/moodwave/internal/logging"
	"github.com/tomtom215/moodwave/internal/metrics"
	"github.com/tomtom215/moodwave/internal/models"
	"github.com/tomtom215/moodwave/internal/recommend"
	"github.com/tomtom215/moodwave/internal/session"
)

// Recommend handles POST /api/v1/recommendations.
//
// The result is remembered as the session's latest recommendation and
// logged to the feedback log. A session ID is minted when the body has none.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RecommendationRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		if apiErr.Code == ErrCodeInvalidEmotion {
			metrics.RecordRecommendation(metrics.OutcomeInvalidEmotion, 0, 0, nil)
		}
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	query := recommend.Query{Emotions: req.Emotions, Tier: *req.PopLevel, K: req.K}
	engineStart := time.Now()
	result, err := h.engine.Recommend(query)
	engineTime := time.Since(engineStart)
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	labels := make([]string, len(result.Emotions))
	for i, e := range result.Emotions {
		labels[i] = e.String()
	}
	outcome := metrics.OutcomeOK
	if result.Empty() {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordRecommendation(outcome, engineTime, len(result.Matches), labels)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = session.NewID()
	}
	sess := h.sessions.Remember(sessionID, req.UserID, result)
	metrics.SetSessionsActive(h.sessions.Len())

	ctx := logging.ContextWithSessionID(r.Context(), sessionID)
	// Feedback rows are best effort; the listener still gets their songs.
	_, _ = h.recorder.RecordRecommendation(ctx, sess, sess.Last)

	logging.Ctx(ctx).Debug().
		Strs("emotions", labels).
		Int("pop_level", int(result.Tier)).
		Int("candidates", result.Candidates).
		Int("results", len(result.Matches)).
		Dur("engine_time", engineTime).
		Msg("recommendation served")

	respondSuccess(w, r, http.StatusOK, buildRecommendationResponse(sess, result, labels), start)
}

func buildRecommendationResponse(sess session.Session, result *recommend.Result, labels []string) *models.RecommendationResponse {
	rng, _ := result.Tier.Range()
	songs := make([]models.SongMatch, len(result.Matches))
	for i, m := range result.Matches {
		songs[i] = models.SongMatch{
			Rank:       i + 1,
			Title:      m.Title,
			Artist:     m.Artist,
			Popularity: m.Popularity,
			Similarity: m.Similarity,
		}
	}
	return &models.RecommendationResponse{
		SessionID:        sess.ID,
		RecommendationID: sess.Last.ID,
		Emotions:         labels,
		PopLevel:         int(result.Tier),
		PopRange:         models.PopRange{Min: rng.Min, Max: rng.Max},
		K:                result.K,
		Candidates:       result.Candidates,
		Results:          songs,
	}
}

// respondEngineError maps engine errors to 400s; anything else is a 500.
func (h *Handler) respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var emotionErr *recommend.InvalidEmotionError
	var tierErr *recommend.InvalidTierError

	switch {
	case errors.As(err, &emotionErr):
		metrics.RecordRecommendation(metrics.OutcomeInvalidEmotion, 0, 0, nil)
		details := map[string]interface{}{
			"allowed": catalog.EmotionNames(),
			"count":   emotionErr.Count,
		}
		if emotionErr.Label != "" {
			details["label"] = emotionErr.Label
		}
		respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    ErrCodeInvalidEmotion,
			Message: emotionErr.Error(),
			Details: details,
		}, nil)

	case errors.As(err, &tierErr):
		metrics.RecordRecommendation(metrics.OutcomeInvalidTier, 0, 0, nil)
		respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    ErrCodeInvalidTier,
			Message: tierErr.Error(),
			Details: map[string]interface{}{
				"pop_level": tierErr.Tier,
				"min":       0,
				"max":       catalog.NumTiers - 1,
			},
		}, nil)

	default:
		metrics.RecordRecommendation(metrics.OutcomeError, 0, 0, nil)
		respondAPIError(w, r, http.StatusInternalServerError, &models.APIError{
			Code:    ErrCodeInternalError,
			Message: "Recommendation failed",
		}, err)
	}
}
