// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/moodwave/internal/feedback"
	"github.com/tomtom215/moodwave/internal/logging"
	"github.com/tomtom215/moodwave/internal/models"
	"github.com/tomtom215/moodwave/internal/session"
)

// Feedback handles POST /api/v1/feedback: the listener rates the latest
// recommendation of their session.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.FeedbackRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	sess, rec, err := h.sessions.Last(req.SessionID)
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		respondAPIError(w, r, http.StatusNotFound, &models.APIError{
			Code:    ErrCodeSessionNotFound,
			Message: "Session not found or expired",
			Details: map[string]interface{}{"session_id": req.SessionID},
		}, nil)
		return
	case errors.Is(err, session.ErrNoRecommendation):
		respondAPIError(w, r, http.StatusNotFound, &models.APIError{
			Code:    ErrCodeNoRecommendation,
			Message: "Session has no recommendation to rate",
			Details: map[string]interface{}{"session_id": req.SessionID},
		}, nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Session lookup failed", err)
		return
	}

	ctx := logging.ContextWithSessionID(r.Context(), sess.ID)
	rows, err := h.recorder.RecordFeedback(ctx, sess, rec, req.Rating, req.MoodAfter)
	if err != nil {
		if errors.Is(err, feedback.ErrInvalidRating) || errors.Is(err, feedback.ErrInvalidMood) {
			respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
				Code:    ErrCodeValidation,
				Message: err.Error(),
			}, nil)
			return
		}
		respondAPIError(w, r, http.StatusServiceUnavailable, &models.APIError{
			Code:    ErrCodeFeedbackUnavailable,
			Message: "Feedback could not be recorded, retry later",
		}, err)
		return
	}

	respondSuccess(w, r, http.StatusAccepted, &models.FeedbackResponse{
		SessionID:        sess.ID,
		RecommendationID: rec.ID,
		Rows:             rows,
	}, start)
}

// SessionFeedback handles GET /api/v1/sessions/{sessionID}/feedback.
func (h *Handler) SessionFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sessionID := chi.URLParam(r, "sessionID")

	if h.reader == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeFeedbackUnavailable, "Feedback log is disabled", nil)
		return
	}

	records, err := h.reader.ListBySession(r.Context(), sessionID)
	if err != nil {
		respondAPIError(w, r, http.StatusInternalServerError, &models.APIError{
			Code:    ErrCodeInternalError,
			Message: "Failed to read feedback",
		}, err)
		return
	}
	if records == nil {
		records = []feedback.Record{}
	}

	respondSuccess(w, r, http.StatusOK, &models.SessionFeedbackResponse{
		SessionID: sessionID,
		Count:     len(records),
		Records:   records,
	}, start)
}
