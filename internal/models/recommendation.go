// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package models

import (
	"github.com/tomtom215/moodwave/internal/feedback"
)

// RecommendationRequest is the body of POST /api/v1/recommendations.
//
// Emotions must hold one or two labels; the count and the tier range are
// checked by the engine.
type RecommendationRequest struct {
	SessionID string   `json:"session_id,omitempty" validate:"omitempty,max=64,printascii"`
	UserID    string   `json:"user_id,omitempty" validate:"omitempty,max=128,printascii"`
	Emotions  []string `json:"emotions" validate:"dive,emotion"`
	PopLevel  *int     `json:"pop_level" validate:"required"`
	K         int      `json:"k,omitempty"`
}

// SongMatch is one ranked song.
type SongMatch struct {
	Rank       int     `json:"rank"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Popularity int     `json:"popularity"`
	Similarity float64 `json:"similarity"`
}

// PopRange is the inclusive popularity range of a tier.
type PopRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RecommendationResponse is returned by POST /api/v1/recommendations.
// Results is empty, never null, when the tier has no songs.
type RecommendationResponse struct {
	SessionID        string      `json:"session_id"`
	RecommendationID string      `json:"recommendation_id"`
	Emotions         []string    `json:"emotions"`
	PopLevel         int         `json:"pop_level"`
	PopRange         PopRange    `json:"pop_range"`
	K                int         `json:"k"`
	Candidates       int         `json:"candidates"`
	Results          []SongMatch `json:"results"`
}

// FeedbackRequest is the body of POST /api/v1/feedback.
type FeedbackRequest struct {
	SessionID string `json:"session_id" validate:"required,max=64,printascii"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	MoodAfter string `json:"mood_after,omitempty" validate:"omitempty,mood"`
}

// FeedbackResponse acknowledges a rating. Rows are written asynchronously.
type FeedbackResponse struct {
	SessionID        string `json:"session_id"`
	RecommendationID string `json:"recommendation_id"`
	Rows             int    `json:"rows"`
}

// SessionFeedbackResponse lists the stored feedback rows of one session.
type SessionFeedbackResponse struct {
	SessionID string            `json:"session_id"`
	Count     int               `json:"count"`
	Records   []feedback.Record `json:"records"`
}

// EmotionsResponse lists the supported emotions in vector order.
type EmotionsResponse struct {
	Emotions    []string `json:"emotions"`
	MaxPerQuery int      `json:"max_per_query"`
}

// TierInfo describes one popularity tier.
type TierInfo struct {
	Level int      `json:"pop_level"`
	Label string   `json:"label"`
	Range PopRange `json:"range"`
	Songs int      `json:"songs"`
}

// TiersResponse lists the tiers. Untiered counts catalog songs whose
// popularity falls in no tier; they are never recommended.
type TiersResponse struct {
	Tiers    []TierInfo `json:"tiers"`
	Untiered int        `json:"untiered"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status         string  `json:"status"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	CatalogSongs   int     `json:"catalog_songs"`
	ActiveSessions int     `json:"active_sessions"`
	Feedback       string  `json:"feedback"`
}
