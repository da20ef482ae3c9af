// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/moodwave/internal/session"
)

// Phase tells whether a row was written when the songs were served or when
// the listener rated them.
type Phase string

const (
	PhaseRecommended Phase = "recommended"
	PhaseFeedback    Phase = "feedback"
)

// Mood is how the listener felt after hearing the recommendation.
type Mood string

const (
	MoodBetter Mood = "better"
	MoodSame   Mood = "same"
	MoodWorse  Mood = "worse"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrInvalidMood   = errors.New("mood_after must be better, same or worse")
)

// ParseMood accepts "", better, same and worse, case-insensitively.
func ParseMood(s string) (Mood, error) {
	switch m := Mood(strings.ToLower(strings.TrimSpace(s))); m {
	case "", MoodBetter, MoodSame, MoodWorse:
		return m, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidMood, s)
	}
}

// Record is one row of the feedback log: one served song, optionally with
// the listener's rating of the whole recommendation.
type Record struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	SessionID        string    `json:"session_id"`
	UserID           string    `json:"user_id,omitempty"`
	RecommendationID string    `json:"recommendation_id"`
	Phase            Phase     `json:"phase"`
	Emotion1         string    `json:"emo1"`
	Emotion2         string    `json:"emo2"`
	PopLevel         int       `json:"pop_level"`
	Rank             int       `json:"rank"`
	Title            string    `json:"title"`
	Artist           string    `json:"artist"`
	Similarity       float64   `json:"similarity"`
	Rating           *int      `json:"rating,omitempty"`
	MoodAfter        Mood      `json:"mood_after,omitempty"`
}

// Rows expands a served recommendation into one record per song. rating
// and mood are only set for PhaseFeedback.
func Rows(sess session.Session, rec *session.Recommendation, phase Phase, rating *int, mood Mood, at time.Time) []Record {
	rows := make([]Record, len(rec.Matches))
	for i, m := range rec.Matches {
		rows[i] = Record{
			ID:               uuid.NewString(),
			Timestamp:        at.UTC(),
			SessionID:        sess.ID,
			UserID:           sess.UserID,
			RecommendationID: rec.ID,
			Phase:            phase,
			Emotion1:         rec.Emotion1,
			Emotion2:         rec.Emotion2,
			PopLevel:         rec.Tier,
			Rank:             i + 1,
			Title:            m.Title,
			Artist:           m.Artist,
			Similarity:       m.Similarity,
			Rating:           rating,
			MoodAfter:        mood,
		}
	}
	return rows
}

// Batch is the unit published on the pipeline.
type Batch struct {
	ID      string   `json:"id"`
	Phase   Phase    `json:"phase"`
	Records []Record `json:"records"`
}
