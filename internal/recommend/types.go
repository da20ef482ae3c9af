// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package recommend

import (
	"github.com/tomtom215/moodwave/internal/catalog"
)

// MaxQueryEmotions is the largest number of emotions a query may carry.
const MaxQueryEmotions = 2

// Query is a single recommendation request as received from a caller.
type Query struct {
	// Emotions holds 1 or 2 labels from the emotion set.
	Emotions []string `json:"emotions"`

	// Tier is the popularity tier, 0 to 2.
	Tier int `json:"pop_level"`

	// K overrides Config.DefaultK when positive.
	K int `json:"k,omitempty"`
}

// Match is one ranked song.
type Match struct {
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Popularity int     `json:"popularity"`
	Similarity float64 `json:"similarity"`
}

// Result is the ordered outcome of a query. Matches is never nil; an empty
// slice means no song in the tier, which is not an error.
type Result struct {
	Emotions   []catalog.Emotion `json:"emotions"`
	Tier       catalog.Tier      `json:"pop_level"`
	K          int               `json:"k"`
	Candidates int               `json:"candidates"`
	Matches    []Match           `json:"results"`
}

// Empty reports whether no song matched.
func (r *Result) Empty() bool {
	return len(r.Matches) == 0
}

// EmotionLabels returns the query emotions as strings; the second is "" for
// single-emotion queries.
func (r *Result) EmotionLabels() (first, second string) {
	if len(r.Emotions) > 0 {
		first = r.Emotions[0].String()
	}
	if len(r.Emotions) > 1 {
		second = r.Emotions[1].String()
	}
	return first, second
}

// scored pairs a candidate with its sort key during ranking.
type scored struct {
	song catalog.Song
	key  float64
}
