// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/moodwave/internal/catalog"
)

// InvalidEmotionError rejects a query whose emotions are unknown or whose
// emotion count is not 1 or 2.
type InvalidEmotionError struct {
	Label string // offending label; empty for a count problem
	Count int
}

func (e *InvalidEmotionError) Error() string {
	if e.Label == "" && (e.Count < 1 || e.Count > MaxQueryEmotions) {
		return fmt.Sprintf("invalid emotions: need 1 to %d, got %d", MaxQueryEmotions, e.Count)
	}
	return fmt.Sprintf("invalid emotion %q (want one of %v)", e.Label, catalog.EmotionNames())
}

// Unwrap lets errors.Is match catalog.ErrUnknownEmotion for unknown labels.
func (e *InvalidEmotionError) Unwrap() error {
	if e.Count >= 1 && e.Count <= MaxQueryEmotions {
		return catalog.ErrUnknownEmotion
	}
	return nil
}

// InvalidTierError rejects a query whose popularity tier is undefined.
type InvalidTierError struct {
	Tier int
}

func (e *InvalidTierError) Error() string {
	return fmt.Sprintf("invalid pop_level %d (want 0 to %d)", e.Tier, catalog.NumTiers-1)
}

// IsInvalidQuery reports whether err is a caller error rather than a failure.
func IsInvalidQuery(err error) bool {
	var ee *InvalidEmotionError
	var te *InvalidTierError
	return errors.As(err, &ee) || errors.As(err, &te)
}
