// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Emotion is one label of the closed emotion set. The numeric value is the
// dimension index in every Vector.
type Emotion int

// The emotion set, in canonical order.
const (
	Happy Emotion = iota
	Sad
	Relaxed
	Angry
	Focus
	Confident

	// NumEmotions is the dimensionality of every emotion Vector.
	NumEmotions = 6
)

var emotionNames = [NumEmotions]string{"happy", "sad", "relaxed", "angry", "focus", "confident"}

// ErrUnknownEmotion is returned when a label is not in the emotion set.
var ErrUnknownEmotion = errors.New("unknown emotion")

// String returns the lowercase label.
func (e Emotion) String() string {
	if !e.Valid() {
		return fmt.Sprintf("emotion(%d)", int(e))
	}
	return emotionNames[e]
}

// Valid reports whether e is inside the emotion set.
func (e Emotion) Valid() bool {
	return e >= 0 && int(e) < NumEmotions
}

// Emotions returns the full set in canonical order.
func Emotions() []Emotion {
	out := make([]Emotion, NumEmotions)
	for i := range out {
		out[i] = Emotion(i)
	}
	return out
}

// EmotionNames returns the labels in canonical order.
func EmotionNames() []string {
	out := make([]string, NumEmotions)
	copy(out, emotionNames[:])
	return out
}

// ParseEmotion resolves a label, ignoring case and surrounding whitespace.
func ParseEmotion(label string) (Emotion, error) {
	norm := strings.ToLower(strings.TrimSpace(label))
	for i, name := range emotionNames {
		if name == norm {
			return Emotion(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEmotion, label)
}

// Vector holds one weight per emotion, indexed by Emotion.
type Vector [NumEmotions]float64

// Weight returns the weight of e, or 0 for an invalid emotion.
func (v Vector) Weight(e Emotion) float64 {
	if !e.Valid() {
		return 0
	}
	return v[e]
}

// Dot returns the inner product of v and w.
func (v Vector) Dot(w Vector) float64 {
	var sum float64
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// IsZero reports whether every weight is 0.
func (v Vector) IsZero() bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	return true
}

// Map returns the non-zero weights keyed by label.
func (v Vector) Map() map[string]float64 {
	out := make(map[string]float64, NumEmotions)
	for i, w := range v {
		if w != 0 {
			out[emotionNames[i]] = w
		}
	}
	return out
}
