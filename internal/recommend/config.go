// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package recommend

import (
	"fmt"
)

// Defaults for Config.
const (
	DefaultK         = 5
	DefaultMaxK      = 50
	DefaultPrecision = 3
	DefaultEpsilon   = 1e-9
)

// Config controls ranking and output shape.
type Config struct {
	// DefaultK is used when a query does not set K.
	DefaultK int `json:"default_k"`

	// MaxK caps the K a query may request. Larger values are clamped.
	MaxK int `json:"max_k"`

	// Measure names the similarity measure: "cosine" or "inverse_distance".
	Measure string `json:"measure"`

	// Precision is the number of decimal places kept in Match.Similarity.
	Precision int `json:"precision"`

	// Epsilon is the grid raw scores are snapped to before rounding, so
	// floating-point noise smaller than Epsilon cannot split a tie.
	Epsilon float64 `json:"epsilon"`
}

// DefaultConfig returns the production configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultK:  DefaultK,
		MaxK:      DefaultMaxK,
		Measure:   MeasureCosine,
		Precision: DefaultPrecision,
		Epsilon:   DefaultEpsilon,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be positive, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k (%d) must be >= default_k (%d)", c.MaxK, c.DefaultK)
	}
	if _, ok := measures[c.Measure]; !ok {
		return fmt.Errorf("unknown measure %q (want one of %v)", c.Measure, MeasureNames())
	}
	if c.Precision < 0 || c.Precision > 9 {
		return fmt.Errorf("precision must be in [0, 9], got %d", c.Precision)
	}
	if c.Epsilon < 0 || c.Epsilon >= 1 {
		return fmt.Errorf("epsilon must be in [0, 1), got %g", c.Epsilon)
	}
	return nil
}
