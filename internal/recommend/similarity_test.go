// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/moodwave/internal/catalog"
)

func TestEncodeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		emotions []catalog.Emotion
		want     catalog.Vector
	}{
		{"single", []catalog.Emotion{catalog.Happy}, catalog.Vector{1, 0, 0, 0, 0, 0}},
		{"pair", []catalog.Emotion{catalog.Sad, catalog.Focus}, catalog.Vector{0, 0.5, 0, 0, 0.5, 0}},
		{"repeated", []catalog.Emotion{catalog.Angry, catalog.Angry}, catalog.Vector{0, 0, 0, 1, 0, 0}},
		{"none", nil, catalog.Vector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EncodeQuery(tt.emotions)
			if got != tt.want {
				t.Errorf("EncodeQuery() = %v, want %v", got, tt.want)
			}
			if len(tt.emotions) > 0 {
				var mass float64
				for _, w := range got {
					mass += w
				}
				if math.Abs(mass-1) > 1e-12 {
					t.Errorf("query mass = %v, want 1", mass)
				}
			}
		})
	}
}

func TestMeasures(t *testing.T) {
	t.Parallel()

	happy := catalog.Vector{1, 0, 0, 0, 0, 0}
	sad := catalog.Vector{0, 1, 0, 0, 0, 0}
	mixed := catalog.Vector{0.6, 0.8, 0, 0, 0, 0}
	zero := catalog.Vector{}

	tests := []struct {
		name    string
		measure Measure
		a, b    catalog.Vector
		want    float64
	}{
		{"cosine identical", Cosine, happy, happy, 1},
		{"cosine scaled", Cosine, happy, catalog.Vector{0.3}, 1},
		{"cosine orthogonal", Cosine, happy, sad, 0},
		{"cosine partial", Cosine, happy, mixed, 0.6},
		{"cosine zero song", Cosine, happy, zero, 0},
		{"cosine zero query", Cosine, zero, happy, 0},
		{"inverse identical", InverseDistance, happy, happy, 1},
		{"inverse orthogonal", InverseDistance, happy, sad, 1 / (1 + math.Sqrt2)},
		{"inverse zero", InverseDistance, zero, zero, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.measure(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if back := tt.measure(tt.b, tt.a); math.Abs(back-got) > 1e-12 {
				t.Errorf("not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero default k", func(c *Config) { c.DefaultK = 0 }},
		{"max below default", func(c *Config) { c.MaxK = c.DefaultK - 1 }},
		{"unknown measure", func(c *Config) { c.Measure = "jaccard" }},
		{"negative precision", func(c *Config) { c.Precision = -1 }},
		{"huge epsilon", func(c *Config) { c.Epsilon = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestRound(t *testing.T) {
	t.Parallel()

	if got := round(0.123456, 3); got != 0.123 {
		t.Errorf("round(0.123456, 3) = %v", got)
	}
	if got := round(0.99951, 3); got != 1 {
		t.Errorf("round(0.99951, 3) = %v", got)
	}
}
