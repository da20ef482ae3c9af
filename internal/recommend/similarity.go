// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/moodwave/internal/catalog"
)

// Measure names accepted by Config.Measure.
const (
	MeasureCosine          = "cosine"
	MeasureInverseDistance = "inverse_distance"
)

// Measure scores the closeness of two emotion vectors. Implementations are
// symmetric, deterministic and return 0 when either vector is zero.
type Measure func(a, b catalog.Vector) float64

var measures = map[string]Measure{
	MeasureCosine:          Cosine,
	MeasureInverseDistance: InverseDistance,
}

// MeasureNames lists the registered measures, sorted.
func MeasureNames() []string {
	names := make([]string, 0, len(measures))
	for n := range measures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Cosine returns the cosine of the angle between a and b, in [-1, 1]. With
// non-negative catalog weights the result stays in [0, 1].
func Cosine(a, b catalog.Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return clamp(a.Dot(b)/(na*nb), -1, 1)
}

// InverseDistance returns 1/(1+d) where d is the Euclidean distance between
// the unit-length versions of a and b. Identical directions score 1.
func InverseDistance(a, b catalog.Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	var sum float64
	for i := range a {
		d := a[i]/na - b[i]/nb
		sum += d * d
	}
	return 1 / (1 + math.Sqrt(sum))
}

// clamp absorbs floating-point drift such as 1.0000000000000002.
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
