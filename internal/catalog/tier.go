// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package catalog

import "fmt"

// Tier is an ordinal popularity bucket.
type Tier int

// Popularity tiers.
const (
	TierNiche   Tier = 0 // 60-70
	TierPopular Tier = 1 // 71-80
	TierHit     Tier = 2 // 81-99

	// NumTiers is the number of defined tiers.
	NumTiers = 3
)

// Range is an inclusive popularity interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether popularity lies inside r.
func (r Range) Contains(popularity int) bool {
	return popularity >= r.Min && popularity <= r.Max
}

// tierRanges must stay contiguous and disjoint.
var tierRanges = [NumTiers]Range{
	{Min: 60, Max: 70},
	{Min: 71, Max: 80},
	{Min: 81, Max: 99},
}

// Valid reports whether t is one of the defined tiers.
func (t Tier) Valid() bool {
	return t >= 0 && int(t) < NumTiers
}

// Range returns the popularity interval of t.
func (t Tier) Range() (Range, bool) {
	if !t.Valid() {
		return Range{}, false
	}
	return tierRanges[t], true
}

// String renders the tier with its range, e.g. "tier 1 (71-80)".
func (t Tier) String() string {
	r, ok := t.Range()
	if !ok {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return fmt.Sprintf("tier %d (%d-%d)", int(t), r.Min, r.Max)
}

// Tiers returns every tier in ascending order.
func Tiers() []Tier {
	return []Tier{TierNiche, TierPopular, TierHit}
}

// TierFor returns the tier whose range holds popularity. Songs outside
// [60,99] belong to no tier.
func TierFor(popularity int) (Tier, bool) {
	for i, r := range tierRanges {
		if r.Contains(popularity) {
			return Tier(i), true
		}
	}
	return 0, false
}
