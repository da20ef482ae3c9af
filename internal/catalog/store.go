// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package catalog

// Song is an immutable catalog entry.
type Song struct {
	Title      string
	Artist     string
	Popularity int
	Vector     Vector

	// Position is the insertion index from load, used as the tie-break key.
	Position int
}

// Tier returns the song's popularity tier, if any.
func (s Song) Tier() (Tier, bool) {
	return TierFor(s.Popularity)
}

// Store is the read-only song table. After construction nothing mutates it,
// so one Store is shared by all request goroutines without locking.
type Store struct {
	source string
	songs  []Song
	byTier [NumTiers][]int
}

// NewStore builds a Store from songs in the given order. Positions are
// reassigned to the slice index.
func NewStore(source string, songs []Song) *Store {
	s := &Store{source: source, songs: make([]Song, len(songs))}
	for i, song := range songs {
		song.Position = i
		s.songs[i] = song
		if t, ok := TierFor(song.Popularity); ok {
			s.byTier[t] = append(s.byTier[t], i)
		}
	}
	return s
}

// Source names where the catalog was loaded from.
func (s *Store) Source() string {
	return s.source
}

// Len returns the number of songs, including songs outside every tier.
func (s *Store) Len() int {
	return len(s.songs)
}

// Songs returns a copy of the full catalog in insertion order.
func (s *Store) Songs() []Song {
	out := make([]Song, len(s.songs))
	copy(out, s.songs)
	return out
}

// SongsInTier returns the songs whose popularity falls in tier, in insertion
// order. An empty tier yields an empty, non-nil slice; an undefined tier
// yields nil.
func (s *Store) SongsInTier(tier Tier) []Song {
	if !tier.Valid() {
		return nil
	}
	idx := s.byTier[tier]
	out := make([]Song, len(idx))
	for i, j := range idx {
		out[i] = s.songs[j]
	}
	return out
}

// TierCounts returns the number of songs per tier.
func (s *Store) TierCounts() map[Tier]int {
	out := make(map[Tier]int, NumTiers)
	for _, t := range Tiers() {
		out[t] = len(s.byTier[t])
	}
	return out
}
