// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

// Package session remembers the last recommendation shown to each listener
// so that a later rating can be attached to it. The recommender itself never
// sees this state.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/moodwave/internal/cache"
	"github.com/tomtom215/moodwave/internal/recommend"
)

// Lookup failures.
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrNoRecommendation = errors.New("session has no recommendation yet")
)

// Recommendation is a served result as the listener saw it.
type Recommendation struct {
	ID        string
	Emotion1  string
	Emotion2  string
	Tier      int
	Matches   []recommend.Match
	CreatedAt time.Time
}

// Session is the per-listener context.
type Session struct {
	ID        string
	UserID    string
	Last      *Recommendation
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Config sizes the store.
type Config struct {
	Capacity int
	TTL      time.Duration
}

// DefaultConfig keeps up to 10k listeners for two hours of inactivity.
func DefaultConfig() Config {
	return Config{Capacity: 10000, TTL: 2 * time.Hour}
}

// Store holds sessions in a bounded TTL cache.
type Store struct {
	sessions *cache.LRU[*Session]
	now      func() time.Time
}

// NewStore returns an empty store.
func NewStore(cfg Config) *Store {
	return &Store{
		sessions: cache.NewLRU[*Session](cfg.Capacity, cfg.TTL),
		now:      time.Now,
	}
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}

// Remember records rec as the latest recommendation of sessionID, creating
// the session when needed. It returns a copy of the stored session.
func (s *Store) Remember(sessionID, userID string, rec *recommend.Result) Session {
	now := s.now()
	first, second := rec.EmotionLabels()

	matches := make([]recommend.Match, len(rec.Matches))
	copy(matches, rec.Matches)

	last := &Recommendation{
		ID:        uuid.NewString(),
		Emotion1:  first,
		Emotion2:  second,
		Tier:      int(rec.Tier),
		Matches:   matches,
		CreatedAt: now,
	}

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		sess = &Session{ID: sessionID, CreatedAt: now}
	}
	// Replace rather than mutate so readers holding the old pointer keep a
	// consistent view.
	next := &Session{
		ID:        sess.ID,
		UserID:    sess.UserID,
		Last:      last,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: now,
	}
	if userID != "" {
		next.UserID = userID
	}
	s.sessions.Set(sessionID, next)
	return *next
}

// Last returns the most recent recommendation of sessionID.
func (s *Store) Last(sessionID string) (Session, *Recommendation, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return Session{}, nil, ErrSessionNotFound
	}
	if sess.Last == nil {
		return *sess, nil, ErrNoRecommendation
	}
	return *sess, sess.Last, nil
}

// Forget drops a session.
func (s *Store) Forget(sessionID string) bool {
	return s.sessions.Remove(sessionID)
}

// Len returns the number of tracked sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}

// Sweep drops expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	return s.sessions.CleanupExpired()
}
