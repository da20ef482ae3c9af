// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package services

import (
	"context"
	"time"

	"github.com/tomtom215/moodwave/internal/logging"
	"github.com/tomtom215/moodwave/internal/metrics"
)

// SessionSweeper evicts expired sessions. *session.Store satisfies it.
type SessionSweeper interface {
	Sweep() int
	Len() int
}

// SessionSweeperService sweeps expired sessions on a fixed interval and
// keeps the active-sessions gauge current between requests.
type SessionSweeperService struct {
	sessions SessionSweeper
	interval time.Duration
	name     string
}

// NewSessionSweeperService sweeps every interval; non-positive means 5m.
func NewSessionSweeperService(sessions SessionSweeper, interval time.Duration) *SessionSweeperService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SessionSweeperService{
		sessions: sessions,
		interval: interval,
		name:     "session-sweeper",
	}
}

// Serve implements suture.Service.
func (s *SessionSweeperService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *SessionSweeperService) sweep() {
	removed := s.sessions.Sweep()
	active := s.sessions.Len()
	metrics.SetSessionsActive(active)
	if removed > 0 {
		logging.Debug().Int("removed", removed).Int("active", active).Msg("Expired sessions swept")
	}
}

// String names the service in supervisor logs.
func (s *SessionSweeperService) String() string {
	return s.name
}
