// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingSweeper struct {
	sweeps atomic.Int32
}

func (c *countingSweeper) Sweep() int {
	c.sweeps.Add(1)
	return 1
}

func (c *countingSweeper) Len() int { return 0 }

func TestSessionSweeperService(t *testing.T) {
	t.Parallel()

	sweeper := &countingSweeper{}
	svc := NewSessionSweeperService(sweeper, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)

	deadline := time.Now().Add(2 * time.Second)
	for sweeper.sweeps.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := awaitErr(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if sweeper.sweeps.Load() < 2 {
		t.Errorf("swept %d times, want at least 2", sweeper.sweeps.Load())
	}
}

func TestNewSessionSweeperService_DefaultInterval(t *testing.T) {
	t.Parallel()

	svc := NewSessionSweeperService(&countingSweeper{}, 0)
	if svc.interval != 5*time.Minute {
		t.Errorf("interval = %v, want 5m", svc.interval)
	}
	if svc.String() != "session-sweeper" {
		t.Errorf("String() = %q", svc.String())
	}
}
