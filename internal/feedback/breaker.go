// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package feedback

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerConfig holds circuit breaker settings for the sink.
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32        // allowed through while half-open
	Interval         time.Duration // closed-state count reset period
	Timeout          time.Duration // how long to stay open
	FailureThreshold uint32        // consecutive failures before opening
}

// DefaultBreakerConfig returns production defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "feedback-sink",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          15 * time.Second,
		FailureThreshold: 5,
	}
}

// BreakerSink guards a Sink with a circuit breaker so a failing store is
// not hammered by retries. Reads bypass the breaker.
type BreakerSink struct {
	next Sink
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// NewBreakerSink wraps next. onChange, when non-nil, is told about every
// state transition.
func NewBreakerSink(next Sink, cfg BreakerConfig, onChange func(from, to gobreaker.State)) *BreakerSink {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// Cancellation is the caller giving up, not the store failing.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	if onChange != nil {
		settings.OnStateChange = func(_ string, from, to gobreaker.State) {
			onChange(from, to)
		}
	}
	return &BreakerSink{next: next, cb: gobreaker.NewCircuitBreaker[struct{}](settings)}
}

// Append implements Sink. While open it fails fast with gobreaker.ErrOpenState.
func (b *BreakerSink) Append(ctx context.Context, records []Record) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Append(ctx, records)
	})
	return err
}

// ListBySession implements Sink.
func (b *BreakerSink) ListBySession(ctx context.Context, sessionID string) ([]Record, error) {
	return b.next.ListBySession(ctx, sessionID)
}

// State returns the current breaker state.
func (b *BreakerSink) State() gobreaker.State {
	return b.cb.State()
}

// Open reports whether writes are currently rejected.
func (b *BreakerSink) Open() bool {
	return b.cb.State() == gobreaker.StateOpen
}
