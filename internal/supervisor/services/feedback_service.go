// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moodwave/internal/logging"
)

// FeedbackRouter is the lifecycle of *feedback.Pipeline.
type FeedbackRouter interface {
	Run(ctx context.Context) error
	Running() <-chan struct{}
	Close() error
}

// FeedbackRouterService runs the feedback pipeline's watermill router.
//
// A watermill router cannot be started twice, so the service runs once:
// an unexpected stop is logged and reported as suture.ErrDoNotRestart.
// Recommendations keep being served; their feedback rows are dropped.
type FeedbackRouterService struct {
	router    FeedbackRouter
	name      string
	ran       atomic.Bool
	ready     chan struct{}
	readyOnce sync.Once
}

// NewFeedbackRouterService wraps router.
func NewFeedbackRouterService(router FeedbackRouter) *FeedbackRouterService {
	return &FeedbackRouterService{
		router: router,
		name:   "feedback-router",
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the router is subscribed or the service has stopped,
// whichever comes first. Gate the HTTP listener on it: a router that fails
// to start must not keep recommendations offline.
func (s *FeedbackRouterService) Ready() <-chan struct{} {
	return s.ready
}

func (s *FeedbackRouterService) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// Serve implements suture.Service.
func (s *FeedbackRouterService) Serve(ctx context.Context) error {
	defer s.markReady()
	if !s.ran.CompareAndSwap(false, true) {
		return suture.ErrDoNotRestart
	}

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-s.router.Running():
			s.markReady()
		case <-stopped:
		}
	}()

	runErr := s.router.Run(ctx)
	closeErr := s.router.Close()

	if ctx.Err() != nil {
		if closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Feedback router close failed")
		}
		return ctx.Err()
	}

	if runErr == nil {
		runErr = errors.New("router stopped")
	}
	logging.Error().Err(errors.Join(runErr, closeErr)).
		Msg("Feedback router stopped unexpectedly; feedback rows are no longer stored")
	return suture.ErrDoNotRestart
}

// String names the service in supervisor logs.
func (s *FeedbackRouterService) String() string {
	return s.name
}
