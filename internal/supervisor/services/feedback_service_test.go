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

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moodwave/internal/feedback"
)

// fakeRouter blocks in Run until ctx is done, or returns runErr at once
// without ever reporting itself running.
type fakeRouter struct {
	runErr  error
	runs    atomic.Int32
	closes  atomic.Int32
	running chan struct{}
}

func newFakeRouter(runErr error) *fakeRouter {
	return &fakeRouter{runErr: runErr, running: make(chan struct{})}
}

func (f *fakeRouter) Run(ctx context.Context) error {
	f.runs.Add(1)
	if f.runErr != nil {
		return f.runErr
	}
	close(f.running)
	<-ctx.Done()
	return nil
}

func (f *fakeRouter) Running() <-chan struct{} {
	return f.running
}

func (f *fakeRouter) Close() error {
	f.closes.Add(1)
	return nil
}

func TestFeedbackRouterService_Shutdown(t *testing.T) {
	t.Parallel()

	router := newFakeRouter(nil)
	svc := NewFeedbackRouterService(router)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)
	cancel()

	if err := awaitErr(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if router.closes.Load() != 1 {
		t.Errorf("Close called %d times, want 1", router.closes.Load())
	}
	if svc.String() != "feedback-router" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestFeedbackRouterService_StopIsPermanent(t *testing.T) {
	t.Parallel()

	router := newFakeRouter(errors.New("subscribe failed"))
	svc := NewFeedbackRouterService(router)

	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("expected ErrDoNotRestart, got %v", err)
	}
	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("second Serve: expected ErrDoNotRestart, got %v", err)
	}
	if router.runs.Load() != 1 {
		t.Errorf("Run called %d times, want 1", router.runs.Load())
	}
}

func TestFeedbackRouterService_Ready(t *testing.T) {
	t.Parallel()

	t.Run("closes when the router runs", func(t *testing.T) {
		t.Parallel()

		svc := NewFeedbackRouterService(newFakeRouter(nil))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		errCh := serveAsync(ctx, svc)

		select {
		case <-svc.Ready():
		case <-time.After(2 * time.Second):
			t.Fatal("Ready not closed while router runs")
		}
		select {
		case err := <-errCh:
			t.Fatalf("Serve returned early: %v", err)
		default:
		}
	})

	t.Run("closes when the router fails to start", func(t *testing.T) {
		t.Parallel()

		svc := NewFeedbackRouterService(newFakeRouter(errors.New("subscribe failed")))
		errCh := serveAsync(context.Background(), svc)

		select {
		case <-svc.Ready():
		case <-time.After(2 * time.Second):
			t.Fatal("Ready not closed after router failure")
		}
		if err := awaitErr(t, errCh); !errors.Is(err, suture.ErrDoNotRestart) {
			t.Errorf("expected ErrDoNotRestart, got %v", err)
		}
	})

	t.Run("unblocks the HTTP listener after a failed start", func(t *testing.T) {
		t.Parallel()

		fb := NewFeedbackRouterService(newFakeRouter(errors.New("subscribe failed")))
		server := newFakeHTTPServer()
		httpSvc := NewHTTPServerService(server, time.Second).WaitFor(fb.Ready())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		httpErr := serveAsync(ctx, httpSvc)
		_ = awaitErr(t, serveAsync(ctx, fb))

		select {
		case <-server.started:
		case <-time.After(2 * time.Second):
			t.Fatal("HTTP server never listened")
		}
		cancel()
		_ = awaitErr(t, httpErr)
	})
}

func TestFeedbackRouterService_RealPipeline(t *testing.T) {
	t.Parallel()

	sink := feedback.NewMemorySink()
	cfg := feedback.DefaultPipelineConfig()
	cfg.CloseTimeout = time.Second
	pipeline, err := feedback.NewPipeline(cfg, sink, nil)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	svc := NewFeedbackRouterService(pipeline)
	errCh := serveAsync(ctx, svc)

	select {
	case <-svc.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline did not start")
	}

	batch := feedback.Batch{ID: "b-1", Phase: feedback.PhaseRecommended, Records: []feedback.Record{
		{ID: "r-1", SessionID: "sess-svc", Phase: feedback.PhaseRecommended, Rank: 1, Title: "Song"},
	}}
	if err := pipeline.Publish(context.Background(), batch); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for sink.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sink.Len() != 1 {
		t.Fatalf("sink holds %d rows, want 1", sink.Len())
	}

	cancel()
	if err := awaitErr(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
