// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/moodwave/internal/logging"
)

func fastPipelineConfig() PipelineConfig {
	cfg := DefaultPipelineConfig()
	cfg.RetryMaxRetries = 2
	cfg.RetryInitialInterval = time.Millisecond
	cfg.RetryMaxInterval = 5 * time.Millisecond
	cfg.CloseTimeout = time.Second
	return cfg
}

func startPipeline(t *testing.T, sink Sink) *Pipeline {
	t.Helper()

	p, err := NewPipeline(fastPipelineConfig(), sink, nil)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		_ = p.Close()
		<-done
	})

	select {
	case <-p.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("pipeline did not start")
	}
	return p
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNewPipeline_RequiresSink(t *testing.T) {
	t.Parallel()

	if _, err := NewPipeline(fastPipelineConfig(), nil, nil); err == nil {
		t.Error("NewPipeline(nil sink) succeeded")
	}
}

func TestPipeline_DeliversToSink(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	p := startPipeline(t, sink)

	sess, rec := testRecommendation()
	ctx := logging.ContextWithCorrelationID(context.Background(), "corr-1")
	r := NewRecorder(p)

	if n, err := r.RecordRecommendation(ctx, sess, rec); err != nil || n != 2 {
		t.Fatalf("RecordRecommendation = %d, %v", n, err)
	}
	if n, err := r.RecordFeedback(ctx, sess, rec, 4, "same"); err != nil || n != 2 {
		t.Fatalf("RecordFeedback = %d, %v", n, err)
	}

	waitFor(t, func() bool { return sink.Len() == 4 })

	rows, err := sink.ListBySession(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	var rated int
	for _, row := range rows {
		if row.Phase == PhaseFeedback {
			rated++
			if row.Rating == nil || *row.Rating != 4 || row.MoodAfter != MoodSame {
				t.Errorf("feedback row lost its rating: %+v", row)
			}
		}
	}
	if rated != 2 {
		t.Errorf("rated rows = %d, want 2", rated)
	}
}

func TestPipeline_RetriesTransientFailure(t *testing.T) {
	t.Parallel()

	sink := &flakySink{MemorySink: NewMemorySink(), failFirst: 1}
	p := startPipeline(t, sink)

	sess, rec := testRecommendation()
	if _, err := NewRecorder(p).RecordRecommendation(context.Background(), sess, rec); err != nil {
		t.Fatalf("RecordRecommendation: %v", err)
	}
	waitFor(t, func() bool { return sink.Len() == 2 })
	if got := sink.calls.Load(); got != 2 {
		t.Errorf("sink called %d times, want 2", got)
	}
}

func TestPipeline_DropsAfterRetries(t *testing.T) {
	t.Parallel()

	sink := &flakySink{MemorySink: NewMemorySink()}
	sink.failing.Store(true)
	p := startPipeline(t, sink)

	sess, rec := testRecommendation()
	if _, err := NewRecorder(p).RecordRecommendation(context.Background(), sess, rec); err != nil {
		t.Fatalf("RecordRecommendation: %v", err)
	}

	// One initial attempt plus MaxRetries.
	want := int32(fastPipelineConfig().RetryMaxRetries + 1)
	waitFor(t, func() bool { return sink.calls.Load() >= want })

	// A later batch still flows once the store recovers.
	sink.failing.Store(false)
	if _, err := NewRecorder(p).RecordRecommendation(context.Background(), sess, rec); err != nil {
		t.Fatalf("RecordRecommendation: %v", err)
	}
	waitFor(t, func() bool { return sink.Len() >= 2 })
}
