// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package main

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/moodwave/internal/api"
	"github.com/tomtom215/moodwave/internal/config"
	"github.com/tomtom215/moodwave/internal/feedback"
	"github.com/tomtom215/moodwave/internal/logging"
	"github.com/tomtom215/moodwave/internal/metrics"
)

// feedbackComponents is the wired feedback log. When the log is disabled
// only recorder is set, and it discards rows.
type feedbackComponents struct {
	recorder *feedback.Recorder
	reader   api.FeedbackReader
	health   api.HealthCheck
	pipeline *feedback.Pipeline
	db       *badger.DB
}

// initFeedback builds BadgerDB -> circuit breaker -> watermill pipeline ->
// recorder. The pipeline is not started; the supervisor runs it.
func initFeedback(cfg *config.FeedbackConfig) (*feedbackComponents, error) {
	if !cfg.Enabled {
		logging.Info().Msg("Feedback log disabled (FEEDBACK_ENABLED=false)")
		return &feedbackComponents{recorder: feedback.NewRecorder(nil)}, nil
	}

	dir := cfg.Path
	if cfg.InMemory {
		dir = ""
	}
	db, err := feedback.OpenBadger(dir)
	if err != nil {
		return nil, err
	}

	breakerCfg := feedback.DefaultBreakerConfig()
	breakerCfg.FailureThreshold = cfg.BreakerFailureThreshold
	breakerCfg.Timeout = cfg.BreakerTimeout
	sink := feedback.NewBreakerSink(feedback.NewBadgerSink(db), breakerCfg, func(from, to gobreaker.State) {
		metrics.SetBreakerState(int(to))
		logging.Warn().
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("Feedback store circuit breaker changed state")
	})

	pipelineCfg := feedback.DefaultPipelineConfig()
	pipelineCfg.Buffer = cfg.Buffer
	pipelineCfg.RetryMaxRetries = cfg.RetryCount
	pipelineCfg.RetryInitialInterval = cfg.RetryInitialInterval
	pipelineCfg.RetryMaxInterval = cfg.RetryMaxInterval
	pipelineCfg.CloseTimeout = cfg.CloseTimeout

	pipeline, err := feedback.NewPipeline(pipelineCfg, sink,
		logging.NewWatermillAdapter(logging.WithComponent("feedback")))
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("Error closing feedback store")
		}
		return nil, fmt.Errorf("create feedback pipeline: %w", err)
	}

	logging.Info().
		Str("path", dir).
		Bool("in_memory", cfg.InMemory).
		Int("retries", cfg.RetryCount).
		Msg("Feedback log initialized")

	return &feedbackComponents{
		recorder: feedback.NewRecorder(pipeline),
		reader:   sink,
		health: func() (string, bool) {
			state := sink.State()
			return state.String(), state != gobreaker.StateOpen
		},
		pipeline: pipeline,
		db:       db,
	}, nil
}

// Close releases the feedback store. Call after the pipeline has stopped.
func (f *feedbackComponents) Close() error {
	if f.db == nil {
		return nil
	}
	return f.db.Close()
}
