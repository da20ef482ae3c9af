// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"github.com/tomtom215/moodwave/internal/logging"
	"github.com/tomtom215/moodwave/internal/metrics"
)

// Topics on the in-process bus.
const (
	TopicRecords = "feedback.records"
	TopicPoison  = "feedback.poison"
)

const metadataCorrelationID = "correlation_id"

// PipelineConfig tunes delivery of batches to the sink.
type PipelineConfig struct {
	// Buffer is the gochannel output buffer per subscriber.
	Buffer int64

	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64

	// CloseTimeout bounds how long Close waits for in-flight batches.
	CloseTimeout time.Duration
}

// DefaultPipelineConfig returns production defaults.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Buffer:               256,
		RetryMaxRetries:      3,
		RetryInitialInterval: 200 * time.Millisecond,
		RetryMaxInterval:     5 * time.Second,
		RetryMultiplier:      2.0,
		CloseTimeout:         10 * time.Second,
	}
}

// Pipeline moves batches from HTTP handlers to the sink asynchronously:
//
//	Publish -> gochannel(feedback.records) -> router -> Sink.Append
//
// Failed appends are retried with exponential backoff; batches that still
// fail are routed to feedback.poison, logged and dropped.
type Pipeline struct {
	pubsub *gochannel.GoChannel
	router *message.Router
	sink   Sink
	logger watermill.LoggerAdapter
}

// NewPipeline wires the bus, router and handlers. Call Run to start
// consuming.
func NewPipeline(cfg PipelineConfig, sink Sink, logger watermill.LoggerAdapter) (*Pipeline, error) {
	if sink == nil {
		return nil, errors.New("feedback sink is required")
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	pubsub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: cfg.Buffer}, logger)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create feedback router: %w", err)
	}

	poison, err := middleware.PoisonQueue(pubsub, TopicPoison)
	if err != nil {
		return nil, fmt.Errorf("create poison queue: %w", err)
	}

	// Outermost first: poison only sees errors that survived every retry.
	router.AddMiddleware(
		poison,
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      cfg.RetryMaxRetries,
			InitialInterval: cfg.RetryInitialInterval,
			MaxInterval:     cfg.RetryMaxInterval,
			Multiplier:      cfg.RetryMultiplier,
			Logger:          logger,
		}.Middleware,
	)

	p := &Pipeline{pubsub: pubsub, router: router, sink: sink, logger: logger}
	router.AddConsumerHandler("feedback-sink", TopicRecords, pubsub, p.store)
	router.AddConsumerHandler("feedback-poison", TopicPoison, pubsub, p.drop)
	return p, nil
}

// Publish enqueues a batch. It returns once the batch is on the bus, not
// once it is stored.
func (p *Pipeline) Publish(ctx context.Context, batch Batch) error {
	if len(batch.Records) == 0 {
		return nil
	}
	payload, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}

	msg := message.NewMessage(batch.ID, payload)
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set(metadataCorrelationID, id)
	}
	if err := p.pubsub.Publish(TopicRecords, msg); err != nil {
		return fmt.Errorf("publish batch: %w", err)
	}
	return nil
}

// Run consumes until ctx is cancelled or Close is called.
func (p *Pipeline) Run(ctx context.Context) error {
	return p.router.Run(ctx)
}

// Running is closed once handlers are subscribed.
func (p *Pipeline) Running() <-chan struct{} {
	return p.router.Running()
}

// Close stops the router, then the bus.
func (p *Pipeline) Close() error {
	rerr := p.router.Close()
	perr := p.pubsub.Close()
	return errors.Join(rerr, perr)
}

func (p *Pipeline) store(msg *message.Message) error {
	var batch Batch
	if err := json.Unmarshal(msg.Payload, &batch); err != nil {
		// Undecodable payloads will never succeed; let poison take them.
		return fmt.Errorf("decode batch %s: %w", msg.UUID, err)
	}

	err := p.sink.Append(msg.Context(), batch.Records)
	if err != nil {
		p.logger.Error("feedback append failed", err, watermill.LogFields{
			"batch_id": batch.ID,
			"rows":     len(batch.Records),
		})
		return err
	}
	metrics.RecordFeedbackRows(string(batch.Phase), len(batch.Records), nil)
	return nil
}

func (p *Pipeline) drop(msg *message.Message) error {
	var batch Batch
	_ = json.Unmarshal(msg.Payload, &batch)
	metrics.RecordFeedbackRows(string(batch.Phase), len(batch.Records), errors.New("dropped"))
	p.logger.Error("feedback batch dropped", errors.New(msg.Metadata.Get(middleware.ReasonForPoisonedKey)), watermill.LogFields{
		"batch_id":       batch.ID,
		"rows":           len(batch.Records),
		"correlation_id": msg.Metadata.Get(metadataCorrelationID),
	})
	return nil
}
