// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package api

import (
	"context"
	"time"

	"github.com/tomtom215/moodwave/internal/catalog"
	"github.com/tomtom215/moodwave/internal/feedback"
	"github.com/tomtom215/moodwave/internal/recommend"
	"github.com/tomtom215/moodwave/internal/session"
)

// Recommender produces ranked songs for a query. *recommend.Engine
// satisfies it.
type Recommender interface {
	Recommend(q recommend.Query) (*recommend.Result, error)
}

// FeedbackRecorder publishes feedback rows. *feedback.Recorder satisfies it.
type FeedbackRecorder interface {
	RecordRecommendation(ctx context.Context, sess session.Session, rec *session.Recommendation) (int, error)
	RecordFeedback(ctx context.Context, sess session.Session, rec *session.Recommendation, rating int, mood string) (int, error)
}

// FeedbackReader lists stored rows. Any feedback.Sink satisfies it.
type FeedbackReader interface {
	ListBySession(ctx context.Context, sessionID string) ([]feedback.Record, error)
}

// HealthCheck reports whether an optional dependency is degraded. It
// returns a short state name and whether traffic can still be served.
type HealthCheck func() (state string, ok bool)

// Dependencies wires a Handler. Feedback fields may be nil when the
// feedback log is disabled.
type Dependencies struct {
	Catalog        *catalog.Store
	Engine         Recommender
	Sessions       *session.Store
	Recorder       FeedbackRecorder
	FeedbackReader FeedbackReader
	FeedbackHealth HealthCheck
}

// Handler serves the HTTP API.
type Handler struct {
	catalog   *catalog.Store
	engine    Recommender
	sessions  *session.Store
	recorder  FeedbackRecorder
	reader    FeedbackReader
	fbHealth  HealthCheck
	startTime time.Time
}

// NewHandler creates a Handler from deps.
func NewHandler(deps Dependencies) *Handler {
	recorder := deps.Recorder
	if recorder == nil {
		recorder = feedback.NewRecorder(nil)
	}
	return &Handler{
		catalog:   deps.Catalog,
		engine:    deps.Engine,
		sessions:  deps.Sessions,
		recorder:  recorder,
		reader:    deps.FeedbackReader,
		fbHealth:  deps.FeedbackHealth,
		startTime: time.Now(),
	}
}
