// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/moodwave/internal/logging"
	"github.com/tomtom215/moodwave/internal/metrics"
	"github.com/tomtom215/moodwave/internal/session"
)

// BatchPublisher accepts batches for asynchronous storage. *Pipeline
// satisfies it.
type BatchPublisher interface {
	Publish(ctx context.Context, batch Batch) error
}

type discardPublisher struct{}

func (discardPublisher) Publish(context.Context, Batch) error { return nil }

// Discard is a BatchPublisher that drops everything. Used when feedback
// collection is disabled.
var Discard BatchPublisher = discardPublisher{}

// Recorder turns served recommendations and ratings into feedback rows.
type Recorder struct {
	pub BatchPublisher
	now func() time.Time
}

// NewRecorder returns a Recorder publishing to pub. A nil pub discards.
func NewRecorder(pub BatchPublisher) *Recorder {
	if pub == nil {
		pub = Discard
	}
	return &Recorder{pub: pub, now: time.Now}
}

// RecordRecommendation logs one row per served song. Empty
// recommendations produce no rows.
func (r *Recorder) RecordRecommendation(ctx context.Context, sess session.Session, rec *session.Recommendation) (int, error) {
	if rec == nil || len(rec.Matches) == 0 {
		return 0, nil
	}
	rows := Rows(sess, rec, PhaseRecommended, nil, "", r.now())
	return r.publish(ctx, PhaseRecommended, rows)
}

// RecordFeedback logs the listener's rating of rec, one row per song.
// rating must be 1..5; mood may be empty.
func (r *Recorder) RecordFeedback(ctx context.Context, sess session.Session, rec *session.Recommendation, rating int, mood string) (int, error) {
	if rating < MinRating || rating > MaxRating {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
	m, err := ParseMood(mood)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, session.ErrNoRecommendation
	}

	metrics.RecordRating(rating)
	if len(rec.Matches) == 0 {
		return 0, nil
	}

	rows := Rows(sess, rec, PhaseFeedback, &rating, m, r.now())
	return r.publish(ctx, PhaseFeedback, rows)
}

func (r *Recorder) publish(ctx context.Context, phase Phase, rows []Record) (int, error) {
	batch := Batch{ID: uuid.NewString(), Phase: phase, Records: rows}
	if err := r.pub.Publish(ctx, batch); err != nil {
		logging.Ctx(ctx).Warn().Err(err).
			Str("phase", string(phase)).
			Int("rows", len(rows)).
			Msg("feedback batch not published")
		return 0, err
	}
	return len(rows), nil
}
