// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package feedback

import (
	"context"
	"sync"
)

// Sink persists feedback rows.
type Sink interface {
	// Append stores records atomically: either all rows land or none do.
	Append(ctx context.Context, records []Record) error

	// ListBySession returns the rows of one session, oldest first.
	ListBySession(ctx context.Context, sessionID string) ([]Record, error)
}

// MemorySink keeps rows in process memory. Used in tests and when
// feedback.in_memory is set.
type MemorySink struct {
	mu   sync.RWMutex
	rows []Record
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Append implements Sink.
func (m *MemorySink) Append(ctx context.Context, records []Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, records...)
	return nil
}

// ListBySession implements Sink.
func (m *MemorySink) ListBySession(ctx context.Context, sessionID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []Record{}
	for _, r := range m.rows {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Len returns the number of stored rows.
func (m *MemorySink) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows)
}
