// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package feedback

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const recordKeyPrefix = "feedback:"

// BadgerSink stores rows in BadgerDB, one key per row:
//
//	feedback:<hex(session)>:<unix-nanos, zero padded>:<rank>:<row id>
//
// so a prefix scan over one session yields its rows in write order. The
// session ID is hex encoded because IDs may contain the ':' separator.
type BadgerSink struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a database at dir. An empty dir opens an
// in-memory database.
func OpenBadger(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open feedback store %q: %w", dir, err)
	}
	return db, nil
}

// NewBadgerSink wraps an open database. The caller owns db and closes it.
func NewBadgerSink(db *badger.DB) *BadgerSink {
	return &BadgerSink{db: db}
}

// sessionPrefix is the key prefix shared by every row of one session.
func sessionPrefix(sessionID string) string {
	return recordKeyPrefix + hex.EncodeToString([]byte(sessionID)) + ":"
}

func recordKey(r *Record) []byte {
	return []byte(fmt.Sprintf("%s%020d:%03d:%s",
		sessionPrefix(r.SessionID), r.Timestamp.UnixNano(), r.Rank, r.ID))
}

// Append implements Sink. All rows are written in a single transaction.
func (s *BadgerSink) Append(ctx context.Context, records []Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	return s.db.Update(func(txn *badger.Txn) error {
		for i := range records {
			data, err := json.Marshal(&records[i])
			if err != nil {
				return fmt.Errorf("marshal record: %w", err)
			}
			if err := txn.Set(recordKey(&records[i]), data); err != nil {
				return fmt.Errorf("set record: %w", err)
			}
		}
		return nil
	})
}

// ListBySession implements Sink.
func (s *BadgerSink) ListBySession(ctx context.Context, sessionID string) ([]Record, error) {
	out := []Record{}
	prefix := []byte(sessionPrefix(sessionID))

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var r Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			}); err != nil {
				return fmt.Errorf("decode record: %w", err)
			}
			out = append(out, r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list session %s: %w", sessionID, err)
	}
	return out, nil
}
