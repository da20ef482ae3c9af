// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package catalog

import (
	"errors"
	"fmt"
)

// Causes wrapped by CatalogLoadError.
var (
	ErrMissingColumn  = errors.New("missing required column")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrDuplicateCol   = errors.New("duplicate column")
	ErrFieldCount     = errors.New("wrong number of fields")
	ErrEmptyField     = errors.New("empty field")
	ErrPopularity     = errors.New("popularity out of range")
	ErrEmotionWeight  = errors.New("emotion weight out of range")
	ErrEmptyDataset   = errors.New("dataset has no header")
	ErrCatalogMissing = errors.New("catalog source not found")
)

// CatalogLoadError reports why a dataset could not become a Store. It is
// fatal at startup.
//
//nolint:revive // name is part of the public contract
type CatalogLoadError struct {
	Source string // file path or "reader"
	Line   int    // 1-based; 0 when the failure is not tied to a line
	Err    error
}

func (e *CatalogLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("catalog %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("catalog %s: %v", e.Source, e.Err)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is, or wraps, a *CatalogLoadError.
func IsLoadError(err error) bool {
	var le *CatalogLoadError
	return errors.As(err, &le)
}
