// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Popularity bounds accepted at load time.
const (
	MinPopularity = 0
	MaxPopularity = 99
)

const (
	colTitle      = "title"
	colArtist     = "artist"
	colPopularity = "popularity"
)

// LoadFile reads a CSV dataset from path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &CatalogLoadError{Source: path, Err: fmt.Errorf("%w: %v", ErrCatalogMissing, err)}
		}
		return nil, &CatalogLoadError{Source: path, Err: err}
	}
	defer f.Close()

	return parse(path, f)
}

// Load reads a CSV dataset from r.
//
// The header names the columns: title, artist, popularity and any subset of
// the emotion labels, in any order. Missing emotion columns weigh 0. Lines
// starting with '#' are ignored.
func Load(r io.Reader) (*Store, error) {
	return parse("reader", r)
}

// layout maps header columns to their meaning.
type layout struct {
	title, artist, popularity int
	emotions                  []emotionColumn
	width                     int
}

type emotionColumn struct {
	index   int
	emotion Emotion
}

func parseHeader(header []string) (layout, error) {
	l := layout{title: -1, artist: -1, popularity: -1, width: len(header)}
	seen := make(map[string]bool, len(header))

	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff")))
		if seen[name] {
			return l, fmt.Errorf("%w: %q", ErrDuplicateCol, name)
		}
		seen[name] = true

		switch name {
		case colTitle:
			l.title = i
		case colArtist:
			l.artist = i
		case colPopularity:
			l.popularity = i
		default:
			e, err := ParseEmotion(name)
			if err != nil {
				return l, fmt.Errorf("%w: %q is neither a field nor an emotion", ErrUnknownColumn, raw)
			}
			l.emotions = append(l.emotions, emotionColumn{index: i, emotion: e})
		}
	}

	for _, req := range []struct {
		name string
		idx  int
	}{{colTitle, l.title}, {colArtist, l.artist}, {colPopularity, l.popularity}} {
		if req.idx < 0 {
			return l, fmt.Errorf("%w: %s", ErrMissingColumn, req.name)
		}
	}
	return l, nil
}

func (l layout) song(rec []string) (Song, error) {
	if len(rec) != l.width {
		return Song{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(rec), l.width)
	}

	s := Song{
		Title:  strings.TrimSpace(rec[l.title]),
		Artist: strings.TrimSpace(rec[l.artist]),
	}
	if s.Title == "" {
		return Song{}, fmt.Errorf("%w: %s", ErrEmptyField, colTitle)
	}
	if s.Artist == "" {
		return Song{}, fmt.Errorf("%w: %s", ErrEmptyField, colArtist)
	}

	pop, err := strconv.Atoi(strings.TrimSpace(rec[l.popularity]))
	if err != nil {
		return Song{}, fmt.Errorf("%w: %q is not an integer", ErrPopularity, rec[l.popularity])
	}
	if pop < MinPopularity || pop > MaxPopularity {
		return Song{}, fmt.Errorf("%w: %d not in [%d,%d]", ErrPopularity, pop, MinPopularity, MaxPopularity)
	}
	s.Popularity = pop

	for _, col := range l.emotions {
		e := col.emotion
		raw := strings.TrimSpace(rec[col.index])
		if raw == "" {
			continue
		}
		w, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w < 0 || w > 1 {
			return Song{}, fmt.Errorf("%w: %s=%q", ErrEmotionWeight, e, raw)
		}
		s.Vector[e] = w
	}
	return s, nil
}

func parse(source string, r io.Reader) (*Store, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &CatalogLoadError{Source: source, Err: ErrEmptyDataset}
	}
	if err != nil {
		return nil, &CatalogLoadError{Source: source, Line: csvLine(err), Err: err}
	}
	l, err := parseHeader(header)
	if err != nil {
		line, _ := cr.FieldPos(0)
		return nil, &CatalogLoadError{Source: source, Line: line, Err: err}
	}

	var songs []Song
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &CatalogLoadError{Source: source, Line: csvLine(err), Err: err}
		}
		line, _ := cr.FieldPos(0)
		song, err := l.song(rec)
		if err != nil {
			return nil, &CatalogLoadError{Source: source, Line: line, Err: err}
		}
		songs = append(songs, song)
	}

	return NewStore(source, songs), nil
}

func csvLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}

// Loader loads a catalog file exactly once, however many goroutines ask for
// it. The first result, store or error, is returned to every caller.
type Loader struct {
	path  string
	load  func(string) (*Store, error)
	once  sync.Once
	store *Store
	err   error
}

// NewLoader returns a Loader for the dataset at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path, load: LoadFile}
}

// Store returns the loaded catalog, loading it on first use.
func (l *Loader) Store() (*Store, error) {
	l.once.Do(func() {
		l.store, l.err = l.load(l.path)
	})
	return l.store, l.err
}

// Path returns the dataset path.
func (l *Loader) Path() string {
	return l.path
}
