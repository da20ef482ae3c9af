// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/moodwave/internal/catalog"
)

// Catalog is the read-only view the engine needs. *catalog.Store satisfies it.
type Catalog interface {
	SongsInTier(tier catalog.Tier) []catalog.Song
}

// Engine ranks catalog songs for emotion queries. It holds no mutable state.
type Engine struct {
	catalog Catalog
	config  Config
	measure Measure
}

// NewEngine returns an engine over cat. A nil cfg means DefaultConfig.
func NewEngine(cat Catalog, cfg *Config) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		catalog: cat,
		config:  *cfg,
		measure: measures[cfg.Measure],
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Recommend returns the top-K songs of q.Tier ranked by similarity to the
// query emotions.
//
//nolint:gocritic // hugeParam: q passed by value so callers cannot observe normalisation
func (e *Engine) Recommend(q Query) (*Result, error) {
	emotions, err := ParseEmotions(q.Emotions)
	if err != nil {
		return nil, err
	}
	tier := catalog.Tier(q.Tier)
	if !tier.Valid() {
		return nil, &InvalidTierError{Tier: q.Tier}
	}
	k := e.resolveK(q.K)

	res := &Result{
		Emotions: emotions,
		Tier:     tier,
		K:        k,
		Matches:  []Match{},
	}

	candidates := e.catalog.SongsInTier(tier)
	res.Candidates = len(candidates)
	if len(candidates) == 0 {
		return res, nil
	}

	ranked := e.rank(EncodeQuery(emotions), candidates)
	if len(ranked) > k {
		ranked = ranked[:k]
	}

	res.Matches = make([]Match, len(ranked))
	for i, s := range ranked {
		res.Matches[i] = Match{
			Title:      s.song.Title,
			Artist:     s.song.Artist,
			Popularity: s.song.Popularity,
			Similarity: s.key,
		}
	}
	return res, nil
}

// ParseEmotions validates raw labels into emotions, preserving order.
func ParseEmotions(labels []string) ([]catalog.Emotion, error) {
	if len(labels) < 1 || len(labels) > MaxQueryEmotions {
		return nil, &InvalidEmotionError{Count: len(labels)}
	}
	out := make([]catalog.Emotion, len(labels))
	for i, label := range labels {
		em, err := catalog.ParseEmotion(label)
		if err != nil {
			return nil, &InvalidEmotionError{Label: label, Count: len(labels)}
		}
		out[i] = em
	}
	return out, nil
}

// EncodeQuery spreads a total weight of 1.0 evenly across emotions, so one-
// and two-emotion queries have the same mass. A repeated emotion collects
// its full share on one dimension.
func EncodeQuery(emotions []catalog.Emotion) catalog.Vector {
	var v catalog.Vector
	if len(emotions) == 0 {
		return v
	}
	w := 1.0 / float64(len(emotions))
	for _, em := range emotions {
		if em.Valid() {
			v[em] += w
		}
	}
	return v
}

// resolveK applies the default and the cap.
func (e *Engine) resolveK(k int) int {
	if k <= 0 {
		return e.config.DefaultK
	}
	if k > e.config.MaxK {
		return e.config.MaxK
	}
	return k
}

// rank scores candidates and orders them by score, highest first.
//
// The sort key is the reported similarity: the raw score snapped to a
// multiple of Epsilon, then rounded to Precision. Songs with equal keys keep
// catalog insertion order. Comparing keys for equality keeps the ordering
// transitive, and the reported similarities never increase down the list.
func (e *Engine) rank(query catalog.Vector, candidates []catalog.Song) []scored {
	out := make([]scored, len(candidates))
	for i, song := range candidates {
		out[i] = scored{song: song, key: e.sortKey(e.measure(query, song.Vector))}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].key != out[j].key {
			return out[i].key > out[j].key
		}
		return out[i].song.Position < out[j].song.Position
	})
	return out
}

// sortKey maps a raw score to its reported similarity.
func (e *Engine) sortKey(score float64) float64 {
	if eps := e.config.Epsilon; eps > 0 {
		score = math.Round(score/eps) * eps
	}
	return round(score, e.config.Precision)
}

func round(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}
