// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

// Package recommend ranks catalog songs against an emotion query.
//
// # Algorithm
//
// A recommendation runs five steps over a read-only catalog:
//
//  1. Filter: keep the songs in the requested popularity tier.
//  2. Encode: turn the 1 or 2 query emotions into a Vector in the same
//     six-dimensional space as the catalog. Every query carries a total
//     weight of 1.0, so {happy} encodes as happy=1.0 and {happy, sad} as
//     happy=0.5, sad=0.5.
//  3. Score: compare the query with every candidate using a bounded,
//     symmetric measure (cosine by default). A zero vector on either side
//     scores 0.
//  4. Rank: snap each score to a multiple of Epsilon and round it to
//     Precision, then order by that value, highest first. Equal values keep
//     catalog insertion order.
//  5. Truncate: keep the first K matches.
//
// # Purity
//
// Engine.Recommend never logs, performs I/O or mutates the catalog. The same
// query against the same catalog always yields the same ordered result, so
// one Engine serves any number of concurrent callers. Persisting or logging
// the result is the caller's business.
//
// # Usage
//
//	store, err := catalog.LoadFile("data/songs.csv")
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig())
//	res, err := engine.Recommend(recommend.Query{
//	    Emotions: []string{"happy", "confident"},
//	    Tier:     2,
//	})
package recommend
