// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

// Package catalog holds the static song corpus the recommender ranks.
//
// A catalog is a CSV file with a header row:
//
//	title,artist,popularity,happy,sad,relaxed,angry,focus,confident
//	Dynamite,BTS,88,0.95,0,0.2,0,0.1,0.8
//
// Columns may appear in any order and emotion columns may be omitted (their
// weight is 0). Popularity must be an integer in [0,99] and every emotion
// weight a number in [0,1]. Any violation aborts the load with a
// *CatalogLoadError carrying the offending line.
//
// Songs are bucketed into three popularity tiers:
//
//	tier 0: 60-70
//	tier 1: 71-80
//	tier 2: 81-99
//
// Songs below 60 stay in the catalog but are never returned by SongsInTier.
//
// A Store never changes after it is built. Use Loader when several
// goroutines may race to perform the initial load.
package catalog
