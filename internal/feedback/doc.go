// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

/*
Package feedback records what listeners were served and how they rated it.

Every recommendation that returns songs is logged as one row per song
(phase "recommended"). When the listener later rates the recommendation,
the same songs are logged again carrying the rating and, optionally, how
their mood changed (phase "feedback").

Rows travel through an in-process Watermill bus so that HTTP handlers never
wait on storage:

	Recorder -> Pipeline (gochannel) -> BreakerSink -> BadgerSink

The breaker stops hammering a failing store. Batches that fail after every
retry are moved to a poison topic, logged and dropped; they never fail the
request that produced them.
*/
package feedback
