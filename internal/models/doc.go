// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

/*
Package models defines the HTTP request and response shapes.

Every endpoint answers with an APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "..."}}
	{"status": "error", "data": null, "metadata": {...}, "error": {"code": "INVALID_TIER", "message": "..."}}

Request types carry validate tags checked by internal/validation; the
engine re-checks emotion labels and the popularity tier so that the same
error codes come back whichever layer catches a bad value.
*/
package models
