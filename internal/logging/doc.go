// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

// Package logging provides the zerolog-based structured logger used across Moodwave.
//
// A single global logger is configured once from main via Init and is then
// reached through the level helpers (Info, Warn, Err, ...). Request-scoped
// fields travel on the context:
//
//	ctx = logging.ContextWithRequestID(ctx, logging.GenerateRequestID())
//	ctx = logging.ContextWithSessionID(ctx, sessionID)
//	logging.Ctx(ctx).Info().Int("results", n).Msg("recommendation served")
//
// # Output
//
// Format "json" (default) writes one JSON object per line. Format "console"
// writes colourised human-readable lines for local development.
//
// # Adapters
//
// Two adapters route third-party logs into the same zerolog stream:
//
//   - SlogHandler implements slog.Handler for suture (through sutureslog).
//   - WatermillAdapter implements watermill.LoggerAdapter for the feedback pipeline.
//
// Always terminate event chains with Msg or Send; an unterminated chain is
// never written.
package logging
