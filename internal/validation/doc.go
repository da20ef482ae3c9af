// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator is built on first use and shared. It reports fields by
// their JSON names and adds two tags:
//
//   - emotion: the value must name one of the six emotions (any case)
//   - mood: the value must be better, same or worse (any case)
//
// # Quick Start
//
//	type FeedbackRequest struct {
//	    SessionID string `json:"session_id" validate:"required"`
//	    Rating    int    `json:"rating" validate:"min=1,max=5"`
//	    MoodAfter string `json:"mood_after" validate:"omitempty,mood"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// ToAPIError returns VALIDATION_ERROR, except that a failed emotion tag is
// reported as INVALID_EMOTION.
package validation
