// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodwave/internal/logging"
	"github.com/tomtom215/moodwave/internal/models"
	"github.com/tomtom215/moodwave/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeValidation          = validation.CodeValidation
	ErrCodeInvalidEmotion      = validation.CodeInvalidEmotion
	ErrCodeInvalidTier         = "INVALID_TIER"
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeSessionNotFound     = "SESSION_NOT_FOUND"
	ErrCodeNoRecommendation    = "NO_RECOMMENDATION"
	ErrCodeFeedbackUnavailable = "FEEDBACK_UNAVAILABLE"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
)

// sanitizeLogValue strips control characters from client-influenced values
// before they are logged.
func sanitizeLogValue(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// respondJSON writes response with the given status.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			RequestID:   logging.RequestIDFromContext(r.Context()),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError sends an error response. A non-nil err is logged, not sent.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondAPIError(w, nil, status, &models.APIError{Code: code, Message: message}, err)
}

// respondAPIError sends apiErr. r may be nil when no request is at hand.
func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	meta := models.Metadata{Timestamp: time.Now().UTC()}
	logger := logging.Logger()
	if r != nil {
		meta.RequestID = logging.RequestIDFromContext(r.Context())
		logger = *logging.Ctx(r.Context())
	}

	if err != nil {
		event := logger.Warn()
		if status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.Str("code", apiErr.Code).
			Int("status", status).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   models.StatusError,
		Data:     nil,
		Metadata: meta,
		Error:    apiErr,
	})
}

// validateRequest validates a struct using go-playground/validator.
func validateRequest(v interface{}) *models.APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}
	apiErr := verr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeJSON reads a single JSON object from the body into dst.
func decodeJSON(r *http.Request, dst interface{}) *models.APIError {
	if r.Body == nil {
		return &models.APIError{Code: ErrCodeInvalidJSON, Message: "Request body is required"}
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return &models.APIError{Code: ErrCodeInvalidJSON, Message: "Request body is required"}
		case errors.As(err, &maxErr):
			return &models.APIError{
				Code:    ErrCodeInvalidJSON,
				Message: fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit),
			}
		default:
			return &models.APIError{Code: ErrCodeInvalidJSON, Message: "Malformed JSON: " + err.Error()}
		}
	}
	if dec.More() {
		return &models.APIError{Code: ErrCodeInvalidJSON, Message: "Request body must hold a single JSON object"}
	}
	return nil
}
