// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type moodRequest struct {
	Emotions  []string `json:"emotions" validate:"required,min=1,max=2,dive,emotion"`
	SessionID string   `json:"session_id" validate:"omitempty,uuid4"`
	Rating    int      `json:"rating" validate:"min=1,max=5"`
	MoodAfter string   `json:"mood_after" validate:"omitempty,mood"`
	Note      string   `json:"note,omitempty" validate:"max=10"`
	Internal  string   `json:"-" validate:"omitempty,oneof=a b"`
}

func validRequest() moodRequest {
	return moodRequest{
		Emotions:  []string{"happy", "Focus"},
		SessionID: "0b5d7a7e-5a4a-4c52-9d8e-3f2a1b0c9d8e",
		Rating:    4,
		MoodAfter: "Better",
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*moodRequest)
	}{
		{"full request", func(*moodRequest) {}},
		{"one emotion", func(r *moodRequest) { r.Emotions = []string{"sad"} }},
		{"duplicate emotion", func(r *moodRequest) { r.Emotions = []string{"angry", "angry"} }},
		{"padded label", func(r *moodRequest) { r.Emotions = []string{" relaxed "} }},
		{"no session", func(r *moodRequest) { r.SessionID = "" }},
		{"no mood", func(r *moodRequest) { r.MoodAfter = "" }},
		{"boundary ratings", func(r *moodRequest) { r.Rating = 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validRequest()
			tt.mutate(&req)
			if err := ValidateStruct(&req); err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*moodRequest)
		wantField string
		wantTag   string
		wantCode  string
	}{
		{"unknown emotion", func(r *moodRequest) { r.Emotions = []string{"happy", "bored"} }, "emotions[1]", "emotion", CodeInvalidEmotion},
		{"no emotions", func(r *moodRequest) { r.Emotions = nil }, "emotions", "required", CodeValidation},
		{"three emotions", func(r *moodRequest) { r.Emotions = []string{"happy", "sad", "focus"} }, "emotions", "max", CodeValidation},
		{"bad session", func(r *moodRequest) { r.SessionID = "not-a-uuid" }, "session_id", "uuid4", CodeValidation},
		{"rating zero", func(r *moodRequest) { r.Rating = 0 }, "rating", "min", CodeValidation},
		{"rating six", func(r *moodRequest) { r.Rating = 6 }, "rating", "max", CodeValidation},
		{"bad mood", func(r *moodRequest) { r.MoodAfter = "meh" }, "mood_after", "mood", CodeValidation},
		{"long note", func(r *moodRequest) { r.Note = strings.Repeat("x", 11) }, "note", "max", CodeValidation},
		{"json dash falls back", func(r *moodRequest) { r.Internal = "c" }, "Internal", "oneof", CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validRequest()
			tt.mutate(&req)

			verr := ValidateStruct(&req)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if code := verr.ToAPIError().Code; code != tt.wantCode {
				t.Errorf("ToAPIError().Code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Rating = 9
	apiErr := ValidateStruct(&req).ToAPIError()

	if apiErr.Message != "rating must be at most 5" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "rating" || apiErr.Details["tag"] != "max" {
		t.Errorf("Details = %v", apiErr.Details)
	}
	if apiErr.Details["value"] != 9 {
		t.Errorf("Details[value] = %v, want 9", apiErr.Details["value"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Emotions = []string{"calm"}
	req.Rating = 0
	verr := ValidateStruct(&req)
	if verr == nil || len(verr.Errors()) != 2 {
		t.Fatalf("ValidateStruct() = %v, want 2 errors", verr)
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != CodeInvalidEmotion {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeInvalidEmotion)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %v", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "emotions[0]: emotions[0] must be one of: happy, sad, relaxed, angry, focus, confident") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("Error() = %q, want joined messages", verr.Error())
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	type shapes struct {
		Tags  []string `json:"tags" validate:"min=2"`
		Label string   `json:"label" validate:"min=3"`
		Count int      `json:"count" validate:"gte=1"`
	}
	verr := ValidateStruct(&shapes{Tags: []string{"a"}, Label: "ab", Count: 0})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want errors")
	}

	want := map[string]string{
		"tags":  "tags must be at least 2 items",
		"label": "label must be at least 3 characters",
		"count": "count must be greater than or equal to 1",
	}
	for _, e := range verr.Errors() {
		if w, ok := want[e.Field()]; !ok || e.Error() != w {
			t.Errorf("%s: message %q, want %q", e.Field(), e.Error(), w)
		}
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	ve := &RequestValidationError{}
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q", ve.Error())
	}
	if ve.ToAPIError().Code != CodeValidation {
		t.Errorf("Code = %q", ve.ToAPIError().Code)
	}
}
