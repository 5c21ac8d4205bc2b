// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// ===================================================================================================
// Request Struct Tests
// ===================================================================================================

func TestValidateStruct_PredictRequest(t *testing.T) {
	tests := []struct {
		name     string
		ratings  map[int]float64
		wantTag  string
		wantPass bool
	}{
		{"single rating", map[int]float64{260: 5}, "", true},
		{"unrated zero allowed", map[int]float64{260: 5, 589: 0}, "", true},
		{"fractional rating", map[int]float64{1: 3.5}, "", true},
		{"nil map", nil, "required", false},
		{"empty map", map[int]float64{}, "min", false},
		{"rating above five", map[int]float64{260: 6}, "lte", false},
		{"negative rating", map[int]float64{260: -1}, "gte", false},
		{"zero movie id", map[int]float64{0: 4}, "gt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&PredictRequest{Ratings: tt.ratings})
			if tt.wantPass {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := err.Errors()[0].Tag(); got != tt.wantTag {
				t.Errorf("tag = %q, want %q", got, tt.wantTag)
			}
			if !strings.HasPrefix(err.Errors()[0].Field(), "Ratings") {
				t.Errorf("field = %q, want Ratings...", err.Errors()[0].Field())
			}
		})
	}
}

func TestValidateStruct_TooManyRatings(t *testing.T) {
	ratings := make(map[int]float64, MaxRatingsPerRequest+1)
	for i := 1; i <= MaxRatingsPerRequest+1; i++ {
		ratings[i] = 3
	}
	err := ValidateStruct(&PredictRequest{Ratings: ratings})
	if err == nil || err.Errors()[0].Tag() != "max" {
		t.Fatalf("ValidateStruct() = %v, want max violation", err)
	}
	if !strings.Contains(err.Error(), "at most 5000 entries") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidateStruct_ExplainRequest(t *testing.T) {
	if err := ValidateStruct(&ExplainRequest{MovieID: 1198, Ratings: map[int]float64{260: 4}}); err != nil {
		t.Fatalf("valid request: %v", err)
	}
	err := ValidateStruct(&ExplainRequest{MovieID: 0, Ratings: map[int]float64{260: 4}})
	if err == nil || err.Errors()[0].Field() != "MovieID" {
		t.Fatalf("ValidateStruct() = %v, want MovieID failure", err)
	}
}

func TestValidateStruct_GenreRequest(t *testing.T) {
	if err := ValidateStruct(&GenreRequest{Genre: "Comedy", Limit: 10}); err != nil {
		t.Fatalf("valid request: %v", err)
	}
	if err := ValidateStruct(&GenreRequest{}); err != nil {
		t.Fatalf("empty genre is left to the engine: %v", err)
	}
	err := ValidateStruct(&GenreRequest{Genre: strings.Repeat("x", 101)})
	if err == nil || err.Errors()[0].Tag() != "max" {
		t.Fatalf("ValidateStruct() = %v, want max violation", err)
	}
	if !strings.Contains(err.Error(), "characters") {
		t.Errorf("message = %q, want string length wording", err.Error())
	}
}

// ===================================================================================================
// APIError Conversion Tests
// ===================================================================================================

func TestToAPIError_Single(t *testing.T) {
	err := ValidateStruct(&GenreRequest{Genre: "Drama", Limit: -1})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr := err.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Message != "Limit must be greater than or equal to 0" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "Limit" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIError_Multiple(t *testing.T) {
	err := ValidateStruct(&GenreRequest{Genre: strings.Repeat("x", 101), Limit: -1})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details = %v, want two fields", apiErr.Details)
	}
	if !strings.Contains(apiErr.Message, "; ") {
		t.Errorf("Message = %q, want joined messages", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty Error() message mismatch")
	}
}
