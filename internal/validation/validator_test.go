// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package validation

import (
	"math"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type listRequest struct {
	Type   string   `query:"type" validate:"max=64"`
	Search string   `query:"search" validate:"max=200"`
	Lat    *float64 `query:"lat" validate:"omitempty,finite,gte=-90,lte=90"`
	Lng    *float64 `query:"lng" validate:"omitempty,finite,gte=-180,lte=180"`
	TopN   int      `query:"top" validate:"min=1,max=100"`
}

type feedbackBody struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

func ptr(f float64) *float64 { return &f }

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input listRequest
	}{
		{name: "defaults", input: listRequest{TopN: 5}},
		{name: "all type", input: listRequest{Type: "all", TopN: 1}},
		{name: "type with space and hyphen", input: listRequest{Type: "Home-Goods Outlet", TopN: 100}},
		{name: "unicode type", input: listRequest{Type: "café", TopN: 5}},
		{name: "type with punctuation", input: listRequest{Type: "home & garden", TopN: 5}},
		{name: "search with punctuation", input: listRequest{Search: "123 Main St.", TopN: 5}},
		{name: "coordinate bounds", input: listRequest{Lat: ptr(-90), Lng: ptr(180), TopN: 5}},
		{name: "origin", input: listRequest{Lat: ptr(40.7128), Lng: ptr(-74.0060), TopN: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     listRequest
		wantField string
		wantTag   string
	}{
		{name: "top zero", input: listRequest{}, wantField: "top", wantTag: "min"},
		{name: "top too large", input: listRequest{TopN: 101}, wantField: "top", wantTag: "max"},
		{name: "type too long", input: listRequest{Type: strings.Repeat("a", 65), TopN: 5}, wantField: "type", wantTag: "max"},
		{name: "search too long", input: listRequest{Search: strings.Repeat("s", 201), TopN: 5}, wantField: "search", wantTag: "max"},
		{name: "lat above range", input: listRequest{Lat: ptr(90.5), TopN: 5}, wantField: "lat", wantTag: "lte"},
		{name: "lng below range", input: listRequest{Lng: ptr(-181), TopN: 5}, wantField: "lng", wantTag: "gte"},
		{name: "lat NaN", input: listRequest{Lat: ptr(math.NaN()), TopN: 5}, wantField: "lat", wantTag: "finite"},
		{name: "lng infinite", input: listRequest{Lng: ptr(math.Inf(1)), TopN: 5}, wantField: "lng", wantTag: "finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			if len(err.Fields) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(err.Fields), err)
			}
			if got := err.Fields[0]; got.Field != tt.wantField || got.Tag != tt.wantTag {
				t.Errorf("got %s/%s, want %s/%s", got.Field, got.Tag, tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_JSONNames(t *testing.T) {
	err := ValidateStruct(&feedbackBody{Rating: 9, Comment: strings.Repeat("x", 2001)})
	if err == nil {
		t.Fatal("expected validation error")
	}

	got := map[string]string{}
	for _, f := range err.Fields {
		got[f.Field] = f.Tag
	}
	if got["rating"] != "max" {
		t.Errorf("rating tag = %q, want max", got["rating"])
	}
	if got["comment"] != "max" {
		t.Errorf("comment tag = %q, want max", got["comment"])
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&feedbackBody{})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != CodeValidation {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}
	if apiErr.Message != "rating is required" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "rating is required")
	}
	if apiErr.Details["field"] != "rating" {
		t.Errorf("Details[field] = %v, want rating", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&listRequest{Type: "bad!", TopN: 0})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != CodeValidation {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("got %d field errors, want 2", len(fields))
	}
	if !strings.Contains(apiErr.Message, "type:") || !strings.Contains(apiErr.Message, "top:") {
		t.Errorf("Message should name both fields: %q", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != CodeValidation || apiErr.Message != "Validation failed" {
		t.Errorf("empty ToAPIError() = %+v", apiErr)
	}
	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty Error() should be the generic message")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{name: "numeric min", input: &listRequest{}, want: "top must be at least 1"},
		{name: "string max", input: &listRequest{Search: strings.Repeat("s", 201), TopN: 1}, want: "search must be at most 200 characters"},
		{name: "lte", input: &listRequest{Lat: ptr(91), TopN: 1}, want: "lat must be less than or equal to 90"},
		{name: "finite", input: &listRequest{Lat: ptr(math.NaN()), TopN: 1}, want: "lat must be a finite number"},
		{name: "required", input: &feedbackBody{}, want: "rating is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}
