// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// CodeValidation is the API error code for every rejected request value.
const CodeValidation = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one rejected field. Field is the wire name, i.e. the
// query parameter or JSON key the client sent.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Value   interface{}
	Message string
}

// RequestValidationError collects every field that failed validation.
type RequestValidationError struct {
	Fields []FieldError
}

func (e *RequestValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// APIError is the code/message/details triple the api package renders.
// models.APIError has the same shape; it is not imported here so that
// models can depend on validation.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError renders the failure for a response body. A single failure puts
// field, tag and value in Details; several failures are listed under
// Details["fields"] and joined into the message as "field: message".
func (e *RequestValidationError) ToAPIError() *APIError {
	switch len(e.Fields) {
	case 0:
		return &APIError{Code: CodeValidation, Message: "Validation failed"}
	case 1:
		f := e.Fields[0]
		return &APIError{
			Code:    CodeValidation,
			Message: f.Message,
			Details: map[string]interface{}{"field": f.Field, "tag": f.Tag, "value": f.Value},
		}
	}

	list := make([]map[string]interface{}, 0, len(e.Fields))
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		list = append(list, map[string]interface{}{"field": f.Field, "tag": f.Tag, "message": f.Message})
		parts = append(parts, f.Field+": "+f.Message)
	}
	return &APIError{
		Code:    CodeValidation,
		Message: strings.Join(parts, "; "),
		Details: map[string]interface{}{"fields": list},
	}
}

// GetValidator returns the shared validator with the "finite" rule registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(wireName)
		// Only empty tags or nil funcs make registration fail.
		_ = validate.RegisterValidation("finite", isFinite)
	})
	return validate
}

// ValidateStruct checks s against its validate tags. It returns nil when s
// is valid.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{Fields: []FieldError{{Field: "unknown", Tag: "unknown", Message: err.Error()}}}
	}

	out := &RequestValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: describe(fe),
		})
	}
	return out
}

func isFinite(fl validator.FieldLevel) bool {
	v := fl.Field()
	if k := v.Kind(); k != reflect.Float32 && k != reflect.Float64 {
		return true
	}
	f := v.Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// wireName prefers the query tag, then the json tag, then the Go name.
func wireName(f reflect.StructField) string {
	for _, key := range []string{"query", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		switch name {
		case "":
			continue
		case "-":
			return ""
		default:
			return name
		}
	}
	return f.Name
}

// describe turns a failed rule into a message addressed to the client.
func describe(fe validator.FieldError) string {
	name, param := fe.Field(), fe.Param()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "finite":
		return name + " must be a finite number"
	case "latitude":
		return name + " must be a valid latitude (-90 to 90)"
	case "longitude":
		return name + " must be a valid longitude (-180 to 180)"
	case "uuid", "uuid4":
		return name + " must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", name, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", name, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", name, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", name, param, unit)
	default:
		return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
	}
}
