// internal/server/response_builder.go
package server

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/afsarahmad786/basicValidation/internal/validation"
)

// ResponseBuilder provides utilities for constructing consistent API responses.
type ResponseBuilder struct{}

// newResponseBuilder creates a new response builder instance.
func newResponseBuilder() *ResponseBuilder { return &ResponseBuilder{} }

// RegisterResponse is the payload returned for an accepted registration.
type RegisterResponse struct {
	Success bool
	// Data is reserved for the registered user and is currently empty.
	Data    struct{}
	Message string
	Errors  []validation.FieldError
}

// ValidationFailedResponse lists every failed rule of a rejected registration.
type ValidationFailedResponse struct {
	Errors []validation.FieldError
}

// ErrorResponse standardizes error responses.
type ErrorResponse struct {
	Success bool
	Error   string
	Message string
	Details any
}

// BuildRegisterResponse constructs the success payload, converting keys to camelCase.
func (rb *ResponseBuilder) BuildRegisterResponse() any {
	response := RegisterResponse{
		Success: true,
		Message: MessageUserRegistered,
		Errors:  []validation.FieldError{},
	}
	return toCamelCaseMap(response)
}

// BuildValidationFailedResponse constructs the 400 payload for failed rules, converting keys to camelCase.
func (rb *ResponseBuilder) BuildValidationFailedResponse(errs validation.Errors) any {
	response := ValidationFailedResponse{
		Errors: append([]validation.FieldError{}, errs...),
	}
	return toCamelCaseMap(response)
}

// BuildErrorResponse constructs a standardized error response, converting keys to camelCase.
func (rb *ResponseBuilder) BuildErrorResponse(errorCode, errorMessage string, details any) any {
	response := ErrorResponse{
		Success: false,
		Error:   errorCode,
		Message: errorMessage,
		Details: details,
	}
	return toCamelCaseMap(response)
}

func toCamelCaseMap(data any) any {
	val := reflect.ValueOf(data)

	// Handle Pointers
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	// Handle Slices/Arrays
	if val.Kind() == reflect.Slice || val.Kind() == reflect.Array {
		out := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = toCamelCaseMap(val.Index(i).Interface())
		}
		return out
	}

	// Handle Structs
	if val.Kind() == reflect.Struct {
		out := make(map[string]any)
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			// Skip unexported fields
			if field.PkgPath != "" {
				continue
			}
			out[camelKey(field.Name)] = toCamelCaseMap(val.Field(i).Interface())
		}
		return out
	}

	// Return primitives as-is
	return data
}

// camelKey lowers the leading word of an exported field name, keeping common
// acronyms readable: "ID" -> "id", "RequestID" -> "requestId", "DOB" -> "dob".
func camelKey(name string) string {
	for _, acronym := range []string{"ID", "URL", "DOB"} {
		if name == acronym {
			return strings.ToLower(name)
		}
		if strings.HasSuffix(name, acronym) {
			prefix := name[:len(name)-len(acronym)]
			return lowerFirst(prefix) + acronym[:1] + strings.ToLower(acronym[1:])
		}
	}
	return lowerFirst(name)
}

// lowerFirst lowers the first rune of a string
func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
