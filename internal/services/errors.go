package services

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Credential failures returned by Login
var (
	ErrUnknownEmail    = errors.New("email is not registered")
	ErrAccountDisabled = errors.New("account is disabled")
	ErrWrongPassword   = errors.New("wrong password")
)

// ErrUnauthenticated is returned when the token subject no longer resolves to a user
var ErrUnauthenticated = errors.New("unauthenticated")

// ValidationError carries per-field messages of a rejected request
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// newValidationError converts ozzo field errors; other errors are returned unchanged
func newValidationError(err error) error {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string][]string, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		if fieldErr != nil {
			fields[field] = []string{fieldErr.Error()}
		}
	}
	return &ValidationError{Fields: fields}
}
