package errs

import (
	"errors"
	"sort"
	"strings"
)

// ErrValidation marks every ValidationError so callers can match with errors.Is.
var ErrValidation = errors.New("validation failed")

// FieldErrors maps a request field name to a user-facing message.
type FieldErrors map[string]string

// Add keeps the first message recorded for a field.
func (f FieldErrors) Add(field, msg string) {
	if _, exists := f[field]; exists {
		return
	}
	f[field] = msg
}

func (f FieldErrors) Merge(other FieldErrors) {
	for k, v := range other {
		f.Add(k, v)
	}
}

// Err returns nil when no field failed.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Fields: FieldErrors{field: msg}}
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
