// Package validation collects per-field violations for loosely typed input.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Violation codes.
const (
	CodeRequired        = "required"
	CodeMustBePositive  = "must_be_positive"
	CodeOutOfRange      = "out_of_range"
	CodeInvalid         = "invalid"
	CodeUnauthenticated = "unauthenticated"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Err returns a *Error when any violation was recorded, nil otherwise.
func (v Violations) Err() error {
	if v.Empty() {
		return nil
	}
	out := make(Violations, len(v))
	for k, code := range v {
		out[k] = code
	}
	return &Error{Violations: out}
}

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = CodeRequired
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = CodeMustBePositive
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = CodeOutOfRange
	}
}

func RangeInt(field string, val, minVal, maxVal int, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = CodeOutOfRange
	}
}

func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = CodeInvalid
}

// Error is returned when input fails validation. Callers must re-collect
// input; nothing downstream has been invoked.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Violations))
	for k := range e.Violations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, e.Violations[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Fail builds a single-field validation error.
func Fail(field, code string) error {
	return &Error{Violations: Violations{field: code}}
}

// AsError reports whether err carries a validation error and returns it.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
