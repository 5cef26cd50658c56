package fatigue

import (
	"errors"
	"fmt"
)

// Validation failures. All are raised during normalization, before any
// score is computed; match them with errors.Is.
var (
	ErrInvalidShiftDuration = errors.New("invalid shift duration")
	ErrDuplicateDay         = errors.New("duplicate day")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrOutOfRangeParameter  = errors.New("parameter out of range")
)

// ValidationError ties a validation failure to the shift and field that caused it.
type ValidationError struct {
	Kind  error
	Day   int
	Field string
	// Global is set when the failure is in the pattern-wide parameters
	// rather than a specific shift; Day is meaningless then.
	Global bool
	Msg    string
}

func (e *ValidationError) Error() string {
	where := fmt.Sprintf("shift day %d", e.Day)
	if e.Global {
		where = "fatigue parameters"
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s: %v", where, e.Field, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v: %s", where, e.Field, e.Kind, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// KindName returns a stable identifier for the failure kind, for wire formats.
func (e *ValidationError) KindName() string {
	switch {
	case errors.Is(e.Kind, ErrInvalidShiftDuration):
		return "invalid_shift_duration"
	case errors.Is(e.Kind, ErrDuplicateDay):
		return "duplicate_day"
	case errors.Is(e.Kind, ErrMissingRequiredField):
		return "missing_required_field"
	case errors.Is(e.Kind, ErrOutOfRangeParameter):
		return "out_of_range_parameter"
	}
	return "invalid_input"
}

func shiftErr(kind error, day int, field, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Day: day, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func paramErr(field, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: ErrOutOfRangeParameter, Field: field, Global: true, Msg: fmt.Sprintf(format, args...)}
}
