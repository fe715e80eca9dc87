package exercise

import (
	"errors"
	"fmt"
)

// Kind is a coarse classification callers map to exit codes and HTTP
// statuses.
type Kind string

const (
	KindUnknownExercise Kind = "unknown_exercise"
	KindInvalidInput    Kind = "invalid_input"
	KindExecution       Kind = "execution"
)

// OpError wraps a failure with the operation, kind and exercise name.
type OpError struct {
	Op       string
	Kind     Kind
	Exercise string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Exercise != "" {
		base += fmt.Sprintf(" (exercise=%s)", e.Exercise)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an OpError of the given kind.
func IsKind(err error, kind Kind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InputError reports input that does not match an exercise's convention.
type InputError struct {
	Line int // 1-based; 0 when the whole input is at fault
	Err  error
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Invalid marks err as an input problem not tied to one line.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return &InputError{Err: err}
}
