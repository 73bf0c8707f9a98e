package record

import (
	"fmt"
	"strings"
)

// Issue is one structured validation defect: the element index, the field
// that failed, the raw offending value and a user-facing message.
type Issue struct {
	Index int
	Field string
	Value any
	Msg   string
}

// NotNumericIssue builds the canonical "not a valid number" Issue for the
// element at index whose field holds value.
func NotNumericIssue(index int, field string, value any) Issue {
	return Issue{
		Index: index,
		Field: field,
		Value: value,
		Msg:   fmt.Sprintf("sample %d %s field [%v] is not a valid number", index, field, value),
	}
}

// ValidationError is an accumulation of every Issue found by one validation
// stage. It is created only with at least one Issue, carries the invoking
// operation's sentinel so errors.Is(err, sentinel) matches, and renders all
// issue messages joined into a single string intended for the end user.
type ValidationError struct {
	sentinel error
	issues   []Issue
}

// NewValidationError wraps issues under sentinel. issues must be non-empty;
// callers accumulate first and construct only when something failed.
func NewValidationError(sentinel error, issues []Issue) *ValidationError {
	return &ValidationError{sentinel: sentinel, issues: issues}
}

// Error joins every issue message with "; ", prefixed by the sentinel text.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.issues))
	for i, is := range e.issues {
		msgs[i] = is.Msg
	}

	return e.sentinel.Error() + ": " + strings.Join(msgs, "; ")
}

// Unwrap exposes the operation sentinel for errors.Is matching.
func (e *ValidationError) Unwrap() error { return e.sentinel }

// Issues returns the structured defect list in accumulation order.
func (e *ValidationError) Issues() []Issue { return e.issues }
