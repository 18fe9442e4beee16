package rta

import (
	"errors"
	"fmt"
)

// MalformedSystemError reports task-set text that could not be parsed.
// No System is created when it is returned.
type MalformedSystemError struct {
	Fragment string // offending fragment, empty for structural errors
	Pos      int    // byte offset in the input
	Reason   string
}

func (e *MalformedSystemError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("malformed system at offset %d: %s", e.Pos, e.Reason)
	}
	return fmt.Sprintf("malformed system at offset %d: %s: %q", e.Pos, e.Reason, e.Fragment)
}

var (
	// ErrEmptySystem is returned by computations that are undefined for
	// a zero-task system. Callers must guard n = 0 themselves.
	ErrEmptySystem = errors.New("system has no tasks")

	// ErrNoConvergence is returned when a fixed-point iteration exceeds
	// its configured cap.
	ErrNoConvergence = errors.New("fixed point not reached within iteration cap")
)

// NotSchedulable is the sentinel reported in a response-time sequence
// for a task whose recurrence did not reach a fixed point within the
// iteration cap. It is data, not an error: the rest of the analysis
// stays usable.
const NotSchedulable = -1
