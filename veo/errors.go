package veo

import (
	"fmt"
	"strings"
	"time"
)

// InvalidParameterError indicates a combination of request parameters
// that the vendor rejects, detected before any network call.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter combination: %s: %s", e.Field, e.Reason)
}

// UnknownEnumError indicates a value outside a fixed enumeration.
type UnknownEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s %q (must be one of: %s)",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// GenerationError carries the vendor's error detail for a generation
// that reached a terminal failed state.
type GenerationError struct {
	OperationID string
	Detail      string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("video generation failed: %s", e.Detail)
}

// TimeoutError indicates the poll loop exhausted its attempt ceiling
// before the operation reached a terminal state.
type TimeoutError struct {
	OperationID string
	Attempts    int
	Elapsed     time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("video generation timed out after %d attempts (%s)",
		e.Attempts, e.Elapsed)
}
