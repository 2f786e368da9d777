package specerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrResolve indicates a reference resolution failure.
	ErrResolve = errors.New("resolve error")

	// ErrPointerNotFound indicates a JSON-Pointer segment that does not exist.
	ErrPointerNotFound = errors.New("pointer segment not found")

	// ErrDepthExceeded indicates the maximum resolution depth was exceeded.
	// This is how reference cycles surface: the resolver bounds depth rather
	// than tracking visited pointers.
	ErrDepthExceeded = errors.New("resolution depth exceeded")

	// ErrResolutionDisabled indicates a resolution mode (remote or local)
	// that was explicitly turned off.
	ErrResolutionDisabled = errors.New("resolution mode disabled")

	// ErrUnknownScheme indicates a pointer scheme with no registered resolver.
	ErrUnknownScheme = errors.New("unknown pointer scheme")

	// ErrPattern indicates a field-name pattern validation failure.
	ErrPattern = errors.New("pattern error")

	// ErrPass indicates a transformation pass failed inside the scheduler.
	ErrPass = errors.New("pass error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ResolveError represents a failure to resolve a pointer.
// This includes invalid pointer syntax, missing segments, depth limits,
// disabled resolution modes, and unregistered custom schemes.
type ResolveError struct {
	// Pointer is the pointer string that failed to resolve
	Pointer string
	// Source indicates the resolution source: "inline", "local", "remote", or "custom"
	Source string
	// NotFound is true when a JSON-Pointer segment does not exist
	// (missing object key or out-of-range array index)
	NotFound bool
	// DepthExceeded is true when the maximum resolution depth was hit
	DepthExceeded bool
	// Disabled is true when the required resolution mode is turned off
	Disabled bool
	// UnknownScheme is true when the pointer uses an unregistered scheme
	UnknownScheme bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ResolveError) Error() string {
	msg := "resolve error"
	if e.Pointer != "" {
		msg += fmt.Sprintf(" for %q", e.Pointer)
	}
	if e.Source != "" {
		msg += " (" + e.Source + ")"
	}
	switch {
	case e.NotFound:
		msg += ": segment not found"
	case e.DepthExceeded:
		msg += ": depth exceeded"
	case e.Disabled:
		msg += ": resolution mode disabled"
	case e.UnknownScheme:
		msg += ": unknown scheme"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Matches ErrResolve always, and the condition-specific sentinels when
// the corresponding flag is set.
func (e *ResolveError) Is(target error) bool {
	switch target {
	case ErrResolve:
		return true
	case ErrPointerNotFound:
		return e.NotFound
	case ErrDepthExceeded:
		return e.DepthExceeded
	case ErrResolutionDisabled:
		return e.Disabled
	case ErrUnknownScheme:
		return e.UnknownScheme
	}
	return false
}

// PatternError represents a field-name pattern validation failure,
// such as unbalanced braces in a path template or invalid media-type grammar.
type PatternError struct {
	// Field is the field name that failed validation
	Field string
	// Family is the pattern family that was being validated
	Family string
	// Message describes the validation failure
	Message string
}

// Error returns a human-readable error message.
func (e *PatternError) Error() string {
	msg := "pattern error"
	if e.Family != "" {
		msg += " (" + e.Family + ")"
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" for %q", e.Field)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PatternError) Is(target error) bool {
	return target == ErrPattern
}

// PassError represents a transformation pass failing inside the scheduler.
// It identifies the failing pass and iteration so callers can report which
// stage of the pipeline broke; output from prior passes is not affected.
type PassError struct {
	// Pass is the name of the failing pass
	Pass string
	// Iteration is the 1-based scheduler iteration in which the pass failed
	Iteration int
	// Cause is the error returned by the pass
	Cause error
}

// Error returns a human-readable error message.
func (e *PassError) Error() string {
	msg := "pass error"
	if e.Pass != "" {
		msg += fmt.Sprintf(" in %q", e.Pass)
	}
	if e.Iteration > 0 {
		msg += fmt.Sprintf(" (iteration %d)", e.Iteration)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PassError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PassError) Is(target error) bool {
	return target == ErrPass
}

// ResourceLimitError represents a resource limit being exceeded,
// such as document size, cached document count, or nesting depth.
type ResourceLimitError struct {
	// ResourceType identifies the limited resource (e.g. "document_size")
	ResourceType string
	// Limit is the configured maximum
	Limit int64
	// Actual is the observed value that exceeded the limit
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += " for " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit %d, actual %d)", e.Limit, e.Actual)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the offending option name, if known
	Option string
	// Message describes the configuration problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
