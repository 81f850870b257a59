package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates the source document or an exclusion table could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a circular $ref was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrDiagnostic indicates bundler output that does not follow the cycle grammar.
	ErrDiagnostic = errors.New("unparsable bundler diagnostic")

	// ErrWrite indicates a filesystem write failure.
	ErrWrite = errors.New("write error")

	// ErrBundler indicates the bundler failed without a usable diagnostic.
	ErrBundler = errors.New("bundler error")

	// ErrNoProgress indicates the resolution loop could not derive a new exclusion.
	ErrNoProgress = errors.New("no progress")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a document.
// This includes JSON syntax errors and documents without an object at the top level.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Offset is the byte offset where the error occurred (0 if unknown)
	Offset int64
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
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
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a failure to resolve a $ref.
// This includes missing references and circular references.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Location is where the offending $ref lives, as "<file>#<pointer>"
	Location string
	// IsCircular is true if this error is due to a circular reference
	IsCircular bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Location != "" {
		msg += " at " + e.Location
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
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	return target == ErrCircularReference && e.IsCircular
}

// DiagnosticError represents bundler output that could not be turned into
// an exclusion. The resolution loop treats it as fatal.
type DiagnosticError struct {
	// Diagnostic is the offending line of bundler output
	Diagnostic string
	// Message describes which part of the grammar was violated
	Message string
}

// Error returns a human-readable error message.
func (e *DiagnosticError) Error() string {
	msg := "unparsable bundler diagnostic"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Diagnostic != "" {
		msg += fmt.Sprintf(" (%q)", e.Diagnostic)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DiagnosticError) Is(target error) bool {
	return target == ErrDiagnostic
}

// WriteError represents a failure to write an output file or directory.
type WriteError struct {
	// Path is the file or directory being written
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteError) Error() string {
	msg := "write error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// BundlerError represents a bundler invocation that neither produced a bundle
// nor a diagnostic, or that was stopped by a timeout.
type BundlerError struct {
	// Command is the command line that was executed
	Command string
	// ExitCode is the process exit code (-1 if the process did not exit normally)
	ExitCode int
	// TimedOut is true if the bounded wait expired
	TimedOut bool
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *BundlerError) Error() string {
	msg := "bundler error"
	if e.TimedOut {
		msg = "bundler timed out"
	}
	if e.Command != "" {
		msg += fmt.Sprintf(" (%s)", e.Command)
	}
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(": exit code %d", e.ExitCode)
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
func (e *BundlerError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *BundlerError) Is(target error) bool {
	return target == ErrBundler
}

// NoProgressError is returned when the bundler keeps reporting a cycle that the
// exclusion table already covers, so another attempt would produce the same result.
type NoProgressError struct {
	// Definition is the definition named by the repeated diagnostic
	Definition string
	// Property is the property named by the repeated diagnostic
	Property string
	// Attempt is the attempt number that produced the repeated diagnostic
	Attempt int
}

// Error returns a human-readable error message.
func (e *NoProgressError) Error() string {
	return fmt.Sprintf("no progress: cycle at %s.%s is already excluded (attempt %d)", e.Definition, e.Property, e.Attempt)
}

// Is reports whether target matches this error type.
func (e *NoProgressError) Is(target error) bool {
	return target == ErrNoProgress
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "attempts", "ref_depth", "nesting_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
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

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
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
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
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
