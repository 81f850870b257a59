package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:    "/path/to/swagger.json",
			Offset:  42,
			Message: "invalid JSON",
			Cause:   errors.New("unexpected end"),
		}
		assert.Equal(t, "parse error in /path/to/swagger.json at offset 42: invalid JSON: unexpected end", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "parse error", (&ParseError{}).Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		assert.Same(t, cause, err.Unwrap())
	})

	t.Run("Matches sentinel through wrapping", func(t *testing.T) {
		err := fmt.Errorf("pipeline: %w", &ParseError{Path: "a.json"})
		assert.ErrorIs(t, err, ErrParse)
		assert.NotErrorIs(t, err, ErrWrite)
	})
}

func TestReferenceError(t *testing.T) {
	err := &ReferenceError{Ref: "Item.json", Location: "Order.json#/properties/item", IsCircular: true}
	assert.Equal(t, "circular reference: Item.json at Order.json#/properties/item", err.Error())
	assert.ErrorIs(t, err, ErrReference)
	assert.ErrorIs(t, err, ErrCircularReference)

	plain := &ReferenceError{Ref: "missing.json", Message: "file not found"}
	assert.Equal(t, "reference error: missing.json: file not found", plain.Error())
	assert.NotErrorIs(t, plain, ErrCircularReference)
}

func TestDiagnosticError(t *testing.T) {
	err := &DiagnosticError{Diagnostic: "boom", Message: "missing prefix"}
	assert.Equal(t, `unparsable bundler diagnostic: missing prefix ("boom")`, err.Error())
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrDiagnostic)
}

func TestWriteError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &WriteError{Path: "definitions/Pet.json", Cause: cause}
	assert.Equal(t, "write error for definitions/Pet.json: permission denied", err.Error())
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, cause)
}

func TestBundlerError(t *testing.T) {
	tests := []struct {
		name string
		err  *BundlerError
		want string
	}{
		{
			name: "exit code",
			err:  &BundlerError{Command: "swagger-cli bundle x.json -r", ExitCode: 2, Message: "no output"},
			want: "bundler error (swagger-cli bundle x.json -r): exit code 2: no output",
		},
		{
			name: "timeout",
			err:  &BundlerError{Command: "swagger-cli", ExitCode: -1, TimedOut: true},
			want: "bundler timed out (swagger-cli)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrBundler)
		})
	}
}

func TestNoProgressError(t *testing.T) {
	err := &NoProgressError{Definition: "Order", Property: "items", Attempt: 3}
	assert.Equal(t, "no progress: cycle at Order.items is already excluded (attempt 3)", err.Error())
	assert.ErrorIs(t, err, ErrNoProgress)
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "attempts", Limit: 10, Actual: 11}
	assert.Equal(t, "resource limit exceeded: attempts (limit: 10, actual: 11)", err.Error())
	assert.ErrorIs(t, err, ErrResourceLimit)
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "timeout", Value: "-1s", Message: "must be positive"}
	assert.Equal(t, "configuration error for timeout (value: -1s): must be positive", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("attempt 2: %w", &DiagnosticError{Diagnostic: "x"})
	var diagErr *DiagnosticError
	if assert.ErrorAs(t, wrapped, &diagErr) {
		assert.Equal(t, "x", diagErr.Diagnostic)
	}
}
