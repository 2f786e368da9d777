package specerrors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveErrorSentinels(t *testing.T) {
	tests := []struct {
		name    string
		err     *ResolveError
		matches []error
		misses  []error
	}{
		{
			name:    "not found",
			err:     &ResolveError{Pointer: "#/a/missing", Source: "inline", NotFound: true},
			matches: []error{ErrResolve, ErrPointerNotFound},
			misses:  []error{ErrDepthExceeded, ErrResolutionDisabled, ErrUnknownScheme},
		},
		{
			name:    "depth exceeded",
			err:     &ResolveError{Pointer: "a.yaml#/A", Source: "local", DepthExceeded: true},
			matches: []error{ErrResolve, ErrDepthExceeded},
			misses:  []error{ErrPointerNotFound},
		},
		{
			name:    "disabled",
			err:     &ResolveError{Pointer: "https://example.com/api.yaml", Source: "remote", Disabled: true},
			matches: []error{ErrResolve, ErrResolutionDisabled},
			misses:  []error{ErrUnknownScheme},
		},
		{
			name:    "unknown scheme",
			err:     &ResolveError{Pointer: "registry://pets/Pet", UnknownScheme: true},
			matches: []error{ErrResolve, ErrUnknownScheme},
			misses:  []error{ErrResolutionDisabled},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, target := range tt.matches {
				assert.ErrorIs(t, tt.err, target)
			}
			for _, target := range tt.misses {
				assert.NotErrorIs(t, tt.err, target)
			}
		})
	}
}

func TestResolveErrorMessage(t *testing.T) {
	err := &ResolveError{
		Pointer:  "#/a/b",
		Source:   "inline",
		NotFound: true,
		Message:  "missing key: b",
	}
	assert.Equal(t, `resolve error for "#/a/b" (inline): segment not found: missing key: b`, err.Error())
}

func TestResolveErrorUnwrap(t *testing.T) {
	err := &ResolveError{
		Pointer: "./pets.yaml#/Pet",
		Source:  "local",
		Cause:   os.ErrNotExist,
	}
	assert.ErrorIs(t, err, os.ErrNotExist)

	var resErr *ResolveError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &resErr)
	assert.Equal(t, "./pets.yaml#/Pet", resErr.Pointer)
}

func TestPatternError(t *testing.T) {
	err := &PatternError{Field: "/pets/{id", Family: "path-template", Message: "unbalanced braces"}
	assert.ErrorIs(t, err, ErrPattern)
	assert.NotErrorIs(t, err, ErrResolve)
	assert.Equal(t, `pattern error (path-template) for "/pets/{id": unbalanced braces`, err.Error())
}

func TestPassError(t *testing.T) {
	cause := errors.New("boom")
	err := &PassError{Pass: "dispatch", Iteration: 2, Cause: cause}
	assert.ErrorIs(t, err, ErrPass)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `pass error in "dispatch" (iteration 2): boom`, err.Error())
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{
		ResourceType: "document_size",
		Limit:        10,
		Actual:       12,
		Message:      "too large",
	}
	assert.ErrorIs(t, err, ErrResourceLimit)
	assert.Equal(t, "resource limit exceeded for document_size (limit 10, actual 12): too large", err.Error())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "maxDepth", Message: "cannot be negative"}
	assert.ErrorIs(t, err, ErrConfig)
	assert.Equal(t, "configuration error for maxDepth: cannot be negative", err.Error())
}
