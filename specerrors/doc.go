// Package specerrors provides structured error types for the specfold engine.
//
// Import path: github.com/erraggy/specfold/specerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides five core error types:
//
//   - [ResolveError]: $ref resolution failures (invalid pointers, missing
//     segments, depth limits, disabled modes, unregistered schemes)
//   - [PatternError]: field-name pattern validation failures
//   - [PassError]: a transformation pass failing inside the scheduler
//   - [ResourceLimitError]: resource exhaustion (depth, size, count limits)
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrResolve]: matches any [ResolveError]
//   - [ErrPointerNotFound]: matches [ResolveError] with NotFound=true
//   - [ErrDepthExceeded]: matches [ResolveError] with DepthExceeded=true
//   - [ErrResolutionDisabled]: matches [ResolveError] with Disabled=true
//   - [ErrUnknownScheme]: matches [ResolveError] with UnknownScheme=true
//   - [ErrPattern]: matches any [PatternError]
//   - [ErrPass]: matches any [PassError]
//   - [ErrResourceLimit]: matches any [ResourceLimitError]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	ref, err := res.Resolve(ctx, doc, "#/components/schemas/Pet")
//	if errors.Is(err, specerrors.ErrPointerNotFound) {
//	    // The pointer names a segment that does not exist
//	}
//
// Extract error details with errors.As():
//
//	var resErr *specerrors.ResolveError
//	if errors.As(err, &resErr) {
//	    fmt.Printf("failed to resolve: %s\n", resErr.Pointer)
//	    if resErr.DepthExceeded {
//	        // Reference chain too deep - likely a cycle
//	    }
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method,
// so root causes can be found through the standard error chain:
//
//	var resErr *specerrors.ResolveError
//	if errors.As(err, &resErr) {
//	    if errors.Is(resErr.Cause, os.ErrNotExist) {
//	        // The referenced file does not exist
//	    }
//	}
package specerrors
