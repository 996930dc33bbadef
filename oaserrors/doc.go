// Package oaserrors provides structured error types for the oasguard library.
//
// Import path: github.com/erraggy/oasguard/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides five core error types:
//
//   - [ParseError]: YAML/JSON parsing failures and structural issues
//   - [VersionError]: documents that are not OpenAPI 3.x (Swagger 2.0, missing version)
//   - [OperationError]: (method, path) lookup failures against the paths object
//   - [ReferenceError]: $ref values outside the supported grammar or with missing targets
//   - [ParameterError]: parameter objects with an unrecognized "in" location
//
// # Sentinel Errors
//
// Each failure condition has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrUnsupportedVersion]: Matches any [VersionError]
//   - [ErrPathNotFound]: Matches [OperationError] with MethodMissing=false
//   - [ErrMethodNotFound]: Matches [OperationError] with MethodMissing=true
//   - [ErrUnsupportedReference]: Matches [ReferenceError] with Unsupported=true
//   - [ErrUnresolvedReference]: Matches [ReferenceError] with Unsupported=false
//   - [ErrParameterLocation]: Matches any [ParameterError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	checker, err := v.Route("get", "/pets/{petId}")
//	if errors.Is(err, oaserrors.ErrPathNotFound) {
//	    // The document declares no such path
//	}
//
// Extract error details with errors.As():
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("Failed to resolve ref: %s\n", refErr.Ref)
//	    if refErr.Unsupported {
//	        // The pointer grammar itself is unsupported
//	    }
//	}
//
// Distinguish an unknown path from an unmatched method:
//
//	if errors.Is(err, oaserrors.ErrMethodNotFound) {
//	    // The path exists; answer 405 rather than 404
//	}
//
// # Error Chaining
//
// [ParseError] supports error chaining via the Cause field and Unwrap() method.
// This allows finding root causes through the standard error chain:
//
//	var parseErr *oaserrors.ParseError
//	if errors.As(err, &parseErr) {
//	    if errors.Is(parseErr.Cause, os.ErrNotExist) {
//	        // The document file doesn't exist
//	    }
//	}
//
// None of these types describe per-request validation outcomes; those are
// reported through guard.ValidationError, which is a result value rather
// than a construction failure.
package oaserrors
