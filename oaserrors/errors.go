// Package oaserrors provides structured error types for oasguard.
//
// These error types enable programmatic error handling via errors.Is()
// and errors.As(), allowing callers to distinguish between different
// categories of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON parsing failures and structural issues
//   - VersionError: unsupported specification versions (Swagger 2.0,
//     missing or non-3.x openapi declarations)
//   - OperationError: (method, path) lookup failures, distinguishing an
//     unknown path from a known path with an unmatched method
//   - ReferenceError: $ref resolution failures, distinguishing pointers
//     outside the supported grammar from well-formed pointers with a
//     missing target
//   - ParameterError: parameter objects with an unrecognized location
//
// All of these surface at construction or route-registration time and
// are fatal to that call. Per-request validation outcomes never use
// this package; they are reported through guard.ValidationError.
//
// # Usage with errors.Is
//
//	checker, err := v.Route("get", "/pets")
//	if err != nil {
//	    switch {
//	    case errors.Is(err, oaserrors.ErrMethodNotFound):
//	        // 405 territory: the path exists, the method does not
//	    case errors.Is(err, oaserrors.ErrPathNotFound):
//	        // 404 territory
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedVersion indicates the document is not OpenAPI 3.x.
	ErrUnsupportedVersion = errors.New("unsupported specification version")

	// ErrPathNotFound indicates the requested path has no entry in the
	// document's paths object.
	ErrPathNotFound = errors.New("path not found")

	// ErrMethodNotFound indicates the path exists but declares no
	// operation for the requested method.
	ErrMethodNotFound = errors.New("method not found")

	// ErrUnsupportedReference indicates a $ref value outside the
	// supported internal-pointer grammar.
	ErrUnsupportedReference = errors.New("unsupported reference")

	// ErrUnresolvedReference indicates a well-formed $ref whose target
	// does not exist in the document.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrParameterLocation indicates a parameter whose "in" value is not
	// one of query, header, path, or cookie.
	ErrParameterLocation = errors.New("invalid parameter location")
)

// ParseError represents a failure to parse an OpenAPI document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
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

// VersionError represents an unsupported specification version.
type VersionError struct {
	// Declared is the version string the document carries, if any
	Declared string
	// Swagger is true when the document declares OAS 2.0 via a
	// top-level swagger key instead of openapi
	Swagger bool
}

// Error returns a human-readable error message.
func (e *VersionError) Error() string {
	if e.Swagger {
		return fmt.Sprintf("unsupported specification version: Swagger %s documents are not supported, only OpenAPI 3.x", e.Declared)
	}
	if e.Declared == "" {
		return "unsupported specification version: document declares no openapi version"
	}
	return fmt.Sprintf("unsupported specification version: %s (only OpenAPI 3.x is supported)", e.Declared)
}

// Is reports whether target matches this error type.
func (e *VersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// OperationError represents a failed (method, path) lookup.
type OperationError struct {
	// Method is the requested HTTP method as given by the caller
	Method string
	// Path is the requested path key
	Path string
	// MethodMissing is false when the path itself has no entry, true
	// when the path exists but the method does not
	MethodMissing bool
}

// Error returns a human-readable error message.
func (e *OperationError) Error() string {
	if e.MethodMissing {
		return fmt.Sprintf("no %q operation declared for path %q", e.Method, e.Path)
	}
	return fmt.Sprintf("path %q not found in document", e.Path)
}

// Is reports whether target matches this error type. An OperationError
// matches exactly one of ErrPathNotFound and ErrMethodNotFound.
func (e *OperationError) Is(target error) bool {
	if e.MethodMissing {
		return target == ErrMethodNotFound
	}
	return target == ErrPathNotFound
}

// ReferenceError represents a failure to resolve a $ref.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Unsupported is true when the pointer falls outside the supported
	// grammar, false when it is well-formed but its target is missing
	Unsupported bool
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	kind := "unresolved reference"
	if e.Unsupported {
		kind = "unsupported reference"
	}
	msg := kind + ": " + e.Ref
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type. A ReferenceError
// matches exactly one of ErrUnsupportedReference and
// ErrUnresolvedReference.
func (e *ReferenceError) Is(target error) bool {
	if e.Unsupported {
		return target == ErrUnsupportedReference
	}
	return target == ErrUnresolvedReference
}

// ParameterError represents a parameter object with an unrecognized
// location value.
type ParameterError struct {
	// Name is the parameter name, if declared
	Name string
	// In is the offending location value
	In string
}

// Error returns a human-readable error message.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %q has invalid location %q (want query, header, path, or cookie)", e.Name, e.In)
}

// Is reports whether target matches this error type.
func (e *ParameterError) Is(target error) bool {
	return target == ErrParameterLocation
}
