package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &ParseError{Path: "api.yaml"}
		if err.Error() != "parse error in api.yaml" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ParseError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ParseError{}
		if errors.Is(err, ErrUnsupportedVersion) {
			t.Error("ParseError should not match ErrUnsupportedVersion")
		}
		if errors.Is(err, ErrPathNotFound) {
			t.Error("ParseError should not match ErrPathNotFound")
		}
	})

	t.Run("As extracts ParseError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ParseError{Path: "test.yaml"})
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatal("errors.As should succeed")
		}
		if parseErr.Path != "test.yaml" {
			t.Errorf("unexpected path: %s", parseErr.Path)
		}
	})
}

func TestVersionError(t *testing.T) {
	t.Run("Error message for Swagger document", func(t *testing.T) {
		err := &VersionError{Declared: "2.0", Swagger: true}
		expected := "unsupported specification version: Swagger 2.0 documents are not supported, only OpenAPI 3.x"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for missing version", func(t *testing.T) {
		err := &VersionError{}
		expected := "unsupported specification version: document declares no openapi version"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for non-3.x version", func(t *testing.T) {
		err := &VersionError{Declared: "4.0.0"}
		expected := "unsupported specification version: 4.0.0 (only OpenAPI 3.x is supported)"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnsupportedVersion", func(t *testing.T) {
		err := &VersionError{Declared: "2.0", Swagger: true}
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Error("VersionError should match ErrUnsupportedVersion")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &VersionError{}
		if errors.Is(err, ErrParse) {
			t.Error("VersionError should not match ErrParse")
		}
	})
}

func TestOperationError(t *testing.T) {
	t.Run("Error message when path missing", func(t *testing.T) {
		err := &OperationError{Method: "get", Path: "/pets"}
		expected := `path "/pets" not found in document`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message when method missing", func(t *testing.T) {
		err := &OperationError{Method: "delete", Path: "/pets", MethodMissing: true}
		expected := `no "delete" operation declared for path "/pets"`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches exactly one sentinel", func(t *testing.T) {
		pathErr := &OperationError{Method: "get", Path: "/pets"}
		if !errors.Is(pathErr, ErrPathNotFound) {
			t.Error("should match ErrPathNotFound when the path is missing")
		}
		if errors.Is(pathErr, ErrMethodNotFound) {
			t.Error("should not match ErrMethodNotFound when the path is missing")
		}

		methodErr := &OperationError{Method: "delete", Path: "/pets", MethodMissing: true}
		if !errors.Is(methodErr, ErrMethodNotFound) {
			t.Error("should match ErrMethodNotFound when only the method is missing")
		}
		if errors.Is(methodErr, ErrPathNotFound) {
			t.Error("should not match ErrPathNotFound when only the method is missing")
		}
	})

	t.Run("As extracts OperationError", func(t *testing.T) {
		err := fmt.Errorf("route: %w", &OperationError{Method: "post", Path: "/orders", MethodMissing: true})
		var opErr *OperationError
		if !errors.As(err, &opErr) {
			t.Fatal("errors.As should succeed")
		}
		if opErr.Method != "post" || opErr.Path != "/orders" {
			t.Errorf("unexpected fields: %+v", opErr)
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Error message for unresolved reference", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/components/schemas/Pett"}
		expected := "unresolved reference: #/components/schemas/Pett"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for unsupported reference", func(t *testing.T) {
		err := &ReferenceError{
			Ref:         "./pets.yaml#/Pet",
			Unsupported: true,
			Message:     "external documents are not supported",
		}
		expected := "unsupported reference: ./pets.yaml#/Pet: external documents are not supported"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches exactly one sentinel", func(t *testing.T) {
		unresolved := &ReferenceError{Ref: "#/components/schemas/Missing"}
		if !errors.Is(unresolved, ErrUnresolvedReference) {
			t.Error("should match ErrUnresolvedReference")
		}
		if errors.Is(unresolved, ErrUnsupportedReference) {
			t.Error("should not match ErrUnsupportedReference")
		}

		unsupported := &ReferenceError{Ref: "#/a/b/C", Unsupported: true}
		if !errors.Is(unsupported, ErrUnsupportedReference) {
			t.Error("should match ErrUnsupportedReference")
		}
		if errors.Is(unsupported, ErrUnresolvedReference) {
			t.Error("should not match ErrUnresolvedReference")
		}
	})
}

func TestParameterError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ParameterError{Name: "limit", In: "querystring"}
		expected := `parameter "limit" has invalid location "querystring" (want query, header, path, or cookie)`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrParameterLocation", func(t *testing.T) {
		err := &ParameterError{Name: "limit", In: "body"}
		if !errors.Is(err, ErrParameterLocation) {
			t.Error("ParameterError should match ErrParameterLocation")
		}
		if errors.Is(err, ErrUnresolvedReference) {
			t.Error("ParameterError should not match ErrUnresolvedReference")
		}
	})
}
