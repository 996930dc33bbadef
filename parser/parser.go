package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasguard/oaserrors"
)

// Parse reads and decodes an OpenAPI 3.x document from a file path.
// Both YAML and JSON content are accepted.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: reading %s: %w", path, err)
	}
	doc, err := ParseBytes(data)
	if err != nil {
		var perr *oaserrors.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// ParseReader decodes an OpenAPI 3.x document from a reader.
func ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: reading document: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes decodes an OpenAPI 3.x document from in-memory content.
// JSON parses through the YAML decoder, of which it is a subset.
//
// Version enforcement happens in guard.New, not here: a Swagger 2.0
// document decodes successfully with Document.Swagger set, so the
// guard can report a structured version error.
func ParseBytes(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.ParseError{Message: "empty document"}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{Message: "decoding document", Cause: err}
	}
	return &doc, nil
}
