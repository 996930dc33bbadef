package guard

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Request parts a Field can point at.
const (
	PartBody   = "body"
	PartQuery  = "query"
	PartHeader = "header"
	PartCookie = "cookie"
	PartPath   = "path"
)

// Field is a single validation failure inside one request part.
type Field struct {
	// Part names the request part: body, query, header, cookie, or path.
	Part string `json:"part"`

	// Pointer locates the failing value inside the part as a JSON
	// pointer, e.g. "/name" or "/items/2/id". Empty for failures of the
	// part as a whole.
	Pointer string `json:"pointer,omitempty"`

	// Message is the engine's description of the failure, verbatim.
	Message string `json:"message"`
}

func (f Field) String() string {
	return f.Part + f.Pointer + ": " + f.Message
}

// ValidationError is the outcome of a failed Check. It aggregates every
// failing field across every request part; a request failing both its
// body and a query parameter reports both.
//
// ValidationError is a result value, not a construction failure: Check
// returns it directly, and it never travels through the error returns of
// New or Route.
type ValidationError struct {
	// Method and Path identify the route the request was checked
	// against.
	Method string `json:"method"`
	Path   string `json:"path"`

	// Fields lists every failure, in part order (body, query, header,
	// cookie, path).
	Fields []Field `json:"fields"`
}

// Error summarizes the failure; per-field detail lives in Fields.
func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "request invalid for %s %s: %d field(s) failed", e.Method, e.Path, len(e.Fields))
	for _, f := range e.Fields {
		b.WriteString("\n  ")
		b.WriteString(f.String())
	}
	return b.String()
}

// add appends engine output for one part, flattening the cause tree.
func (e *ValidationError) add(part string, err error) {
	var verr *jsonschema.ValidationError
	switch typed := err.(type) { //nolint:errorlint // engine returns the concrete type
	case *jsonschema.ValidationError:
		verr = typed
	default:
		e.Fields = append(e.Fields, Field{Part: part, Message: err.Error()})
		return
	}
	e.Fields = append(e.Fields, flattenCauses(part, verr)...)
}

// flattenCauses walks the engine's cause tree and keeps only the leaves,
// which carry the specific keyword failures. Branch nodes merely restate
// that children failed.
func flattenCauses(part string, verr *jsonschema.ValidationError) []Field {
	if len(verr.Causes) == 0 {
		return []Field{{
			Part:    part,
			Pointer: verr.InstanceLocation,
			Message: verr.Message,
		}}
	}
	var fields []Field
	for _, cause := range verr.Causes {
		fields = append(fields, flattenCauses(part, cause)...)
	}
	return fields
}
