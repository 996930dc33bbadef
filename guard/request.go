package guard

import (
	"strconv"

	"github.com/erraggy/oasguard/parser"
)

// Request carries the already-extracted parts of an inbound HTTP request.
//
// The guard does not read the wire; transports, routers, and body
// decoders hand it their output. Keys are parameter names as declared in
// the document. Values are typically strings as they arrive off the
// wire; string values are coerced to the declared primitive type before
// validation, and already-typed values pass through untouched.
type Request struct {
	// Body is the decoded request body, usually the result of a JSON
	// unmarshal. Ignored when the route declares no body schema.
	Body any

	// Query holds query parameters by name.
	Query map[string]any

	// Headers holds header parameters by name.
	Headers map[string]any

	// Params holds path parameters by name, as extracted by the router.
	Params map[string]any

	// Cookies holds cookie parameters by name. A nil map means no cookie
	// parser ran upstream; when the route declares cookie parameters
	// that absence is itself a validation failure.
	Cookies map[string]any
}

// coercePart converts raw string values to the parameter's declared
// primitive type so the engine compares like with like. Unparseable
// strings are left alone for the engine to reject with its own message.
func coercePart(values map[string]any, props map[string]*parser.Schema) map[string]any {
	out := make(map[string]any, len(values))
	for name, value := range values {
		out[name] = coerceValue(value, props[name])
	}
	return out
}

func coerceValue(value any, schema *parser.Schema) any {
	str, ok := value.(string)
	if !ok || schema == nil {
		return value
	}

	switch schema.TypeName() {
	case "integer":
		if i, err := strconv.ParseInt(str, 10, 64); err == nil {
			return i
		}
	case "number":
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			return f
		}
	case "boolean":
		if b, err := strconv.ParseBool(str); err == nil {
			return b
		}
	}
	return value
}
