package guard

import (
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/erraggy/oasguard/oaserrors"
	"github.com/erraggy/oasguard/parser"
)

// partChecker validates one request part (query, header, cookie, path).
type partChecker struct {
	location string
	schema   *jsonschema.Schema
	// props holds the declared schema per parameter name, used to coerce
	// raw string values before the engine sees them
	props map[string]*parser.Schema
}

// BuildParameterSchema assembles the object schema that a request part is
// validated against, without compiling it. It is the builder step of
// Route, exported as a diagnostic entry point.
//
// Every parameter of the operation is location-checked first, so a
// parameter with an unrecognized "in" value fails the call even when a
// different location was requested. Returns nil when the operation
// declares no parameters at the requested location.
func (v *Validator) BuildParameterSchema(method, path, location string) (*parser.Schema, error) {
	item, op, err := v.locate(method, path)
	if err != nil {
		return nil, err
	}
	params, err := v.mergedParameters(item, op)
	if err != nil {
		return nil, err
	}
	object, _, err := v.buildParameterSchema(params, location)
	return object, err
}

// buildParameterSchema builds the per-location object schema plus the
// name-to-schema map used for value coercion. params must already have
// top-level $refs resolved.
func (v *Validator) buildParameterSchema(params []*parser.Parameter, location string) (*parser.Schema, map[string]*parser.Schema, error) {
	for _, p := range params {
		if !parser.KnownLocation(p.In) {
			return nil, nil, &oaserrors.ParameterError{Name: p.Name, In: p.In}
		}
	}

	properties := make(map[string]*parser.Schema)
	var required []string
	for _, p := range params {
		if p.In != location {
			continue
		}
		schema, err := v.resolveSchema(p.Schema)
		if err != nil {
			return nil, nil, err
		}
		if schema == nil {
			// A parameter without a schema constrains nothing beyond
			// presence.
			schema = &parser.Schema{}
		}
		properties[p.Name] = schema
		if p.IsRequired() {
			required = append(required, p.Name)
		}
	}
	if len(properties) == 0 {
		return nil, nil, nil
	}
	sort.Strings(required)

	object := &parser.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
	return object, properties, nil
}

// compileParams builds and compiles the checker for one location.
// Returns nil when the location has no declared parameters; a nil part
// passes everything.
func (v *Validator) compileParams(params []*parser.Parameter, location string) (*partChecker, error) {
	object, props, err := v.buildParameterSchema(params, location)
	if err != nil {
		return nil, err
	}
	if object == nil {
		return nil, nil
	}
	compiled, err := v.compileSchema(location, object)
	if err != nil {
		return nil, err
	}
	return &partChecker{location: location, schema: compiled, props: props}, nil
}
