package guard

import (
	"strings"

	"github.com/erraggy/oasguard/oaserrors"
	"github.com/erraggy/oasguard/parser"
)

// Supported component sections for $ref resolution.
const (
	sectionSchemas       = "schemas"
	sectionParameters    = "parameters"
	sectionRequestBodies = "requestBodies"
)

// splitRef validates the supported reference grammar and returns the
// section and component name.
//
// Only internal pointers of the form #/components/<section>/<name> are
// supported, with section one of schemas, parameters, or requestBodies.
// Anything else, including external documents, deeper pointers, and
// other component sections, is an unsupported reference.
func splitRef(ref string) (section, name string, err error) {
	rest, ok := strings.CutPrefix(ref, "#/components/")
	if !ok {
		return "", "", &oaserrors.ReferenceError{
			Ref:         ref,
			Unsupported: true,
			Message:     "only #/components/<section>/<name> pointers are supported",
		}
	}
	section, name, ok = strings.Cut(rest, "/")
	if !ok || section == "" || name == "" || strings.Contains(name, "/") {
		return "", "", &oaserrors.ReferenceError{
			Ref:         ref,
			Unsupported: true,
			Message:     "only #/components/<section>/<name> pointers are supported",
		}
	}
	switch section {
	case sectionSchemas, sectionParameters, sectionRequestBodies:
		return section, name, nil
	}
	return "", "", &oaserrors.ReferenceError{
		Ref:         ref,
		Unsupported: true,
		Message:     "component section " + section + " is not supported",
	}
}

// ResolveSchemaRef resolves a reference string against the document's
// component schemas. It is the resolution step of Route, exported as a
// diagnostic entry point.
//
// The reference must use the #/components/schemas/<name> grammar; other
// pointers fail with errors.Is(err, oaserrors.ErrUnsupportedReference).
// A well-formed pointer whose target does not exist fails with
// errors.Is(err, oaserrors.ErrUnresolvedReference). Each call walks the
// document afresh; nothing is memoized.
func (v *Validator) ResolveSchemaRef(ref string) (*parser.Schema, error) {
	section, name, err := splitRef(ref)
	if err != nil {
		return nil, err
	}
	if section != sectionSchemas {
		return nil, &oaserrors.ReferenceError{
			Ref:         ref,
			Unsupported: true,
			Message:     "a schema reference must target the schemas section",
		}
	}
	target := v.doc.SchemaDefs()[name]
	if target == nil {
		return nil, &oaserrors.ReferenceError{Ref: ref}
	}
	return target, nil
}

// resolveSchema returns the schema a top-level $ref points at, or the
// schema unchanged when it carries no $ref. Nested $refs inside the
// schema are left in place for the engine to resolve lazily.
func (v *Validator) resolveSchema(s *parser.Schema) (*parser.Schema, error) {
	if s == nil || s.Ref == "" {
		return s, nil
	}
	return v.ResolveSchemaRef(s.Ref)
}

// resolveParameter returns the parameter a top-level $ref points at, or
// the parameter unchanged when it carries no $ref.
func (v *Validator) resolveParameter(p *parser.Parameter) (*parser.Parameter, error) {
	if p == nil || p.Ref == "" {
		return p, nil
	}
	section, name, err := splitRef(p.Ref)
	if err != nil {
		return nil, err
	}
	if section != sectionParameters {
		return nil, &oaserrors.ReferenceError{
			Ref:         p.Ref,
			Unsupported: true,
			Message:     "a parameter reference must target the parameters section",
		}
	}
	var target *parser.Parameter
	if v.doc.Components != nil {
		target = v.doc.Components.Parameters[name]
	}
	if target == nil {
		return nil, &oaserrors.ReferenceError{Ref: p.Ref}
	}
	return target, nil
}

// resolveRequestBody returns the request body a top-level $ref points
// at, or the body unchanged when it carries no $ref.
func (v *Validator) resolveRequestBody(rb *parser.RequestBody) (*parser.RequestBody, error) {
	if rb == nil || rb.Ref == "" {
		return rb, nil
	}
	section, name, err := splitRef(rb.Ref)
	if err != nil {
		return nil, err
	}
	if section != sectionRequestBodies {
		return nil, &oaserrors.ReferenceError{
			Ref:         rb.Ref,
			Unsupported: true,
			Message:     "a request body reference must target the requestBodies section",
		}
	}
	var target *parser.RequestBody
	if v.doc.Components != nil {
		target = v.doc.Components.RequestBodies[name]
	}
	if target == nil {
		return nil, &oaserrors.ReferenceError{Ref: rb.Ref}
	}
	return target, nil
}
