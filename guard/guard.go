package guard

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasguard/oaserrors"
	"github.com/erraggy/oasguard/parser"
)

// Validator builds per-route request checkers from an OpenAPI 3.x document.
//
// Create a Validator using the New function:
//
//	doc, _ := parser.Parse("openapi.yaml")
//	v, err := guard.New(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The document is treated as immutable after construction; callers must
// not mutate it while the Validator or any RouteChecker derived from it
// is in use.
type Validator struct {
	// doc holds the OpenAPI document all lookups run against
	doc *parser.Document

	// logger receives construction-time debug output. Never used during
	// Check.
	logger parser.Logger
}

// Option is a functional option for configuring a Validator.
type Option func(*Validator) error

// WithLogger sets the logger used for construction-time debug output.
// The default is a no-op logger; the library is silent unless asked.
func WithLogger(logger parser.Logger) Option {
	return func(v *Validator) error {
		if logger == nil {
			return fmt.Errorf("guard: logger cannot be nil")
		}
		v.logger = logger
		return nil
	}
}

// New creates a Validator from a parsed document.
//
// The document must declare an OpenAPI 3.x version. A document carrying a
// top-level swagger key, declaring no version at all, or declaring a
// non-3.x version is rejected with a *oaserrors.VersionError.
func New(doc *parser.Document, opts ...Option) (*Validator, error) {
	if doc == nil {
		return nil, fmt.Errorf("guard: document cannot be nil")
	}
	if doc.Swagger != "" {
		return nil, &oaserrors.VersionError{Declared: doc.Swagger, Swagger: true}
	}
	if doc.OpenAPI == "" {
		return nil, &oaserrors.VersionError{}
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		return nil, &oaserrors.VersionError{Declared: doc.OpenAPI}
	}

	v := &Validator{
		doc:    doc,
		logger: parser.NopLogger(),
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Route locates the operation for the given method and path and compiles
// a RouteChecker for it.
//
// The path must exactly match a key of the document's paths object; no
// templating or normalization is applied. The method must be one of the
// lowercase OAS verbs (get, put, post, delete, options, head, patch,
// trace); "GET" does not match, because path items key their operations
// by lowercase verb.
//
// Route is fail-fast: an unknown path or method, a $ref outside the
// supported grammar or with a missing target, and a parameter with an
// unrecognized location are all reported as errors here, never deferred
// to Check. Registering the same route twice yields independent,
// behaviorally identical checkers; nothing is memoized.
func (v *Validator) Route(method, path string) (*RouteChecker, error) {
	item, op, err := v.locate(method, path)
	if err != nil {
		return nil, err
	}

	params, err := v.mergedParameters(item, op)
	if err != nil {
		return nil, err
	}

	checker := &RouteChecker{
		method: method,
		path:   path,
	}

	checker.body, checker.bodyRequired, err = v.compileBody(op)
	if err != nil {
		return nil, err
	}

	for _, location := range parser.Locations {
		part, err := v.compileParams(params, location)
		if err != nil {
			return nil, err
		}
		switch location {
		case parser.ParamInQuery:
			checker.query = part
		case parser.ParamInHeader:
			checker.header = part
		case parser.ParamInCookie:
			checker.cookie = part
		case parser.ParamInPath:
			checker.pathParams = part
		}
	}

	v.logger.Debug("route registered",
		"method", method,
		"path", path,
		"body", checker.body != nil,
	)
	return checker, nil
}

// LocateOperation returns the operation declared for the given method and
// path, without compiling anything. It is the lookup step of Route,
// exported as a diagnostic entry point.
//
// Failures are distinguishable: errors.Is(err, oaserrors.ErrPathNotFound)
// when the path has no entry, errors.Is(err, oaserrors.ErrMethodNotFound)
// when the path exists but declares no such operation.
func (v *Validator) LocateOperation(method, path string) (*parser.Operation, error) {
	_, op, err := v.locate(method, path)
	return op, err
}

// locate resolves (method, path) to the path item and operation.
func (v *Validator) locate(method, path string) (*parser.PathItem, *parser.Operation, error) {
	item, ok := v.doc.Paths[path]
	if !ok || item == nil {
		return nil, nil, &oaserrors.OperationError{Method: method, Path: path}
	}
	op := item.ByMethod(method)
	if op == nil {
		return nil, nil, &oaserrors.OperationError{Method: method, Path: path, MethodMissing: true}
	}
	return item, op, nil
}

// mergedParameters combines path-level and operation-level parameters,
// resolving top-level $refs. Operation parameters override path-level
// parameters with the same name and location, per the OAS merge rules.
func (v *Validator) mergedParameters(item *parser.PathItem, op *parser.Operation) ([]*parser.Parameter, error) {
	merge := func(dst []*parser.Parameter, src []*parser.Parameter) ([]*parser.Parameter, error) {
		for _, p := range src {
			if p == nil {
				continue
			}
			resolved, err := v.resolveParameter(p)
			if err != nil {
				return nil, err
			}
			replaced := false
			for i, existing := range dst {
				if existing.Name == resolved.Name && existing.In == resolved.In {
					dst[i] = resolved
					replaced = true
					break
				}
			}
			if !replaced {
				dst = append(dst, resolved)
			}
		}
		return dst, nil
	}

	params, err := merge(nil, item.Parameters)
	if err != nil {
		return nil, err
	}
	return merge(params, op.Parameters)
}
