package guard

import (
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// RouteChecker validates requests against one (method, path) operation.
//
// A RouteChecker is immutable after Route returns it (apart from the
// optional ErrorHandler, which must be set before use) and safe for
// concurrent Check calls.
type RouteChecker struct {
	method string
	path   string

	body         *jsonschema.Schema
	bodyRequired bool

	query      *partChecker
	header     *partChecker
	cookie     *partChecker
	pathParams *partChecker

	// ErrorHandler answers the client when Middleware rejects a request.
	// Nil means the default: status 400 with the ValidationError as a
	// JSON body.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, verr *ValidationError)
}

// Method returns the HTTP method the checker was registered for.
func (c *RouteChecker) Method() string { return c.method }

// Path returns the path key the checker was registered for.
func (c *RouteChecker) Path() string { return c.path }

// Check validates every part of the request and returns nil when all
// pass, or a *ValidationError aggregating every failing field. Parts
// with no declared schema always pass. Check never panics on request
// content and never returns construction-style errors; those were all
// spent at Route time.
func (c *RouteChecker) Check(req *Request) *ValidationError {
	verr := &ValidationError{Method: c.method, Path: c.path}
	if req == nil {
		req = &Request{}
	}

	c.checkBody(req, verr)
	c.checkPart(c.query, PartQuery, req.Query, verr)
	c.checkPart(c.header, PartHeader, req.Headers, verr)
	c.checkCookies(req, verr)
	c.checkPart(c.pathParams, PartPath, req.Params, verr)

	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}

func (c *RouteChecker) checkBody(req *Request, verr *ValidationError) {
	if req.Body == nil {
		if c.bodyRequired {
			verr.Fields = append(verr.Fields, Field{
				Part:    PartBody,
				Message: "request body is required",
			})
		}
		return
	}
	if c.body == nil {
		return
	}
	if err := c.body.Validate(req.Body); err != nil {
		verr.add(PartBody, err)
	}
}

func (c *RouteChecker) checkPart(part *partChecker, name string, values map[string]any, verr *ValidationError) {
	if part == nil {
		return
	}
	if values == nil {
		values = map[string]any{}
	}
	coerced := coercePart(values, part.props)
	if err := part.schema.Validate(coerced); err != nil {
		verr.add(name, err)
	}
}

// checkCookies distinguishes "no cookies sent" from "no cookie parser
// installed". An empty map means the parser ran and found nothing, and
// required-cookie failures come from the schema; a nil map with cookie
// parameters declared means nothing upstream parses cookies at all.
func (c *RouteChecker) checkCookies(req *Request, verr *ValidationError) {
	if c.cookie == nil {
		return
	}
	if req.Cookies == nil {
		verr.Fields = append(verr.Fields, Field{
			Part:    PartCookie,
			Message: "cookie object missing: no cookie parser installed",
		})
		return
	}
	c.checkPart(c.cookie, PartCookie, req.Cookies, verr)
}
