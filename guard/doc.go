// Package guard builds per-route request checkers from OpenAPI 3.x documents.
//
// This package enables runtime validation of inbound HTTP requests in API
// gateways, middleware, and testing scenarios. Only OAS 3.x documents are
// supported; construction fails for Swagger 2.0.
//
// # Basic Usage
//
// Create a Validator from a parsed document, then register routes:
//
//	doc, _ := parser.Parse("openapi.yaml")
//	v, err := guard.New(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	checker, err := v.Route("post", "/pets")
//	if err != nil {
//	    log.Fatal(err) // unknown path, unknown method, bad $ref, bad parameter
//	}
//
//	verr := checker.Check(&guard.Request{
//	    Body:  map[string]any{"name": "Rex"},
//	    Query: map[string]any{"verbose": "true"},
//	})
//	if verr != nil {
//	    for _, f := range verr.Fields {
//	        log.Printf("%s%s: %s", f.Part, f.Pointer, f.Message)
//	    }
//	}
//
// # Two Error Channels
//
// Route registration is fail-fast: an unsupported document version, a path
// or method absent from the document, a $ref outside the supported grammar
// or with a missing target, or a parameter with an unrecognized location
// all surface as ordinary errors from New or Route, typed in the oaserrors
// package. Per-request outcomes never use that channel: Check returns a
// *ValidationError (nil on success) aggregating every failing part, and it
// never panics for request content.
//
// # Request Parts
//
// A Request carries five containers: Body plus string-keyed maps for
// Query, Headers, Params (path parameters), and Cookies. Parts with no
// declared parameters always pass. String values in the parameter maps are
// coerced to the declared primitive type before validation, so "42"
// satisfies an integer query parameter. A nil Cookies map while the
// operation declares cookie parameters is reported as a cookie-part
// failure; the guard ships no cookie-parsing middleware of its own.
//
// # Middleware Pattern
//
// RouteChecker adapts to standard net/http chains:
//
//	mux.Handle("POST /pets", checker.Middleware(createPetHandler))
//
// On success the next handler runs; on failure the checker's ErrorHandler
// answers, by default with 400 and a JSON list of field failures.
//
// # References
//
// Only internal references of the form #/components/<section>/<name> are
// supported, for the schemas, parameters, and requestBodies sections. The
// top-level $ref of a body or parameter schema is resolved when the route
// is registered; nested references, including cyclic ones, are left to the
// schema engine and resolved lazily during Check.
package guard
