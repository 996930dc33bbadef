// Package parser provides a typed document model for OpenAPI
// Specification 3.x documents and loading from YAML or JSON sources.
//
// The model is deliberately scoped to the parts of a specification that
// request validation needs: paths, operations, parameters, request
// bodies, and component schemas. Response objects are modeled only as
// far as operations reference them; security schemes, links, callbacks,
// and webhooks are carried through as extension data where present but
// are not typed.
//
// # Loading
//
// Parse reads a specification from disk; ParseBytes accepts in-memory
// content. Both accept YAML and JSON (JSON is parsed through the YAML
// decoder, of which it is a subset):
//
//	doc, err := parser.Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.OpenAPI, len(doc.Paths))
//
// Version policy is intentionally loose here: a document declaring
// `swagger` instead of `openapi` still decodes, carrying the declared
// value in Document.Swagger. Rejecting unsupported versions is the
// guard constructor's job, so that the caller receives a structured
// version error rather than a decode failure.
//
// The decoded tree is plain data. Nothing in this package mutates a
// Document after Parse returns, and callers are expected to treat it as
// immutable once handed to a guard.
package parser
