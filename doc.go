// Package oasguard provides per-route HTTP request validation against
// OpenAPI Specification 3.x documents.
//
// oasguard derives a JSON Schema checker for every part of a request
// (body, query, headers, cookies, and path parameters) from the
// operation an OAS 3.x document declares for a (method, path) pair, and
// returns a reusable guard suitable for insertion into middleware
// chains ahead of business logic.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - parser: a trimmed OAS 3.x document model with YAML/JSON loading
//   - guard: operation lookup, $ref resolution, parameter schema
//     building, and compiled per-route request checkers
//   - oaserrors: structured error types shared across packages
//
// # Quick Start
//
// Load a specification and guard a route:
//
//	doc, err := parser.Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	v, err := guard.New(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	checker, err := v.Route("post", "/pets")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if verr := checker.Check(req); verr != nil {
//		for _, f := range verr.Fields {
//			fmt.Printf("%s %s: %s\n", f.Part, f.Pointer, f.Message)
//		}
//	}
//
// Construction-time problems (unknown path or method, unresolvable
// $ref, invalid parameter location, unsupported document version) are
// returned as errors from New and Route. Per-request outcomes are
// reported exclusively through *guard.ValidationError, which is nil on
// success; a route checker never panics on request data.
//
// # Command-Line Interface
//
// In addition to the library packages, oasguard provides a CLI:
//
//	# Check a canned request against a spec operation
//	oasguard check --body '{"name":"Rex"}' openapi.yaml post /pets
//
//	# List guardable operations
//	oasguard routes openapi.yaml
//
//	# Run the MCP server over stdio
//	oasguard mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/oasguard/cmd/oasguard@latest
package oasguard
