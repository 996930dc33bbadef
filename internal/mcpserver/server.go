// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasguard capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasguard"
)

const serverInstructions = `oasguard MCP server: checks HTTP requests against OpenAPI 3.x documents.

Tools:
- check_request: build the checker for a (method, path) operation and validate a request's body, query, headers, cookies, and path parameters against it. Returns every failing field, not just the first.
- locate_operation: look up the operation declared for a (method, path) pair. Distinguishes an unknown path from a known path with an unmatched method.
- build_param_schema: show the object schema a request part (query, header, cookie, path) is validated against.

Methods are the lowercase OAS verbs (get, post, ...) and paths must exactly match a paths key; no templating is applied.

Configuration: defaults are configurable via OASGUARD_* environment variables set in your MCP client config. OASGUARD_MAX_INLINE_SIZE (default: 10485760) caps inline spec content in bytes.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasguard", Version: oasguard.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_request",
		Description: "Check an HTTP request against an OpenAPI 3.x operation. Provide the spec, a lowercase method, an exact path key, and any of: a JSON body, query/header/cookie/path parameter maps. Returns valid=true or the full list of failing fields with part, JSON pointer, and message.",
	}, handleCheckRequest)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "locate_operation",
		Description: "Locate the operation declared for a (method, path) pair in an OpenAPI 3.x document. Reports whether a failed lookup is an unknown path or a known path without that method.",
	}, handleLocateOperation)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_param_schema",
		Description: "Build the object schema that one request part (query, header, cookie, or path) of an operation is validated against. Useful for seeing which parameters are required and what constraints apply.",
	}, handleBuildParamSchema)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
