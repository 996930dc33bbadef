package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasguard/guard"
	"github.com/erraggy/oasguard/parser"
)

type buildParamSchemaInput struct {
	Spec     specInput `json:"spec"     jsonschema:"The OAS document the operation lives in"`
	Method   string    `json:"method"   jsonschema:"Lowercase HTTP method (get, post, ...)"`
	Path     string    `json:"path"     jsonschema:"Exact paths key, e.g. /pets/{petId}"`
	Location string    `json:"location" jsonschema:"Request part to build the schema for: query, header, cookie, or path"`
}

type buildParamSchemaOutput struct {
	// Empty is true when the operation declares no parameters at the
	// requested location; such a part passes every request.
	Empty    bool            `json:"empty"`
	Required []string        `json:"required,omitempty"`
	Schema   json.RawMessage `json:"schema,omitempty"`
}

func handleBuildParamSchema(_ context.Context, _ *mcp.CallToolRequest, input buildParamSchemaInput) (*mcp.CallToolResult, buildParamSchemaOutput, error) {
	if !parser.KnownLocation(input.Location) {
		return errResult(fmt.Errorf("location must be one of query, header, cookie, path; got %q", input.Location)), buildParamSchemaOutput{}, nil
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), buildParamSchemaOutput{}, nil
	}
	v, err := guard.New(doc)
	if err != nil {
		return errResult(err), buildParamSchemaOutput{}, nil
	}

	schema, err := v.BuildParameterSchema(input.Method, input.Path, input.Location)
	if err != nil {
		return errResult(err), buildParamSchemaOutput{}, nil
	}
	if schema == nil {
		return nil, buildParamSchemaOutput{Empty: true}, nil
	}

	data, err := json.Marshal(schema)
	if err != nil {
		return errResult(fmt.Errorf("encoding schema: %w", err)), buildParamSchemaOutput{}, nil
	}
	return nil, buildParamSchemaOutput{
		Required: schema.Required,
		Schema:   data,
	}, nil
}
