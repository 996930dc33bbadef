package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasguard/guard"
)

type checkRequestInput struct {
	Spec    specInput         `json:"spec"              jsonschema:"The OAS document the request is checked against"`
	Method  string            `json:"method"            jsonschema:"Lowercase HTTP method (get, post, ...)"`
	Path    string            `json:"path"              jsonschema:"Exact paths key, e.g. /pets/{petId}"`
	Body    string            `json:"body,omitempty"    jsonschema:"Request body as a JSON string"`
	Query   map[string]string `json:"query,omitempty"   jsonschema:"Query parameters by name"`
	Headers map[string]string `json:"headers,omitempty" jsonschema:"Header parameters by name"`
	Params  map[string]string `json:"params,omitempty"  jsonschema:"Path parameters by name"`
	Cookies map[string]string `json:"cookies,omitempty" jsonschema:"Cookie parameters by name. Omit entirely to simulate a request pipeline without a cookie parser."`
}

type checkField struct {
	Part    string `json:"part"`
	Pointer string `json:"pointer,omitempty"`
	Message string `json:"message"`
}

type checkRequestOutput struct {
	Valid      bool         `json:"valid"`
	FieldCount int          `json:"field_count"`
	Fields     []checkField `json:"fields,omitempty"`
}

func handleCheckRequest(_ context.Context, _ *mcp.CallToolRequest, input checkRequestInput) (*mcp.CallToolResult, checkRequestOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), checkRequestOutput{}, nil
	}

	v, err := guard.New(doc)
	if err != nil {
		return errResult(err), checkRequestOutput{}, nil
	}
	checker, err := v.Route(input.Method, input.Path)
	if err != nil {
		return errResult(err), checkRequestOutput{}, nil
	}

	req := &guard.Request{
		Query:   toAnyMap(input.Query),
		Headers: toAnyMap(input.Headers),
		Params:  toAnyMap(input.Params),
		Cookies: toAnyMap(input.Cookies),
	}
	if input.Body != "" {
		if err := json.Unmarshal([]byte(input.Body), &req.Body); err != nil {
			return errResult(fmt.Errorf("decoding body: %w", err)), checkRequestOutput{}, nil
		}
	}

	verr := checker.Check(req)
	if verr == nil {
		return nil, checkRequestOutput{Valid: true}, nil
	}

	output := checkRequestOutput{FieldCount: len(verr.Fields)}
	output.Fields = make([]checkField, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		output.Fields = append(output.Fields, checkField{
			Part:    f.Part,
			Pointer: f.Pointer,
			Message: f.Message,
		})
	}
	return nil, output, nil
}

// toAnyMap widens a string map, preserving nil. A nil cookies map is how
// the guard detects a pipeline without a cookie parser, so nil must stay
// nil.
func toAnyMap(m map[string]string) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
