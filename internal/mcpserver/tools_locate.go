package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasguard/guard"
	"github.com/erraggy/oasguard/oaserrors"
)

type locateOperationInput struct {
	Spec   specInput `json:"spec"   jsonschema:"The OAS document to look the operation up in"`
	Method string    `json:"method" jsonschema:"Lowercase HTTP method (get, post, ...)"`
	Path   string    `json:"path"   jsonschema:"Exact paths key, e.g. /pets/{petId}"`
}

type locateOperationOutput struct {
	Found bool `json:"found"`
	// Reason is set when not found: path_not_found or method_not_found.
	Reason         string `json:"reason,omitempty"`
	OperationID    string `json:"operation_id,omitempty"`
	Summary        string `json:"summary,omitempty"`
	Deprecated     bool   `json:"deprecated,omitempty"`
	ParameterCount int    `json:"parameter_count"`
	HasRequestBody bool   `json:"has_request_body"`
}

func handleLocateOperation(_ context.Context, _ *mcp.CallToolRequest, input locateOperationInput) (*mcp.CallToolResult, locateOperationOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), locateOperationOutput{}, nil
	}
	v, err := guard.New(doc)
	if err != nil {
		return errResult(err), locateOperationOutput{}, nil
	}

	op, err := v.LocateOperation(input.Method, input.Path)
	switch {
	case errors.Is(err, oaserrors.ErrPathNotFound):
		return nil, locateOperationOutput{Reason: "path_not_found"}, nil
	case errors.Is(err, oaserrors.ErrMethodNotFound):
		return nil, locateOperationOutput{Reason: "method_not_found"}, nil
	case err != nil:
		return errResult(err), locateOperationOutput{}, nil
	}

	return nil, locateOperationOutput{
		Found:          true,
		OperationID:    op.OperationID,
		Summary:        op.Summary,
		Deprecated:     op.Deprecated,
		ParameterCount: len(op.Parameters),
		HasRequestBody: op.RequestBody != nil,
	}, nil
}
