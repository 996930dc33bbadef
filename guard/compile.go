package guard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/erraggy/oasguard/parser"
)

// compileSchema hands a document schema to the engine and returns the
// compiled form.
//
// The document's component schemas are embedded in the compiled resource
// under components/schemas, so nested #/components/schemas/<name>
// pointers, including cyclic ones, resolve lazily inside the engine.
// Only top-level $refs are pre-resolved by the guard before compilation.
func (v *Validator) compileSchema(name string, s *parser.Schema) (*jsonschema.Schema, error) {
	payload := struct {
		*parser.Schema
		Components *componentRegistry `json:"components,omitempty"`
	}{Schema: s}
	if defs := v.doc.SchemaDefs(); len(defs) > 0 {
		payload.Components = &componentRegistry{Schemas: defs}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("guard: encoding %s schema: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	resource := name + ".json"
	if err := compiler.AddResource(resource, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("guard: adding %s schema resource: %w", name, err)
	}
	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("guard: compiling %s schema: %w", name, err)
	}
	return compiled, nil
}

// componentRegistry is the components/schemas subtree embedded in every
// compiled resource so the engine can dereference into it.
type componentRegistry struct {
	Schemas map[string]*parser.Schema `json:"schemas"`
}

// compileBody resolves the operation's request body and compiles a
// checker for its media-type schema.
//
// Returns a nil checker when the operation declares no request body, no
// usable media type, or no schema; a nil checker passes every body.
func (v *Validator) compileBody(op *parser.Operation) (*jsonschema.Schema, bool, error) {
	rb, err := v.resolveRequestBody(op.RequestBody)
	if err != nil {
		return nil, false, err
	}
	if rb == nil {
		return nil, false, nil
	}

	media := pickJSONMedia(rb.Content)
	if media == nil {
		return nil, rb.Required, nil
	}
	schema, err := v.resolveSchema(media.Schema)
	if err != nil {
		return nil, false, err
	}
	if schema == nil {
		return nil, rb.Required, nil
	}

	compiled, err := v.compileSchema("body", schema)
	if err != nil {
		return nil, false, err
	}
	return compiled, rb.Required, nil
}

// pickJSONMedia selects the media type whose schema the body checker
// uses: application/json when present, then any other JSON media type,
// then the lexicographically first entry. Returns nil for empty content.
func pickJSONMedia(content map[string]*parser.MediaType) *parser.MediaType {
	if len(content) == 0 {
		return nil
	}
	if mt, ok := content["application/json"]; ok {
		return mt
	}
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(k, "json") {
			return content[k]
		}
	}
	return content[keys[0]]
}
