package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasguard/oaserrors"
)

const sampleYAML = `
openapi: "3.0.0"
info:
  title: Petstore
  version: "1.0"
servers:
  - url: https://api.example.com/v1
paths:
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        schema:
          type: integer
    get:
      operationId: getPet
      parameters:
        - name: verbose
          in: query
          schema:
            type: boolean
      responses:
        "200":
          description: OK
    delete:
      responses:
        "204":
          description: Deleted
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        name:
          type: string
        tags:
          type: array
          items:
            type: string
  parameters:
    PageSize:
      name: pageSize
      in: query
      schema:
        type: integer
`

func TestParseBytes(t *testing.T) {
	t.Run("decodes a YAML document", func(t *testing.T) {
		doc, err := ParseBytes([]byte(sampleYAML))
		require.NoError(t, err)
		assert.Equal(t, "3.0.0", doc.OpenAPI)
		assert.Equal(t, "Petstore", doc.Info.Title)
		require.Len(t, doc.Servers, 1)
		assert.Equal(t, "https://api.example.com/v1", doc.Servers[0].URL)

		item := doc.Paths["/pets/{petId}"]
		require.NotNil(t, item)
		require.Len(t, item.Parameters, 1)
		assert.Equal(t, "petId", item.Parameters[0].Name)
		require.NotNil(t, item.Get)
		assert.Equal(t, "getPet", item.Get.OperationID)

		pet := doc.SchemaDefs()["Pet"]
		require.NotNil(t, pet)
		assert.Equal(t, "object", pet.TypeName())
		assert.Equal(t, []string{"name"}, pet.Required)
		assert.Equal(t, "string", pet.Properties["tags"].ItemsSchema().TypeName())

		require.NotNil(t, doc.Components)
		assert.Contains(t, doc.Components.Parameters, "PageSize")
	})

	t.Run("decodes a JSON document", func(t *testing.T) {
		doc, err := ParseBytes([]byte(`{
			"openapi": "3.1.0",
			"info": {"title": "JSON API", "version": "2.0"},
			"paths": {"/ping": {"get": {"responses": {"200": {"description": "OK"}}}}}
		}`))
		require.NoError(t, err)
		assert.Equal(t, "3.1.0", doc.OpenAPI)
		require.NotNil(t, doc.Paths["/ping"].Get)
	})

	t.Run("a Swagger document decodes with Swagger set", func(t *testing.T) {
		doc, err := ParseBytes([]byte(`
swagger: "2.0"
info:
  title: Legacy
  version: "1.0"
paths: {}
`))
		require.NoError(t, err)
		assert.Equal(t, "2.0", doc.Swagger)
		assert.Empty(t, doc.OpenAPI)
	})

	t.Run("empty content fails", func(t *testing.T) {
		_, err := ParseBytes([]byte("  \n\t "))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrParse)
	})

	t.Run("malformed content fails with the cause", func(t *testing.T) {
		_, err := ParseBytes([]byte("openapi: [unclosed"))
		require.Error(t, err)

		var perr *oaserrors.ParseError
		require.ErrorAs(t, err, &perr)
		assert.NotNil(t, perr.Cause)
	})
}

func TestParse(t *testing.T) {
	t.Run("reads a document from disk", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "openapi.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

		doc, err := Parse(path)
		require.NoError(t, err)
		assert.Equal(t, "3.0.0", doc.OpenAPI)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("parse failures carry the file path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

		_, err := Parse(path)
		var perr *oaserrors.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, path, perr.Path)
	})
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "Petstore", doc.Info.Title)
}

func TestByMethod(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleYAML))
	require.NoError(t, err)
	item := doc.Paths["/pets/{petId}"]

	assert.NotNil(t, item.ByMethod("get"))
	assert.NotNil(t, item.ByMethod("delete"))
	assert.Nil(t, item.ByMethod("post"))
	assert.Nil(t, item.ByMethod("GET"), "operation keys are lowercase")
	assert.Nil(t, (*PathItem)(nil).ByMethod("get"))
}

func TestSchemaTypeName(t *testing.T) {
	tests := []struct {
		name     string
		schema   *Schema
		expected string
	}{
		{"nil schema", nil, ""},
		{"no type", &Schema{}, ""},
		{"string form", &Schema{Type: "integer"}, "integer"},
		{"type array skips null", &Schema{Type: []any{"null", "string"}}, "string"},
		{"all null array", &Schema{Type: []any{"null"}}, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.schema.TypeName())
		})
	}
}

func TestParameterIsRequired(t *testing.T) {
	assert.True(t, (&Parameter{In: ParamInPath}).IsRequired(), "path parameters default to required")
	assert.True(t, (&Parameter{In: ParamInQuery, Required: true}).IsRequired())
	assert.False(t, (&Parameter{In: ParamInQuery}).IsRequired())
}

func TestKnownLocation(t *testing.T) {
	for _, in := range Locations {
		assert.True(t, KnownLocation(in), in)
	}
	assert.False(t, KnownLocation("body"))
	assert.False(t, KnownLocation(""))
}
