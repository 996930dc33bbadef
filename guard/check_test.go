package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Body(t *testing.T) {
	v := mustGuard(t, petstoreYAML)
	checker, err := v.Route("post", "/pets")
	require.NoError(t, err)

	t.Run("valid body passes", func(t *testing.T) {
		verr := checker.Check(&Request{
			Body: map[string]any{"name": "Rex", "tag": "dog"},
		})
		assert.Nil(t, verr)
	})

	t.Run("missing required property fails", func(t *testing.T) {
		verr := checker.Check(&Request{
			Body: map[string]any{"tag": "dog"},
		})
		require.NotNil(t, verr)
		require.NotEmpty(t, verr.Fields)
		assert.Equal(t, PartBody, verr.Fields[0].Part)
		assert.Contains(t, verr.Fields[0].Message, "name")
	})

	t.Run("wrong property type fails with a pointer", func(t *testing.T) {
		verr := checker.Check(&Request{
			Body: map[string]any{"name": "Rex", "tag": 12},
		})
		require.NotNil(t, verr)
		found := false
		for _, f := range verr.Fields {
			if f.Part == PartBody && f.Pointer == "/tag" {
				found = true
			}
		}
		assert.True(t, found, "expected a body failure at /tag, got %v", verr.Fields)
	})

	t.Run("missing required body fails", func(t *testing.T) {
		verr := checker.Check(&Request{})
		require.NotNil(t, verr)
		assert.Equal(t, PartBody, verr.Fields[0].Part)
		assert.Contains(t, verr.Fields[0].Message, "required")
	})

	t.Run("cyclic component schema validates", func(t *testing.T) {
		verr := checker.Check(&Request{
			Body: map[string]any{
				"name": "Rex",
				"friend": map[string]any{
					"name":   "Fido",
					"friend": map[string]any{"name": "Bob"},
				},
			},
		})
		assert.Nil(t, verr)

		verr = checker.Check(&Request{
			Body: map[string]any{
				"name":   "Rex",
				"friend": map[string]any{"tag": "nameless"},
			},
		})
		require.NotNil(t, verr)
		assert.Equal(t, PartBody, verr.Fields[0].Part)
	})

	t.Run("nil request fails only on required body", func(t *testing.T) {
		verr := checker.Check(nil)
		require.NotNil(t, verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, PartBody, verr.Fields[0].Part)
	})
}

func TestCheck_Query(t *testing.T) {
	v := mustGuard(t, petstoreYAML)
	checker, err := v.Route("get", "/pets")
	require.NoError(t, err)

	t.Run("string values coerce to declared types", func(t *testing.T) {
		verr := checker.Check(&Request{
			Query: map[string]any{"limit": "42", "verbose": "true"},
		})
		assert.Nil(t, verr)
	})

	t.Run("already-typed values pass through", func(t *testing.T) {
		verr := checker.Check(&Request{
			Query: map[string]any{"limit": 42, "verbose": false},
		})
		assert.Nil(t, verr)
	})

	t.Run("unparseable value fails with the engine message", func(t *testing.T) {
		verr := checker.Check(&Request{
			Query: map[string]any{"limit": "a-lot"},
		})
		require.NotNil(t, verr)
		assert.Equal(t, PartQuery, verr.Fields[0].Part)
		assert.Equal(t, "/limit", verr.Fields[0].Pointer)
	})

	t.Run("missing required parameter fails", func(t *testing.T) {
		verr := checker.Check(&Request{Query: map[string]any{"verbose": "true"}})
		require.NotNil(t, verr)
		assert.Equal(t, PartQuery, verr.Fields[0].Part)
		assert.Contains(t, verr.Fields[0].Message, "limit")
	})

	t.Run("nil query map fails required parameters", func(t *testing.T) {
		verr := checker.Check(&Request{})
		require.NotNil(t, verr)
		assert.Equal(t, PartQuery, verr.Fields[0].Part)
	})

	t.Run("optional parameter may be absent", func(t *testing.T) {
		verr := checker.Check(&Request{Query: map[string]any{"limit": "1"}})
		assert.Nil(t, verr)
	})
}

func TestCheck_HeaderCookiePath(t *testing.T) {
	v := mustGuard(t, petstoreYAML)
	checker, err := v.Route("get", "/pets/{petId}")
	require.NoError(t, err)

	valid := func() *Request {
		return &Request{
			Headers: map[string]any{"X-Request-Id": "abc-123"},
			Cookies: map[string]any{"session": "s1"},
			Params:  map[string]any{"petId": "7"},
		}
	}

	t.Run("all parts valid", func(t *testing.T) {
		assert.Nil(t, checker.Check(valid()))
	})

	t.Run("missing required header fails", func(t *testing.T) {
		req := valid()
		req.Headers = map[string]any{}
		verr := checker.Check(req)
		require.NotNil(t, verr)
		assert.Equal(t, PartHeader, verr.Fields[0].Part)
	})

	t.Run("nil cookies reports missing cookie parser", func(t *testing.T) {
		req := valid()
		req.Cookies = nil
		verr := checker.Check(req)
		require.NotNil(t, verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, PartCookie, verr.Fields[0].Part)
		assert.Contains(t, verr.Fields[0].Message, "no cookie parser installed")
	})

	t.Run("empty cookies fails on the required cookie instead", func(t *testing.T) {
		req := valid()
		req.Cookies = map[string]any{}
		verr := checker.Check(req)
		require.NotNil(t, verr)
		assert.Equal(t, PartCookie, verr.Fields[0].Part)
		assert.Contains(t, verr.Fields[0].Message, "session")
	})

	t.Run("path-level parameter is required by default", func(t *testing.T) {
		req := valid()
		req.Params = map[string]any{}
		verr := checker.Check(req)
		require.NotNil(t, verr)
		assert.Equal(t, PartPath, verr.Fields[0].Part)
	})

	t.Run("path parameter coerces to integer", func(t *testing.T) {
		req := valid()
		req.Params = map[string]any{"petId": "not-a-number"}
		verr := checker.Check(req)
		require.NotNil(t, verr)
		assert.Equal(t, PartPath, verr.Fields[0].Part)
		assert.Equal(t, "/petId", verr.Fields[0].Pointer)
	})
}

func TestCheck_AggregatesAllParts(t *testing.T) {
	v := mustGuard(t, petstoreYAML)
	checker, err := v.Route("get", "/pets/{petId}")
	require.NoError(t, err)

	verr := checker.Check(&Request{
		Headers: map[string]any{},
		Cookies: map[string]any{},
		Params:  map[string]any{},
	})
	require.NotNil(t, verr)

	parts := map[string]bool{}
	for _, f := range verr.Fields {
		parts[f.Part] = true
	}
	assert.True(t, parts[PartHeader], "expected a header failure")
	assert.True(t, parts[PartCookie], "expected a cookie failure")
	assert.True(t, parts[PartPath], "expected a path failure")
	assert.Equal(t, "get", verr.Method)
	assert.Equal(t, "/pets/{petId}", verr.Path)
}

func TestCheck_PartsWithoutSchemaAlwaysPass(t *testing.T) {
	v := mustGuard(t, `
openapi: "3.0.0"
info:
  title: Bare
  version: "1.0"
paths:
  /ping:
    get:
      responses:
        "200":
          description: OK
`)
	checker, err := v.Route("get", "/ping")
	require.NoError(t, err)

	assert.Nil(t, checker.Check(&Request{
		Body:    map[string]any{"anything": true},
		Query:   map[string]any{"unknown": "x"},
		Headers: map[string]any{"X-Whatever": "y"},
	}))
	assert.Nil(t, checker.Check(nil))
}

func TestValidationError_Error(t *testing.T) {
	verr := &ValidationError{
		Method: "post",
		Path:   "/pets",
		Fields: []Field{
			{Part: PartBody, Pointer: "/name", Message: "expected string, but got number"},
			{Part: PartQuery, Message: "missing properties: 'limit'"},
		},
	}
	msg := verr.Error()
	assert.Contains(t, msg, "post /pets")
	assert.Contains(t, msg, "2 field(s)")
	assert.Contains(t, msg, "body/name")
	assert.Contains(t, msg, "query: missing properties")
}
