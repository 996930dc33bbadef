package parser

// Parameter describes a single operation parameter
type Parameter struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Name and In use omitempty because parameters can be defined via $ref.
	// When a parameter uses $ref, these fields should be empty in the
	// referencing object (the actual values live in the referenced
	// parameter definition).
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	Style           string  `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         *bool   `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowEmptyValue bool    `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Schema          *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example         any     `yaml:"example,omitempty" json:"example,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IsRequired reports whether the parameter must be present.
// Path parameters are always required per the OAS specification, even
// when the document omits the required flag.
func (p *Parameter) IsRequired() bool {
	return p.Required || p.In == ParamInPath
}

// RequestBody describes a single request body (OAS 3.0+)
type RequestBody struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Content uses omitempty because request bodies can be defined via
	// $ref, in which case this field is nil in the referencing object.
	Content  map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
