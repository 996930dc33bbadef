package parser

// Document represents an OpenAPI Specification 3.x document.
// Supports OAS 3.0.x and 3.1.x.
// References:
// - OAS 3.0.0: https://spec.openapis.org/oas/v3.0.0.html
// - OAS 3.1.0: https://spec.openapis.org/oas/v3.1.0.html
type Document struct {
	OpenAPI    string      `yaml:"openapi,omitempty" json:"openapi,omitempty"` // Required: "3.0.x" or "3.1.x"
	Info       *Info       `yaml:"info,omitempty" json:"info,omitempty"`
	Servers    []*Server   `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      Paths       `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`

	// Swagger captures the version declaration of an OAS 2.0 document.
	// Such documents decode but are rejected by guard.New; keeping the
	// field lets the guard distinguish "Swagger 2.0 document" from
	// "no version declared at all" in its error message.
	Swagger string `yaml:"swagger,omitempty" json:"swagger,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server represents a server object (OAS 3.0+)
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects for different aspects of the OAS (OAS 3.0+)
type Components struct {
	Schemas       map[string]*Schema      `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Parameters    map[string]*Parameter   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBodies map[string]*RequestBody `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Responses     map[string]*Response    `yaml:"responses,omitempty" json:"responses,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SchemaDefs returns the named component schemas, or nil when the
// document declares none. Used by the guard to hand the engine a
// registry it can dereference nested $refs into.
func (d *Document) SchemaDefs() map[string]*Schema {
	if d == nil || d.Components == nil {
		return nil
	}
	return d.Components.Schemas
}
