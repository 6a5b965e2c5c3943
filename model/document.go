package model

import "github.com/erraggy/oastranslator/orderedmap"

// Document is the root OpenAPI v3 node, grounded on the teacher's
// parser.OAS3Document but reshaped so every $ref-able field is a
// Reference[T] and every order-sensitive field is an orderedmap.Map.
type Document struct {
	OpenAPI      string
	Info         *Info
	Servers      []*Server
	Paths        *orderedmap.Map[Reference[PathItem]]
	Security     []SecurityRequirement
	Tags         []*Tag
	ExternalDocs *ExternalDocs
	Components   *Components
	Extra        map[string]any
}

// Info mirrors parser.OAS3Document.Info.
type Info struct {
	Title          string
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	Version        string
}

// Contact mirrors the OAS Contact Object.
type Contact struct {
	Name  string
	URL   string
	Email string
}

// License mirrors the OAS License Object.
type License struct {
	Name string
	URL  string
}

// Server mirrors the OAS Server Object.
type Server struct {
	URL         string
	Description string
	Variables   *orderedmap.Map[*ServerVariable]
}

// ServerVariable mirrors the OAS Server Variable Object.
type ServerVariable struct {
	Enum        []string
	Default     string
	Description string
}

// Tag mirrors the OAS Tag Object.
type Tag struct {
	Name         string
	Description  string
	ExternalDocs *ExternalDocs
}

// ExternalDocs mirrors the OAS External Documentation Object.
type ExternalDocs struct {
	Description string
	URL         string
}

// SecurityRequirement is scheme-name -> required scopes, order preserved
// to match the traversal order a VisitSecurityRequirement leaf expects.
type SecurityRequirement struct {
	Schemes *orderedmap.Map[[]string]
}

// Components mirrors parser.OAS3Document.Components, with every map
// ordered and every entry held as a Reference.
type Components struct {
	Schemas         *orderedmap.Map[Reference[Schema]]
	Responses       *orderedmap.Map[Reference[Response]]
	Parameters      *orderedmap.Map[Reference[Parameter]]
	Examples        *orderedmap.Map[Reference[Example]]
	RequestBodies   *orderedmap.Map[Reference[RequestBody]]
	Headers         *orderedmap.Map[Reference[Header]]
	SecuritySchemes *orderedmap.Map[Reference[SecurityScheme]]
	Links           *orderedmap.Map[Reference[Link]]
	Callbacks       *orderedmap.Map[Reference[Callback]]
	Extra           map[string]any
}
