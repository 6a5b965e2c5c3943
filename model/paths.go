package model

import "github.com/erraggy/oastranslator/orderedmap"

// PathItem mirrors the OAS Path Item Object. Operation fields are kept as
// named struct fields, not a map, because the canonical traversal order
// (trace, put, post, patch, options, head, get, delete, then servers, then
// parameters) is fixed and does not follow source order.
type PathItem struct {
	Summary     string
	Description string
	Trace       *Operation
	Put         *Operation
	Post        *Operation
	Patch       *Operation
	Options     *Operation
	Head        *Operation
	Get         *Operation
	Delete      *Operation
	Servers     []*Server
	Parameters  []Reference[Parameter]
}

// Operation mirrors the OAS Operation Object.
type Operation struct {
	Tags         []string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	OperationID  string
	Parameters   []Reference[Parameter]
	RequestBody  *Reference[RequestBody]
	Responses    *Responses
	Callbacks    *orderedmap.Map[Reference[Callback]]
	Deprecated   bool
	Security     []SecurityRequirement
	Servers      []*Server
}

// Responses mirrors the OAS Responses Object. Default is visited first
// when present, then the explicit status codes in container order, per
// the canonical traversal order.
type Responses struct {
	Default *Reference[Response]
	Codes   *orderedmap.Map[Reference[Response]]
}

// Response mirrors the OAS Response Object.
type Response struct {
	Description string
	Headers     *orderedmap.Map[Reference[Header]]
	Content     *orderedmap.Map[*MediaType]
	Links       *orderedmap.Map[Reference[Link]]
}

// RequestBody mirrors the OAS Request Body Object.
type RequestBody struct {
	Description string
	Content     *orderedmap.Map[*MediaType]
	Required    bool
}

// MediaType mirrors the OAS Media Type Object.
type MediaType struct {
	Schema   *Reference[Schema]
	Example  any
	Examples *orderedmap.Map[Reference[Example]]
	Encoding *orderedmap.Map[*Encoding]
}

// Encoding mirrors the OAS Encoding Object.
type Encoding struct {
	ContentType   string
	Headers       *orderedmap.Map[Reference[Header]]
	Style         string
	Explode       bool
	AllowReserved bool
}

// Example mirrors the OAS Example Object.
type Example struct {
	Summary       string
	Description   string
	Value         any
	ExternalValue string
}

// Link mirrors the OAS Link Object.
type Link struct {
	OperationRef string
	OperationID  string
	Parameters   map[string]any
	RequestBody  any
	Description  string
	Server       *Server
}

// Callback is an expression-keyed map of path items, in container order.
type Callback struct {
	Expressions *orderedmap.Map[Reference[PathItem]]
}
