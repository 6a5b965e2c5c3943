package model

import "github.com/erraggy/oastranslator/orderedmap"

// ParameterLocation is the closed set of "in" values the canonical
// traversal dispatches on: Query, Header, Path, and Cookie parameters each
// fire their own Start/End script position before falling through to the
// shared ParameterData bracket.
type ParameterLocation string

const (
	ParameterLocationQuery  ParameterLocation = "query"
	ParameterLocationHeader ParameterLocation = "header"
	ParameterLocationPath   ParameterLocation = "path"
	ParameterLocationCookie ParameterLocation = "cookie"
)

// Parameter mirrors the OAS Parameter Object. In dispatches which
// Visit{Query,Header,Path,Cookie}Parameter{Start,End} pair the visitor
// fires before entering the shared ParameterData bracket.
type Parameter struct {
	Name string
	In   ParameterLocation
	ParameterData
}

// ParameterData holds the fields shared by every parameter location and by
// Header (which is a parameter in everything but name/location), mirroring
// the shared bracket the canonical traversal visits for both.
type ParameterData struct {
	Description     string
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool
	Style           string
	Explode         bool
	AllowReserved   bool
	SchemaOrContent ParameterSchemaOrContent
	Example         any
	Examples        *orderedmap.Map[Reference[Example]]
}

// ParameterSchemaOrContent is the OAS "schema xor content" union: a
// parameter either carries a single Schema, or a Content map keyed by
// media type. Exactly one is populated.
type ParameterSchemaOrContent struct {
	Schema  *Reference[Schema]
	Content *orderedmap.Map[*MediaType]
}

// Header mirrors the OAS Header Object, which reuses ParameterData without
// a Name or In (both are implied by the map key it's stored under).
type Header struct {
	ParameterData
}
