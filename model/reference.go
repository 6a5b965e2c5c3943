// Package model defines the typed view of an OpenAPI v3 document that the
// visitor engine walks. Field names and the overall shape follow the
// teacher's parser package (parser.OAS3Document, parser.Schema, ...), with
// one structural addition the teacher's eager-resolving parser does not
// need: every field that the OAS spec allows to be either a `$ref` or an
// inline object is represented as a Reference[T], so the visitor's
// reference discipline (resolve on demand, recurse into the dereferenced
// Item, no separate script fires for the Reference itself) has somewhere
// to hang.
package model

// Reference is the typed union the OAS spec calls "Reference Object | T":
// either a non-empty Ref pointing at a $ref URI, or an inline Item. Exactly
// one of the two is populated for any value produced by the parser.
type Reference[T any] struct {
	Ref  string
	Item *T
}

// IsRef reports whether this value is an unresolved $ref.
func (r Reference[T]) IsRef() bool {
	return r.Ref != ""
}

// FromItem wraps an inline value as a Reference.
func FromItem[T any](item *T) Reference[T] {
	return Reference[T]{Item: item}
}

// FromRef wraps a $ref URI as a Reference.
func FromRef[T any](ref string) Reference[T] {
	return Reference[T]{Ref: ref}
}
