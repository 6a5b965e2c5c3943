package specdoc

import (
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/orderedmap"
)

// The functions in this file expose the internal per-kind decoders to
// refresolver, which resolves a $ref to a generic tree node and then
// needs the matching typed decoder for whatever T the caller asked for.

func DecodeSchemaNode(m *orderedmap.Map[any]) (*model.Schema, error) {
	return decodeSchema(m), nil
}

func DecodeResponseNode(m *orderedmap.Map[any]) (*model.Response, error) {
	ref := decodeResponseRef(m)
	return ref.Item, nil
}

func DecodeParameterNode(m *orderedmap.Map[any]) (*model.Parameter, error) {
	ref := decodeParameterRef(m)
	return ref.Item, nil
}

func DecodeHeaderNode(m *orderedmap.Map[any]) (*model.Header, error) {
	ref := decodeHeaderRef(m)
	return ref.Item, nil
}

func DecodeRequestBodyNode(m *orderedmap.Map[any]) (*model.RequestBody, error) {
	ref := decodeRequestBodyRef(m)
	return ref.Item, nil
}

func DecodeExampleNode(m *orderedmap.Map[any]) (*model.Example, error) {
	ref := decodeExampleRef(m)
	return ref.Item, nil
}

func DecodeLinkNode(m *orderedmap.Map[any]) (*model.Link, error) {
	ref := decodeLinkRef(m)
	return ref.Item, nil
}

func DecodeSecuritySchemeNode(m *orderedmap.Map[any]) (*model.SecurityScheme, error) {
	ref := decodeSecuritySchemeRef(m)
	return ref.Item, nil
}

func DecodePathItemNode(m *orderedmap.Map[any]) (*model.PathItem, error) {
	return decodePathItem(m), nil
}

func DecodeCallbackNode(m *orderedmap.Map[any]) (*model.Callback, error) {
	ref := decodeCallbackRef(m)
	return ref.Item, nil
}
