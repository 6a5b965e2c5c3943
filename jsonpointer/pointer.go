// Package jsonpointer implements RFC 6901 JSON Pointer navigation over the
// generic ordered document tree specdoc produces, used by refresolver to
// locate the fragment a $ref names inside a parsed document.
//
// Grounded on the resolver's local-pointer handling in the teacher's
// parser/resolver.go (ResolveLocal: split on "/", unescape ~1 and ~0, and
// support both map-key and array-index segments) and on the original
// implementation's services/references.rs::extract_json_pointer.
package jsonpointer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/oastranslator/orderedmap"
)

// Navigate resolves pointer against root, where root is the kind of value
// specdoc produces: nested combinations of *orderedmap.Map[any], []any,
// and JSON scalars. An empty pointer (or "#") returns root itself.
func Navigate(root any, pointer string) (any, error) {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" {
		return root, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("jsonpointer: pointer %q must start with '/'", pointer)
	}

	current := root
	for _, raw := range strings.Split(pointer[1:], "/") {
		segment := unescape(raw)
		next, err := step(current, segment)
		if err != nil {
			return nil, fmt.Errorf("jsonpointer: at segment %q: %w", segment, err)
		}
		current = next
	}
	return current, nil
}

func step(current any, segment string) (any, error) {
	switch v := current.(type) {
	case *orderedmap.Map[any]:
		val, ok := v.Get(segment)
		if !ok {
			return nil, fmt.Errorf("key %q not found", segment)
		}
		return val, nil
	case []any:
		idx, err := strconv.Atoi(segment)
		if err != nil {
			return nil, fmt.Errorf("segment %q is not a valid array index", segment)
		}
		if idx < 0 || idx >= len(v) {
			return nil, fmt.Errorf("array index %d out of range [0,%d)", idx, len(v))
		}
		return v[idx], nil
	default:
		return nil, fmt.Errorf("cannot navigate into %T", current)
	}
}

func unescape(segment string) string {
	segment = strings.ReplaceAll(segment, "~1", "/")
	segment = strings.ReplaceAll(segment, "~0", "~")
	return segment
}
