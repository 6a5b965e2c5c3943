// Package jsonhelpers provides small helpers for pulling specification
// extension fields (x-* properties) out of the generic document tree
// and for decoding one such extension into a caller-supplied shape.
//
// Mirrors the teacher's parser/internal/jsonhelpers package, adapted
// from map[string]any (the teacher decodes straight off encoding/json)
// to *orderedmap.Map[any] (this module's order-preserving generic tree,
// since specdoc and the visitor need source order preserved even for
// extension-bearing objects).
package jsonhelpers

import (
	"encoding/json"
	"fmt"

	"github.com/erraggy/oastranslator/orderedmap"
)

// ExtractExtensions collects every "x-" prefixed key of m into a plain
// map, for attachment to a typed node's Extra field. Returns nil if m
// carries no extensions, so callers can assign it directly without an
// extra nil-vs-empty check.
func ExtractExtensions(m *orderedmap.Map[any]) map[string]any {
	if m.Len() == 0 {
		return nil
	}
	var extra map[string]any
	m.Each(func(key string, value any) bool {
		if isExtensionKey(key) {
			if extra == nil {
				extra = make(map[string]any)
			}
			extra[key] = value
		}
		return true
	})
	return extra
}

func isExtensionKey(key string) bool {
	return len(key) >= 2 && key[0] == 'x' && key[1] == '-'
}

// DecodeExtension looks up key in extras (as produced by
// ExtractExtensions) and, if present, round-trips its generic JSON
// value through dst. Used for extensions whose value the caller needs
// in a specific shape rather than as a bare any — e.g. decoding
// x-ot-target-parameters into the CLI's override type precedence
// check.
func DecodeExtension(extras map[string]any, key string, dst any) (bool, error) {
	v, ok := extras[key]
	if !ok {
		return false, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return true, fmt.Errorf("jsonhelpers: marshaling extension %q: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return true, fmt.Errorf("jsonhelpers: decoding extension %q: %w", key, err)
	}
	return true, nil
}
