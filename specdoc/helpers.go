package specdoc

import "github.com/erraggy/oastranslator/orderedmap"

// asMap is a convenience cast used throughout decode.go: every OpenAPI
// object node decodes to an *orderedmap.Map[any] by construction, so a
// failed cast means the document doesn't match the shape being decoded.
func asMap(v any) (*orderedmap.Map[any], bool) {
	m, ok := v.(*orderedmap.Map[any])
	return m, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func getString(m *orderedmap.Map[any], key string) string {
	v, ok := m.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func getBool(m *orderedmap.Map[any], key string) bool {
	v, ok := m.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

func getMap(m *orderedmap.Map[any], key string) (*orderedmap.Map[any], bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return asMap(v)
}

func getSlice(m *orderedmap.Map[any], key string) ([]any, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return asSlice(v)
}

func getRef(m *orderedmap.Map[any]) (string, bool) {
	v, ok := m.Get("$ref")
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

func stringSlice(items []any) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
