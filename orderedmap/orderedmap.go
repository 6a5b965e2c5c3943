// Package orderedmap provides an insertion-order-preserving string-keyed
// map, used everywhere the engine's canonical traversal order (visitor
// §4.F) requires iterating a document's object fields in the order they
// appeared in the source YAML rather than Go's randomized map order.
//
// The teacher's parser package preserves source order for re-marshaling
// by keeping a side-car yaml.Node tree (see parser.ParseResult.sourceNode
// and MarshalOrderedJSON). The visitor instead needs order as a first
// class property of the data it walks, so this package makes insertion
// order a property of the map value itself.
package orderedmap

// Map is a string-keyed collection that remembers insertion order.
// The zero value is ready to use.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// New creates an empty ordered map with room for n entries.
func New[V any](n int) *Map[V] {
	return &Map[V]{
		keys:   make([]string, 0, n),
		values: make(map[string]V, n),
	}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Set inserts or updates the value for key. New keys are appended to the
// iteration order; updating an existing key preserves its original
// position.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil || m.values == nil {
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice must not
// be mutated by callers.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Each calls fn for every entry in insertion order, stopping early if fn
// returns false.
func (m *Map[V]) Each(fn func(key string, value V) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}
