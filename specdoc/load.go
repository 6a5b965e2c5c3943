package specdoc

import (
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/oastranslator/oaserrors"
	"github.com/erraggy/oastranslator/orderedmap"
)

// ParsedSpec is a loaded OpenAPI document, grounded on the original
// implementation's structs::common::ParsedSpec. Path is retained so
// refresolver can resolve relative external $refs against the spec's own
// directory.
type ParsedSpec struct {
	Path string
	Root any // *orderedmap.Map[any], []any, or a scalar, per RFC 6901 navigation
}

// Load reads and parses the YAML document at path into a ParsedSpec. It
// does not validate against the OpenAPI schema; that is the visitor's
// job as it walks the typed document.
func Load(path string) (*ParsedSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.SpecLoadError{Path: path, Message: "reading file", Cause: err}
	}
	return Parse(path, data)
}

// Parse builds a ParsedSpec from already-read YAML bytes, labeled with
// path for error messages and relative-ref resolution. Used directly by
// refresolver when fetching an external document over HTTP, where there
// is no local file to os.ReadFile.
func Parse(path string, data []byte) (*ParsedSpec, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &oaserrors.SpecLoadError{Path: path, Message: "parsing YAML", Cause: err}
	}

	root, err := decodeNode(&node)
	if err != nil {
		return nil, &oaserrors.SpecLoadError{Path: path, Message: "building document tree", Cause: err}
	}

	return &ParsedSpec{Path: path, Root: root}, nil
}

// decodeNode converts a yaml.Node tree into the generic ordered shape:
// mappings become *orderedmap.Map[any] (key order preserved), sequences
// become []any, and scalars decode via yaml's own scalar resolution.
func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeNode(node.Content[0])
	case yaml.MappingNode:
		m := orderedmap.New[any](len(node.Content) / 2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("decoding mapping key: %w", err)
			}
			val, err := decodeNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(key, val)
		}
		return m, nil
	case yaml.SequenceNode:
		seq := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			val, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			seq = append(seq, val)
		}
		return seq, nil
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("decoding scalar: %w", err)
		}
		return v, nil
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	default:
		return nil, fmt.Errorf("unsupported YAML node kind %v", node.Kind)
	}
}
