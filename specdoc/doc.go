// Package specdoc loads an OpenAPI v3 YAML document into two parallel
// shapes: a generic, order-preserving tree (*orderedmap.Map[any] / []any /
// scalars) that refresolver and jsonpointer navigate for $ref targets, and
// a typed *model.Document that the visitor walks.
//
// Grounded on the teacher's parser package loading pipeline (YAML via
// gopkg.in/yaml.v3 Node trees, then typed decode into parser.OAS3Document)
// but adapted to go.yaml.in/yaml/v4 and to keep the order-preserving tree
// as a first-class, independently navigable value rather than a discarded
// intermediate.
package specdoc
