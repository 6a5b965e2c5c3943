// Package model defines the typed OpenAPI v3 document tree the visitor
// engine walks: Document, its nested Info/Server/Tag/Components nodes,
// the Schema kind hierarchy, and the generic Reference[T] union used
// everywhere the spec allows a $ref in place of an inline object.
package model
