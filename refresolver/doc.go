// Package refresolver implements component D: on-demand, memoized $ref
// resolution. Given a reference URI and the document it appears in, it
// locates the target node (locally via jsonpointer, or by fetching an
// external file or HTTP(S) document first) and decodes it into whatever
// typed shape the caller asks for, caching the typed result in typedcache
// so a $ref visited twice resolves and decodes only once.
//
// Grounded on the teacher's parser/resolver.go (RefResolver: ResolveLocal,
// ResolveExternal, ResolveHTTP, Resolve dispatch, TTL'd document cache) and
// on the original implementation's services/references.rs
// (resolve_reference, extract_json_pointer, fetch_url_content,
// fetch_file_content), reshaped around typedcache instead of a bespoke
// compute_if_absent call.
package refresolver
