// Package visitor implements component F, the traversal engine: a
// recursive depth-first walk over a *model.Document that fires a
// Start/leaf/End script call at each of the ~150 positions in
// scriptpos.All, in the exact canonical order the engine's traversal
// order specifies, and threading each bracket's continuation verbatim
// from its Start call to its matching End call.
//
// Every model.Reference field goes through withRef, which brackets a
// dedicated …ReferenceStart/…ReferenceEnd pair around resolving and
// recursing into a $ref (an inline value recurses directly, with no
// extra bracket). See DESIGN.md's "Reference bracket" entry for why
// this reads a script position at the reference itself rather than
// only at the resolved value.
//
// Grounded on the teacher's walker package (walker.Walker, its
// Start/End-ish handler-pair pattern for containers, and its
// WalkContext for carrying positional state) for the shape of a
// recursive OAS visitor in Go, reshaped from Go-callback dispatch to
// script-position dispatch per the engine's design.
package visitor
