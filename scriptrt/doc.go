// Package scriptrt implements component B: the scripting runtime
// adapter. It treats the embedded scripting language as an opaque black
// box behind three operations — load a script by position, call it with
// the node payload packed into positional arguments plus a trailing
// call_id, and decode its return value back into Go values — so the rest
// of the engine never has to know which language the scripts are
// actually written in.
//
// The concrete implementation backs scripts with CEL
// (github.com/google/cel-go), the only embeddable expression language
// found anywhere in the retrieval pack; each script is a single CEL
// expression compiled once per Runtime and evaluated against an
// Activation binding arg0..argN-1 and callId, plus the script-global
// bindings every call carries (targetParameters, a nullValue sentinel,
// and the globals table the Target prelude populates), expected to
// produce a CEL map with "action" and "output" keys (and, for the
// Target call alone, an optional "globals" key).
//
// Grounded on the original implementation's enums/common.rs
// (Script::call_with_descriptor's positional-arg packing rule and
// Script::call_func's leaf-call contract).
package scriptrt
