// Package translator wires components A-G into the single entry point
// the CLI calls once per translate command: load the spec, run the
// Target prelude, walk the document through visitor.Engine, and
// (optionally) diff the result against an expected tree.
//
// Grounded on the teacher's top-level orchestration shape in
// cmd/oastools/commands (a Config struct plus one Handle/Run function
// per subcommand) and on the original implementation's lib.rs
// (translate_file: load spec, reset globals, run Target, walk, on
// error invoke ErrorHandler).
package translator
