// Package oaserrors provides structured error types for the translator.
//
// Import path: github.com/erraggy/oastranslator/oaserrors
//
// # Error Types
//
//   - [SpecLoadError]: I/O, YAML parse, or OpenAPI deserialize failures
//   - [ReferenceError]: $ref fetch/pointer/deserialize failures ($ref cycles are not detected)
//   - [ScriptError]: script load, compile, call, or return-decode failures
//   - [OutputError]: code-record write failures
//   - [DiffError]: expected/actual mismatches under --expected
//   - [ProgrammerError]: fatal implementation bugs (arity, exhaustiveness); always a panic
package oaserrors
