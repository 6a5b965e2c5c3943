// Package oaserrors provides structured error types for the translator.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), letting callers distinguish the failure categories named in
// the engine's error handling design: spec loading, reference resolution,
// script invocation, output writing, and expected/actual diffing.
//
// # Usage with errors.As
//
//	result, err := tr.Translate(cfg) // tr is a *translator.Translator
//	if err != nil {
//	    var refErr *oaserrors.ReferenceError
//	    if errors.As(err, &refErr) {
//	        // handle reference resolution failure specifically
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrSpecLoad indicates a failure to read or parse the OpenAPI document itself.
	ErrSpecLoad = errors.New("spec load error")

	// ErrReference indicates a $ref resolution failure.
	ErrReference = errors.New("reference error")

	// ErrScript indicates a script load, compile, call, or return-decode failure.
	ErrScript = errors.New("script error")

	// ErrOutput indicates a code-record write failure.
	ErrOutput = errors.New("output error")

	// ErrDiff indicates an expected/actual mismatch during a translate --expected run.
	ErrDiff = errors.New("diff error")
)

// SpecLoadError represents a failure to read, parse, or deserialize the
// root OpenAPI document.
type SpecLoadError struct {
	// Path is the file path that was being loaded.
	Path string
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *SpecLoadError) Error() string {
	msg := "spec load error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *SpecLoadError) Unwrap() error { return e.Cause }

func (e *SpecLoadError) Is(target error) bool { return target == ErrSpecLoad }

// ReferenceError represents a failure to resolve a $ref URI. $ref cycles
// are not detected; the input spec is required to be acyclic (spec §5).
type ReferenceError struct {
	// URI is the $ref value that failed to resolve.
	URI string
	// Position, when non-empty, names the script position active when the
	// reference was being resolved, for error-message context.
	Position string
	// Message provides additional context.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.URI != "" {
		msg += ": " + e.URI
	}
	if e.Position != "" {
		msg += fmt.Sprintf(" (at %s)", e.Position)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ReferenceError) Unwrap() error { return e.Cause }

func (e *ReferenceError) Is(target error) bool { return target == ErrReference }

// ScriptError represents a failure to load, compile, call, or decode the
// return value of a script at a given position.
type ScriptError struct {
	// Position names the script position that failed.
	Position string
	// ScriptFile is the resolved path of the script file, when known.
	ScriptFile string
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *ScriptError) Error() string {
	msg := "script error"
	if e.Position != "" {
		msg += " in " + e.Position
	}
	if e.ScriptFile != "" {
		msg += fmt.Sprintf(" [%s]", e.ScriptFile)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ScriptError) Unwrap() error { return e.Cause }

func (e *ScriptError) Is(target error) bool { return target == ErrScript }

// OutputError represents a failure to apply a code record's write mode to
// a target file.
type OutputError struct {
	// File is the relative file path the write targeted.
	File string
	// Mode is the write mode in effect ("APPEND", "PREPEND", "REMOVE").
	Mode string
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *OutputError) Error() string {
	msg := "output error"
	if e.File != "" {
		msg += " writing " + e.File
	}
	if e.Mode != "" {
		msg += fmt.Sprintf(" (mode %s)", e.Mode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *OutputError) Unwrap() error { return e.Cause }

func (e *OutputError) Is(target error) bool { return target == ErrOutput }

// DiffError represents one or more expected/actual file mismatches found
// while comparing a translate run's output against an expected directory.
type DiffError struct {
	// FailedFiles is the list of file names that differed.
	FailedFiles []string
	// TotalFiles is the number of files compared.
	TotalFiles int
}

func (e *DiffError) Error() string {
	return fmt.Sprintf("found %d failed test(s) from %d", len(e.FailedFiles), e.TotalFiles)
}

func (e *DiffError) Is(target error) bool { return target == ErrDiff }

// ProgrammerError represents a condition the engine treats as a fatal
// implementation bug rather than a recoverable runtime error: script
// payload arity above the documented maximum, or a closed-enum variant
// left unhandled. Code that detects one of these conditions panics with
// a *ProgrammerError. Nothing in the translator recovers that panic: it
// is fatal to the process, and the ErrorHandler script position is not
// invoked for it.
type ProgrammerError struct {
	Message string
}

func (e *ProgrammerError) Error() string {
	return "programmer error: " + e.Message
}

// Panic raises a ProgrammerError with the given formatted message.
func Panic(format string, args ...any) {
	panic(&ProgrammerError{Message: fmt.Sprintf(format, args...)})
}
