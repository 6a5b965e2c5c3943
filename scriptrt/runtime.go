package scriptrt

import (
	"github.com/erraggy/oastranslator/codesink"
	"github.com/erraggy/oastranslator/oaserrors"
	"github.com/erraggy/oastranslator/scriptpos"
)

// MaxPositionalArgs is the largest payload array length that gets
// unpacked into individual positional arguments; anything longer is a
// ProgrammerError, since no known script position in the closed set
// needs that many fields and allowing it would mask a packing bug.
const MaxPositionalArgs = 10

// Action is the visitor-facing continuation a script's return value may
// request, mirroring the teacher walker's three-valued Action
// (Continue/SkipChildren/Stop).
type Action int

const (
	ActionContinue Action = iota
	ActionSkipChildren
	ActionStop
)

// Result is a script call's decoded return value.
type Result struct {
	Action Action
	Output []codesink.CodeRecord
	// Globals, when non-nil, is the set of script-global keys the Target
	// prelude wants every later script call to see (spec.md's "the
	// user's own declarations made by the prelude"). Only meaningful on
	// the Target call's own result; ignored elsewhere.
	Globals map[string]any
}

// Globals carries the script-global bindings spec.md requires every
// script call to observe, independent of that call's own payload:
// TargetParameters (the resolved --target-parameters/x-ot-target-parameters
// value) and Declared (whatever the Target prelude returned in its own
// Result.Globals). Built once per translate command and threaded
// unchanged through every subsequent script call for that command.
type Globals struct {
	TargetParameters any
	Declared         map[string]any
}

// Runtime loads and manages compiled scripts for every position in the
// closed set.
type Runtime interface {
	// LoadFunction compiles (or returns the cached compilation of) the
	// script at pos.
	LoadFunction(pos scriptpos.Position) (Function, error)
	// Reset discards any cached compilations and per-command state,
	// called at the start of every translate command for isolation.
	Reset()
}

// Function is a single loaded, callable script.
type Function interface {
	// Call invokes the script with payload packed into positional
	// arguments per PackArgs, plus callID as the call_id, plus globals
	// bound so every script in the command can see targetParameters, a
	// null sentinel, and the Target prelude's own declarations.
	Call(payload any, callID string, globals Globals) (*Result, error)
}

// PackArgs implements the payload packing rule: a JSON array of length 1
// to MaxPositionalArgs unpacks into that many positional arguments;
// anything else (a non-array payload, or an empty array) is passed as a
// single argument. A longer array is a programmer error, since it means
// a caller is handing scriptrt a payload shape no script position
// expects.
func PackArgs(payload any) []any {
	arr, ok := payload.([]any)
	if !ok {
		return []any{payload}
	}
	if len(arr) == 0 {
		return []any{payload}
	}
	if len(arr) > MaxPositionalArgs {
		oaserrors.Panic("scriptrt: payload array has arity %d, exceeds maximum of %d positional arguments", len(arr), MaxPositionalArgs)
	}
	return arr
}
