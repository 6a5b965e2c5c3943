package scriptrt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/erraggy/oastranslator/codesink"
	"github.com/erraggy/oastranslator/oaserrors"
	"github.com/erraggy/oastranslator/scriptpos"
)

// CELRuntime is the concrete Runtime backed by github.com/google/cel-go.
// Each script file holds one CEL expression; it is compiled the first
// time its position is loaded and cached for the lifetime of the
// Runtime (cleared on Reset, which the translator calls once per
// command).
type CELRuntime struct {
	scriptsRoot string
	env         *cel.Env

	mu       sync.Mutex
	programs map[scriptpos.Position]cel.Program
}

// NewCELRuntime creates a Runtime that loads scripts from files under
// scriptsRoot, named per scriptpos.ScriptFile.
func NewCELRuntime(scriptsRoot string) (*CELRuntime, error) {
	opts := []cel.EnvOption{
		cel.Variable("callId", cel.StringType),
		// Script-global bindings every script call observes (spec.md's
		// "Script-global bindings"): targetParameters as resolved for
		// this command, a null sentinel (named nullValue rather than
		// null since cel-go reserves the bare identifier "null" for its
		// own null literal and refuses to declare a variable under it),
		// and globals, the open-ended table of keys the Target prelude
		// declares for the rest of the command to read.
		cel.Variable("targetParameters", cel.DynType),
		cel.Variable("nullValue", cel.DynType),
		cel.Variable("globals", cel.MapType(cel.StringType, cel.DynType)),
	}
	for i := 0; i < MaxPositionalArgs; i++ {
		opts = append(opts, cel.Variable(fmt.Sprintf("arg%d", i), cel.DynType))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, &oaserrors.ScriptError{Message: "building CEL environment", Cause: err}
	}

	return &CELRuntime{
		scriptsRoot: scriptsRoot,
		env:         env,
		programs:    make(map[scriptpos.Position]cel.Program),
	}, nil
}

// Reset discards every cached compiled program.
func (r *CELRuntime) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs = make(map[scriptpos.Position]cel.Program)
}

// LoadFunction compiles (or returns the cached compilation of) the
// script for pos.
func (r *CELRuntime) LoadFunction(pos scriptpos.Position) (Function, error) {
	r.mu.Lock()
	prg, ok := r.programs[pos]
	r.mu.Unlock()
	if ok {
		return &celFunction{pos: pos, program: prg}, nil
	}

	path := filepath.Join(r.scriptsRoot, scriptpos.ScriptFile(pos))
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ScriptError{Position: string(pos), ScriptFile: path, Message: "reading script file", Cause: err}
	}

	ast, issues := r.env.Compile(string(source))
	if issues != nil && issues.Err() != nil {
		return nil, &oaserrors.ScriptError{Position: string(pos), ScriptFile: path, Message: "compiling script", Cause: issues.Err()}
	}

	prg, err = r.env.Program(ast)
	if err != nil {
		return nil, &oaserrors.ScriptError{Position: string(pos), ScriptFile: path, Message: "building program", Cause: err}
	}

	r.mu.Lock()
	r.programs[pos] = prg
	r.mu.Unlock()

	return &celFunction{pos: pos, program: prg}, nil
}

type celFunction struct {
	pos     scriptpos.Position
	program cel.Program
}

func (f *celFunction) Call(payload any, callID string, globals Globals) (*Result, error) {
	args := PackArgs(payload)

	activation := make(map[string]any, MaxPositionalArgs+4)
	for i := 0; i < MaxPositionalArgs; i++ {
		if i < len(args) {
			activation[fmt.Sprintf("arg%d", i)] = args[i]
		} else {
			activation[fmt.Sprintf("arg%d", i)] = nil
		}
	}
	activation["callId"] = callID
	activation["targetParameters"] = globals.TargetParameters
	activation["nullValue"] = nil
	declared := globals.Declared
	if declared == nil {
		declared = map[string]any{}
	}
	activation["globals"] = declared

	out, _, err := f.program.Eval(activation)
	if err != nil {
		return nil, &oaserrors.ScriptError{Position: string(f.pos), Message: "evaluating script", Cause: err}
	}

	native, err := out.ConvertToNative(reflect.TypeOf(map[string]any{}))
	if err != nil {
		return nil, &oaserrors.ScriptError{Position: string(f.pos), Message: "script did not return a map", Cause: err}
	}

	resultMap, ok := native.(map[string]any)
	if !ok {
		return nil, &oaserrors.ScriptError{Position: string(f.pos), Message: "script return value has unexpected shape"}
	}

	return decodeResult(f.pos, resultMap)
}

func decodeResult(pos scriptpos.Position, m map[string]any) (*Result, error) {
	result := &Result{Action: ActionContinue}

	if action, ok := m["action"]; ok {
		s, _ := action.(string)
		switch s {
		case "", "continue":
			result.Action = ActionContinue
		case "skip_children":
			result.Action = ActionSkipChildren
		case "stop":
			result.Action = ActionStop
		default:
			return nil, &oaserrors.ScriptError{Position: string(pos), Message: fmt.Sprintf("unknown action %q", s)}
		}
	}

	if g, ok := m["globals"]; ok && g != nil {
		gm, ok := g.(map[string]any)
		if !ok {
			return nil, &oaserrors.ScriptError{Position: string(pos), Message: "script globals field is not a record"}
		}
		result.Globals = gm
	}

	output, ok := m["output"]
	if !ok {
		return result, nil
	}
	items, ok := output.([]any)
	if !ok {
		single, ok := output.(map[string]any)
		if !ok {
			return nil, &oaserrors.ScriptError{Position: string(pos), Message: "script output field is neither a list nor a record"}
		}
		items = []any{single}
	}

	records := make([]codesink.CodeRecord, 0, len(items))
	for _, item := range items {
		rec, err := decodeCodeRecord(pos, item)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	result.Output = records
	return result, nil
}

func decodeCodeRecord(pos scriptpos.Position, item any) (codesink.CodeRecord, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return codesink.CodeRecord{}, &oaserrors.ScriptError{Position: string(pos), Message: "code record is not a map"}
	}

	file, _ := m["file"].(string)
	modeStr, _ := m["mode"].(string)

	var mode codesink.WriteMode
	switch modeStr {
	case "APPEND", "append":
		mode = codesink.Append
	case "PREPEND", "prepend":
		mode = codesink.Prepend
	case "REMOVE", "remove":
		mode = codesink.Remove
	default:
		return codesink.CodeRecord{}, &oaserrors.ScriptError{Position: string(pos), Message: fmt.Sprintf("unknown write mode %q", modeStr)}
	}

	var codePtr *string
	if code, ok := m["code"]; ok && code != nil {
		s, ok := code.(string)
		if !ok {
			b, err := json.Marshal(code)
			if err != nil {
				return codesink.CodeRecord{}, &oaserrors.ScriptError{Position: string(pos), Message: "code field is not a string", Cause: err}
			}
			s = string(b)
		}
		codePtr = &s
	}

	return codesink.CodeRecord{Code: codePtr, File: file, Mode: mode}, nil
}
