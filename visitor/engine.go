package visitor

import (
	"github.com/erraggy/oastranslator/callstack"
	"github.com/erraggy/oastranslator/codesink"
	"github.com/erraggy/oastranslator/model"
	"github.com/erraggy/oastranslator/oaserrors"
	"github.com/erraggy/oastranslator/orderedmap"
	"github.com/erraggy/oastranslator/refresolver"
	"github.com/erraggy/oastranslator/scriptpos"
	"github.com/erraggy/oastranslator/scriptrt"
)

// stopWalk is returned internally (never to the caller of Run) when a
// script requests ActionStop; Run translates it back into a clean nil
// error once unwound to the top.
type stopWalk struct{}

func (stopWalk) Error() string { return "visitor: walk stopped by script" }

// Engine drives the traversal: it owns the scripting runtime, the
// reference resolver, and the output sink, and fires one script call per
// canonical traversal position.
type Engine struct {
	Runtime  scriptrt.Runtime
	Resolver *refresolver.Resolver
	Sink     *codesink.Sink
	// Globals is bound into every script call this Engine makes, per
	// spec.md's Script-global bindings requirement.
	Globals scriptrt.Globals
}

// Run walks doc from the spec root, firing scripts in canonical order.
// root is the continuation returned by the command's Target prelude
// call; VisitSpecStart pushes onto it rather than starting from an
// empty stack, per the root-sequencing rule in spec.md.
func (e *Engine) Run(root callstack.Stack, doc *model.Document) error {
	_, err := e.visitSpec(root, doc)
	if _, ok := err.(stopWalk); ok {
		return nil
	}
	return err
}

// start fires pos as a bracket-opening call, applies its output, and
// returns the child stack that must be threaded through this bracket's
// children and handed verbatim to the matching end call, along with the
// requested continuation action.
func (e *Engine) start(stack callstack.Stack, pos scriptpos.Position, payload any) (callstack.Stack, scriptrt.Action, error) {
	child := stack.Push(pos)
	result, err := e.call(child, pos, payload)
	if err != nil {
		return child, scriptrt.ActionContinue, err
	}
	return child, result.Action, nil
}

// end fires pos using childStack, the exact continuation start returned
// for the matching bracket open, never pushing further.
func (e *Engine) end(childStack callstack.Stack, pos scriptpos.Position, payload any) error {
	_, err := e.call(childStack, pos, payload)
	return err
}

// leaf fires a non-bracketing position: one call, no continuation
// escapes it.
func (e *Engine) leaf(stack callstack.Stack, pos scriptpos.Position, payload any) error {
	child := stack.Push(pos)
	_, err := e.call(child, pos, payload)
	return err
}

func (e *Engine) call(stack callstack.Stack, pos scriptpos.Position, payload any) (*scriptrt.Result, error) {
	callID, err := stack.CallID()
	if err != nil {
		return nil, &oaserrors.ScriptError{Position: string(pos), Message: "rendering call id", Cause: err}
	}

	fn, err := e.Runtime.LoadFunction(pos)
	if err != nil {
		return nil, err
	}

	result, err := fn.Call(payload, callID, e.Globals)
	if err != nil {
		return nil, err
	}

	if len(result.Output) > 0 {
		if err := e.Sink.Apply(result.Output); err != nil {
			return nil, err
		}
	}

	if result.Action == scriptrt.ActionStop {
		return result, stopWalk{}
	}
	return result, nil
}

// withRef implements reference discipline for a single field: if ref is a
// $ref, it brackets refStart/refEnd around resolving and visiting the
// dereferenced item; if ref is inline, it visits the item directly with no
// extra bracket. Either way visitInline never sees the Reference wrapper,
// only the resolved *T.
func withRef[T any](e *Engine, stack callstack.Stack, ref model.Reference[T], refStart, refEnd scriptpos.Position, decode func(m *orderedmap.Map[any]) (*T, error), visitInline func(callstack.Stack, *T) error) error {
	if !ref.IsRef() {
		if ref.Item == nil {
			return nil
		}
		return visitInline(stack, ref.Item)
	}

	payload := map[string]any{"ref": ref.Ref}
	child, action, err := e.start(stack, refStart, payload)
	if err != nil {
		return err
	}
	if action != scriptrt.ActionSkipChildren {
		resolved, err := refresolver.Resolve(e.Resolver, ref.Ref, decode)
		if err != nil {
			return err
		}
		if err := visitInline(child, resolved); err != nil {
			return err
		}
	}
	return e.end(child, refEnd, payload)
}

