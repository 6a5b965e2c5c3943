// Package callstack implements component G: the immutable, ordered list
// of script positions threaded through a traversal as the call_id. A
// Start call's returned continuation must be pushed with the position
// and handed to every child, then passed verbatim to the matching End
// call, so scripts can recover the exact path that led to them.
//
// Grounded on the original implementation's impl Add<Script> for
// &[Script] (appending a position to a call-stack slice produces a new
// slice, never mutates the old one) and Script::Display (the call stack
// serializes as JSON for the call_id argument).
package callstack

import (
	"encoding/json"

	"github.com/erraggy/oastranslator/scriptpos"
)

// Stack is an immutable ordered list of script positions. The zero value
// is an empty stack.
type Stack struct {
	positions []scriptpos.Position
}

// Push returns a new Stack with pos appended, leaving the receiver
// unmodified so siblings in the traversal can each extend the same
// parent stack independently.
func (s Stack) Push(pos scriptpos.Position) Stack {
	next := make([]scriptpos.Position, len(s.positions)+1)
	copy(next, s.positions)
	next[len(s.positions)] = pos
	return Stack{positions: next}
}

// Positions returns the stack's positions in call order. The returned
// slice must not be mutated.
func (s Stack) Positions() []scriptpos.Position {
	return s.positions
}

// Len returns the number of positions on the stack.
func (s Stack) Len() int {
	return len(s.positions)
}

// CallID renders the stack as the JSON array string scripts receive as
// their trailing call_id argument.
func (s Stack) CallID() (string, error) {
	data, err := json.Marshal(s.positions)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
