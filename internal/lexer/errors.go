package lexer

import (
	"fmt"

	"github.com/Diassisfilho/ZigZin/internal/automaton"
)

// UnrecognizedCharError reports a character with no outgoing transition from
// the start state: nothing was consumed, so no token of any length begins at
// this position. Fatal to the scan.
type UnrecognizedCharError struct {
	Char     rune
	Position Position
}

func (e *UnrecognizedCharError) Error() string {
	return fmt.Sprintf("%s: unrecognized character %q", e.Position, e.Char)
}

// DeadEndError reports a run of consumed characters during which no accepting
// state was ever reached: the automaton walked into a dead end with nothing
// to backtrack to. Consumed is the full run from the token's start to where
// the automaton got stuck. Fatal to the scan.
type DeadEndError struct {
	Consumed string
	State    automaton.State
	Position Position
}

func (e *DeadEndError) Error() string {
	return fmt.Sprintf("%s: no token matches %q (automaton stuck in state %d with no accepting prefix)",
		e.Position, e.Consumed, e.State)
}
