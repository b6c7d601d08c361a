// Package automaton provides the table-driven DFA that drives lexical analysis.
// The automaton is described by external data (a transition table and an
// accepting-state map), validated once at construction, and immutable afterwards.
package automaton

import (
	"fmt"
	"sort"
)

// State identifies one DFA state. State 0 is the start state by convention.
type State int

// Epsilon is the symbol used for ε-transitions in NFA descriptions.
// DFA transition tables must not contain it.
const Epsilon rune = 0

// Transition is one row of a transition table: from --symbol--> to.
type Transition struct {
	From   State
	Symbol rune
	To     State
}

// AcceptState pairs an accepting state with its token label.
type AcceptState struct {
	State State
	Label string
}

// MalformedError reports a structurally invalid automaton description:
// bad state ids, non-determinism, or duplicate accepting entries.
// It is detected at construction time and is fatal to startup.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return "malformed automaton: " + e.Reason
}

func malformedf(format string, args ...interface{}) error {
	return &MalformedError{Reason: fmt.Sprintf(format, args...)}
}

type transitionKey struct {
	from   State
	symbol rune
}

// DFA is an immutable deterministic finite automaton.
//
// The transition function is partial: a (state, symbol) pair with no entry
// means the automaton cannot continue along that symbol, which the caller
// interprets (end of a token, or a lex error). A DFA is safe for concurrent
// use by any number of scanners once constructed.
type DFA struct {
	next   map[transitionKey]State
	accept map[State]string
}

// New builds a DFA from a transition table and an accepting-state map.
//
// It returns a *MalformedError if a state id is negative, if two rows give the
// same (state, symbol) pair different targets (non-determinism), or if the
// accepting list names the same state twice. Exact duplicate transition rows
// are tolerated and collapsed. Accepting states that no transition reaches are
// accepted here; Lint reports them.
func New(transitions []Transition, accepts []AcceptState) (*DFA, error) {
	next := make(map[transitionKey]State, len(transitions))
	for _, t := range transitions {
		if t.From < 0 || t.To < 0 {
			return nil, malformedf("transition %d -%q-> %d: state ids must be non-negative", t.From, t.Symbol, t.To)
		}
		if t.Symbol == Epsilon {
			return nil, malformedf("transition from state %d: ε-transitions are not allowed in a DFA", t.From)
		}
		key := transitionKey{t.From, t.Symbol}
		if prev, ok := next[key]; ok && prev != t.To {
			return nil, malformedf("non-deterministic: state %d on %q goes to both %d and %d", t.From, t.Symbol, prev, t.To)
		}
		next[key] = t.To
	}

	accept := make(map[State]string, len(accepts))
	for _, a := range accepts {
		if a.State < 0 {
			return nil, malformedf("accepting state %d: state ids must be non-negative", a.State)
		}
		if _, ok := accept[a.State]; ok {
			return nil, malformedf("duplicate accepting state %d", a.State)
		}
		accept[a.State] = a.Label
	}

	return &DFA{next: next, accept: accept}, nil
}

// Start returns the initial state.
func (d *DFA) Start() State {
	return 0
}

// Next returns the successor of state on symbol. The second result is false
// when no transition is defined; that is not an error by itself.
func (d *DFA) Next(state State, symbol rune) (State, bool) {
	to, ok := d.next[transitionKey{state, symbol}]
	return to, ok
}

// LabelOf returns the token label of state if it is accepting.
func (d *DFA) LabelOf(state State) (string, bool) {
	label, ok := d.accept[state]
	return label, ok
}

// Transitions returns the transition table sorted by state, then symbol.
func (d *DFA) Transitions() []Transition {
	out := make([]Transition, 0, len(d.next))
	for key, to := range d.next {
		out = append(out, Transition{From: key.from, Symbol: key.symbol, To: to})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// AcceptStates returns the accepting-state map sorted by state id.
func (d *DFA) AcceptStates() []AcceptState {
	out := make([]AcceptState, 0, len(d.accept))
	for state, label := range d.accept {
		out = append(out, AcceptState{State: state, Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })
	return out
}

// Alphabet returns the distinct input symbols of the transition table, sorted.
func (d *DFA) Alphabet() []rune {
	seen := make(map[rune]bool)
	for key := range d.next {
		seen[key.symbol] = true
	}
	out := make([]rune, 0, len(seen))
	for symbol := range seen {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Lint returns warnings about suspicious but legal table entries: accepting
// states that no transition reaches (they can never produce a token) and
// accepting states that are also the start state (they would accept the empty
// lexeme, which the scanner never emits). Warnings are sorted and stable.
func (d *DFA) Lint() []string {
	reachable := make(map[State]bool)
	for _, to := range d.next {
		reachable[to] = true
	}

	var warnings []string
	for _, a := range d.AcceptStates() {
		if a.State == d.Start() {
			warnings = append(warnings, fmt.Sprintf("accepting state %d (%q) is the start state; the empty lexeme is never emitted", a.State, a.Label))
			continue
		}
		if !reachable[a.State] {
			warnings = append(warnings, fmt.Sprintf("accepting state %d (%q) has no inbound transition and is unreachable", a.State, a.Label))
		}
	}
	return warnings
}
