package automaton

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// NFA is a nondeterministic finite automaton, the intermediate form produced
// by hand-drawn automata (JFLAP files) before subset construction turns them
// into a scannable DFA. ε-transitions use the Epsilon symbol.
type NFA struct {
	Start  State
	next   map[transitionKey][]State
	accept map[State]string
}

// NewNFA creates an empty NFA with the given start state.
func NewNFA(start State) *NFA {
	return &NFA{
		Start:  start,
		next:   make(map[transitionKey][]State),
		accept: make(map[State]string),
	}
}

// Add records a transition. Pass Epsilon as the symbol for an ε-transition.
// Duplicate rows accumulate targets; that is what makes the automaton an NFA.
func (n *NFA) Add(from State, symbol rune, to State) {
	key := transitionKey{from, symbol}
	for _, existing := range n.next[key] {
		if existing == to {
			return
		}
	}
	n.next[key] = append(n.next[key], to)
}

// MarkAccept marks state as accepting with the given token label.
func (n *NFA) MarkAccept(state State, label string) {
	n.accept[state] = label
}

// LabelOf returns the token label of state if it is accepting.
func (n *NFA) LabelOf(state State) (string, bool) {
	label, ok := n.accept[state]
	return label, ok
}

// EpsilonClosure returns every state reachable from states through
// ε-transitions alone, including the states themselves. The result is sorted.
func (n *NFA) EpsilonClosure(states []State) []State {
	closure := make(map[State]bool, len(states))
	stack := make([]State, 0, len(states))
	for _, s := range states {
		closure[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range n.next[transitionKey{s, Epsilon}] {
			if !closure[next] {
				closure[next] = true
				stack = append(stack, next)
			}
		}
	}
	return sortedStates(closure)
}

// Move returns the set of states reachable from states by consuming symbol,
// before ε-closure. The result is sorted.
func (n *NFA) Move(states []State, symbol rune) []State {
	result := make(map[State]bool)
	for _, s := range states {
		for _, next := range n.next[transitionKey{s, symbol}] {
			result[next] = true
		}
	}
	return sortedStates(result)
}

// Alphabet returns the distinct non-ε input symbols, sorted.
func (n *NFA) Alphabet() []rune {
	seen := make(map[rune]bool)
	for key := range n.next {
		if key.symbol != Epsilon {
			seen[key.symbol] = true
		}
	}
	out := make([]rune, 0, len(seen))
	for symbol := range seen {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Subset converts the NFA to a DFA with the subset (powerset) construction.
//
// DFA state 0 is the ε-closure of the NFA start state; further states are
// numbered in breadth-first discovery order, so the result is deterministic
// for a given NFA. When a subset contains several NFA accepting states, their
// labels are joined with ", " in sorted state order.
func (n *NFA) Subset() (*DFA, error) {
	type subset struct {
		states []State
		id     State
	}

	startClosure := n.EpsilonClosure([]State{n.Start})
	index := map[string]State{stateSetKey(startClosure): 0}
	queue := []subset{{states: startClosure, id: 0}}

	var transitions []Transition
	var accepts []AcceptState
	if label, ok := n.subsetLabel(startClosure); ok {
		accepts = append(accepts, AcceptState{State: 0, Label: label})
	}

	alphabet := n.Alphabet()
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, symbol := range alphabet {
			moved := n.Move(current.states, symbol)
			if len(moved) == 0 {
				continue
			}
			closure := n.EpsilonClosure(moved)
			key := stateSetKey(closure)
			id, ok := index[key]
			if !ok {
				id = State(len(index))
				index[key] = id
				queue = append(queue, subset{states: closure, id: id})
				if label, accepting := n.subsetLabel(closure); accepting {
					accepts = append(accepts, AcceptState{State: id, Label: label})
				}
			}
			transitions = append(transitions, Transition{From: current.id, Symbol: symbol, To: id})
		}
	}

	return New(transitions, accepts)
}

// subsetLabel joins the labels of the accepting NFA states inside a subset.
func (n *NFA) subsetLabel(states []State) (string, bool) {
	var labels []string
	for _, s := range states {
		if label, ok := n.accept[s]; ok {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return "", false
	}
	return strings.Join(labels, ", "), true
}

func sortedStates(set map[State]bool) []State {
	out := make([]State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func stateSetKey(states []State) string {
	var b strings.Builder
	for i, s := range states {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String()
}

// LoadNFATransitionsCSV reads an NFA transition table from r. The format is
// looser than the DFA table: no header is required, blank rows, rows that do
// not have three parseable fields, and rows starting with "//" are skipped,
// an empty Input field means ε, and a multi-character Input contributes its
// first character. Duplicate (state, symbol) rows accumulate targets.
func LoadNFATransitionsCSV(r io.Reader, start State) (*NFA, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	nfa := NewNFA(start)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nfa, nil
		}
		if err != nil {
			return nil, malformedf("nfa transition table: %v", err)
		}
		if len(record) != 3 || strings.HasPrefix(strings.TrimSpace(record[0]), "//") {
			continue
		}

		from, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			continue
		}
		to, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			continue
		}
		if from < 0 || to < 0 {
			return nil, malformedf("nfa transition %d -> %d: state ids must be non-negative", from, to)
		}

		symbol := Epsilon
		if input := strings.TrimSpace(record[1]); input != "" {
			symbol, _ = utf8.DecodeRuneInString(input)
		}
		nfa.Add(State(from), symbol, State(to))
	}
}

// LoadStateTypesJSON reads the states-types file that accompanies an NFA
// table: {"initial": [ids...], "final": [[id, label], ...]}.
func LoadStateTypesJSON(r io.Reader) (initial []State, accepts []AcceptState, err error) {
	var raw struct {
		Initial []int               `json:"initial"`
		Final   [][]json.RawMessage `json:"final"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, malformedf("states-types file: %v", err)
	}

	for _, id := range raw.Initial {
		if id < 0 {
			return nil, nil, malformedf("initial state %d is negative", id)
		}
		initial = append(initial, State(id))
	}
	for i, pair := range raw.Final {
		if len(pair) != 2 {
			return nil, nil, malformedf("final-state entry %d: expected a [state, label] pair", i)
		}
		var state int
		if err := json.Unmarshal(pair[0], &state); err != nil {
			return nil, nil, malformedf("final-state entry %d: state id: %v", i, err)
		}
		if state < 0 {
			return nil, nil, malformedf("final-state entry %d: state id %d is negative", i, state)
		}
		var label string
		if err := json.Unmarshal(pair[1], &label); err != nil {
			return nil, nil, malformedf("final-state entry %d: label: %v", i, err)
		}
		accepts = append(accepts, AcceptState{State: State(state), Label: label})
	}
	return initial, accepts, nil
}
