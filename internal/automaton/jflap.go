package automaton

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"
)

// JFLAP .jff interchange. A .jff file is an XML document:
//
//	<structure>
//	  <type>fa</type>
//	  <automaton>
//	    <state id="0" name="q0"><x>0.0</x><y>100.0</y><initial/></state>
//	    <state id="1" name="q1"><x>100.0</x><y>100.0</y><final/></state>
//	    <transition><from>0</from><to>1</to><read>!</read></transition>
//	  </automaton>
//	</structure>
//
// An empty <read> is an ε-transition. The character classes [0-9], [a-z] and
// [A-Z] in <read> expand to one transition per member. Accepting states take
// their token label from the state's name attribute.

type jffStructure struct {
	XMLName   xml.Name     `xml:"structure"`
	Type      string       `xml:"type"`
	Automaton jffAutomaton `xml:"automaton"`
}

type jffAutomaton struct {
	States      []jffState      `xml:"state"`
	Transitions []jffTransition `xml:"transition"`
}

type jffState struct {
	ID      int       `xml:"id,attr"`
	Name    string    `xml:"name,attr"`
	X       float64   `xml:"x"`
	Y       float64   `xml:"y"`
	Initial *struct{} `xml:"initial"`
	Final   *struct{} `xml:"final"`
}

type jffTransition struct {
	From int    `xml:"from"`
	To   int    `xml:"to"`
	Read string `xml:"read"`
}

var jffClasses = map[string]struct{ lo, hi rune }{
	"[0-9]": {'0', '9'},
	"[a-z]": {'a', 'z'},
	"[A-Z]": {'A', 'Z'},
}

// ReadJFF parses a JFLAP finite-automaton file into an NFA. Exactly one state
// must carry the <initial> marker. Subset-construct the result to obtain a
// scannable DFA; if the drawing was already deterministic the construction is
// a renumbering.
func ReadJFF(r io.Reader) (*NFA, error) {
	var doc jffStructure
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, malformedf("jff file: %v", err)
	}
	if doc.Type != "fa" {
		return nil, malformedf("jff file: automaton type is %q, want fa", doc.Type)
	}

	start := State(-1)
	for _, s := range doc.Automaton.States {
		if s.ID < 0 {
			return nil, malformedf("jff state %q: id %d is negative", s.Name, s.ID)
		}
		if s.Initial != nil {
			if start >= 0 {
				return nil, malformedf("jff file: more than one initial state (%d and %d)", start, s.ID)
			}
			start = State(s.ID)
		}
	}
	if start < 0 {
		return nil, malformedf("jff file: no initial state")
	}

	nfa := NewNFA(start)
	for _, s := range doc.Automaton.States {
		if s.Final != nil {
			label := s.Name
			if label == "" {
				label = fmt.Sprintf("q%d", s.ID)
			}
			nfa.MarkAccept(State(s.ID), label)
		}
	}

	for _, t := range doc.Automaton.Transitions {
		if t.From < 0 || t.To < 0 {
			return nil, malformedf("jff transition %d -> %d: state ids must be non-negative", t.From, t.To)
		}
		if class, ok := jffClasses[t.Read]; ok {
			for c := class.lo; c <= class.hi; c++ {
				nfa.Add(State(t.From), c, State(t.To))
			}
			continue
		}
		switch {
		case t.Read == "":
			nfa.Add(State(t.From), Epsilon, State(t.To))
		case utf8.RuneCountInString(t.Read) == 1:
			symbol, _ := utf8.DecodeRuneInString(t.Read)
			nfa.Add(State(t.From), symbol, State(t.To))
		default:
			return nil, malformedf("jff transition %d -> %d: read %q is more than one character", t.From, t.To, t.Read)
		}
	}
	return nfa, nil
}

// WriteJFF writes the NFA as a JFLAP finite-automaton file. States are laid
// out on a horizontal line at x = id*100, y = 100, the layout the upstream
// conversion scripts produce.
func WriteJFF(w io.Writer, n *NFA) error {
	ids := make(map[State]bool)
	ids[n.Start] = true
	for key, targets := range n.next {
		ids[key.from] = true
		for _, to := range targets {
			ids[to] = true
		}
	}
	for s := range n.accept {
		ids[s] = true
	}

	doc := jffStructure{Type: "fa"}
	for _, id := range sortedStates(ids) {
		state := jffState{
			ID:   int(id),
			Name: fmt.Sprintf("q%d", id),
			X:    float64(id) * 100.0,
			Y:    100.0,
		}
		if id == n.Start {
			state.Initial = &struct{}{}
		}
		if _, ok := n.accept[id]; ok {
			state.Final = &struct{}{}
		}
		doc.Automaton.States = append(doc.Automaton.States, state)
	}

	for _, key := range sortedKeys(n.next) {
		for _, to := range n.next[key] {
			read := ""
			if key.symbol != Epsilon {
				read = string(key.symbol)
			}
			doc.Automaton.Transitions = append(doc.Automaton.Transitions, jffTransition{
				From: int(key.from),
				To:   int(to),
				Read: read,
			})
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func sortedKeys(next map[transitionKey][]State) []transitionKey {
	keys := make([]transitionKey, 0, len(next))
	for key := range next {
		keys = append(keys, key)
	}
	// Sorted by state then symbol for stable output.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].symbol < keys[j].symbol
	})
	return keys
}
