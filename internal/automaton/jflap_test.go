package automaton

import (
	"bytes"
	"strings"
	"testing"
)

const sampleJFF = `<?xml version="1.0" encoding="UTF-8"?>
<structure>
  <type>fa</type>
  <automaton>
    <state id="0" name="q0"><x>0.0</x><y>100.0</y><initial/></state>
    <state id="1" name="digit"><x>100.0</x><y>100.0</y><final/></state>
    <state id="2" name="q2"><x>200.0</x><y>100.0</y></state>
    <transition><from>0</from><to>1</to><read>[0-9]</read></transition>
    <transition><from>0</from><to>2</to><read></read></transition>
    <transition><from>2</from><to>1</to><read>!</read></transition>
  </automaton>
</structure>`

func TestReadJFF(t *testing.T) {
	nfa, err := ReadJFF(strings.NewReader(sampleJFF))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if nfa.Start != 0 {
		t.Errorf("start = %d, want 0", nfa.Start)
	}
	label, ok := nfa.LabelOf(1)
	if !ok || label != "digit" {
		t.Errorf("LabelOf(1) = %q, %v, want \"digit\", true (label from state name)", label, ok)
	}

	// [0-9] expands to ten transitions.
	for _, digit := range "0123456789" {
		if moved := nfa.Move([]State{0}, digit); len(moved) != 1 || moved[0] != 1 {
			t.Errorf("Move({0}, %q) = %v, want [1]", digit, moved)
		}
	}

	// Empty <read> is an ε-transition.
	closure := nfa.EpsilonClosure([]State{0})
	if len(closure) != 2 || closure[1] != 2 {
		t.Errorf("EpsilonClosure(0) = %v, want [0 2]", closure)
	}
}

func TestReadJFF_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "not xml",
			input: "not xml at all",
		},
		{
			name:  "wrong type",
			input: `<structure><type>grammar</type><automaton></automaton></structure>`,
		},
		{
			name: "no initial state",
			input: `<structure><type>fa</type><automaton>
				<state id="0" name="q0"/></automaton></structure>`,
		},
		{
			name: "two initial states",
			input: `<structure><type>fa</type><automaton>
				<state id="0" name="q0"><initial/></state>
				<state id="1" name="q1"><initial/></state>
				</automaton></structure>`,
		},
		{
			name: "multi-character read",
			input: `<structure><type>fa</type><automaton>
				<state id="0" name="q0"><initial/></state>
				<state id="1" name="q1"/>
				<transition><from>0</from><to>1</to><read>ab</read></transition>
				</automaton></structure>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJFF(strings.NewReader(tt.input)); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestWriteJFF_RoundTrip(t *testing.T) {
	nfa := NewNFA(0)
	nfa.Add(0, '!', 1)
	nfa.Add(1, '=', 2)
	nfa.Add(0, Epsilon, 2)
	nfa.MarkAccept(1, "q1")
	nfa.MarkAccept(2, "q2")

	var buf bytes.Buffer
	if err := WriteJFF(&buf, nfa); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	reloaded, err := ReadJFF(&buf)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}

	if reloaded.Start != 0 {
		t.Errorf("start = %d, want 0", reloaded.Start)
	}
	if moved := reloaded.Move([]State{0}, '!'); len(moved) != 1 || moved[0] != 1 {
		t.Errorf("Move({0}, '!') = %v, want [1]", moved)
	}
	if closure := reloaded.EpsilonClosure([]State{0}); len(closure) != 2 || closure[1] != 2 {
		t.Errorf("EpsilonClosure(0) = %v, want [0 2]", closure)
	}
	if _, ok := reloaded.LabelOf(2); !ok {
		t.Errorf("state 2 lost its accepting mark in the round trip")
	}
}

func TestReadJFF_ThenSubset(t *testing.T) {
	nfa, err := ReadJFF(strings.NewReader(sampleJFF))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dfa, err := nfa.Subset()
	if err != nil {
		t.Fatalf("unexpected subset error: %v", err)
	}

	// Both "5" and "!" reach the accepting subset.
	if state, ok := dfa.Next(dfa.Start(), '5'); !ok {
		t.Errorf("no transition on '5'")
	} else if _, accepting := dfa.LabelOf(state); !accepting {
		t.Errorf("state after '5' is not accepting")
	}
	if state, ok := dfa.Next(dfa.Start(), '!'); !ok {
		t.Errorf("no transition on '!' (should exist through the ε-transition)")
	} else if label, _ := dfa.LabelOf(state); label != "digit" {
		t.Errorf("state after '!' has label %q, want \"digit\"", label)
	}
}
