package automaton

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// Transition table CSV format: a "From,Input,To" header followed by one row
// per transition. From and To are non-negative integers; Input must decode to
// exactly one rune after CSV unquoting. RFC 4180 quoting covers the awkward
// symbols: `","` is a literal comma, `""""` a literal double quote, and a
// quoted field may hold a raw newline.

// LoadTransitionsCSV reads a DFA transition table from r.
func LoadTransitionsCSV(r io.Reader) ([]Transition, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	header, err := reader.Read()
	if err == io.EOF {
		return nil, malformedf("transition table is empty, expected a From,Input,To header")
	}
	if err != nil {
		return nil, malformedf("transition table header: %v", err)
	}
	if header[0] != "From" || header[1] != "Input" || header[2] != "To" {
		return nil, malformedf("transition table header is %q, want From,Input,To", header)
	}

	var transitions []Transition
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			return transitions, nil
		}
		if err != nil {
			return nil, malformedf("transition table row %d: %v", row, err)
		}

		from, err := parseState(record[0])
		if err != nil {
			return nil, malformedf("transition table row %d: From: %v", row, err)
		}
		to, err := parseState(record[2])
		if err != nil {
			return nil, malformedf("transition table row %d: To: %v", row, err)
		}

		symbol, size := utf8.DecodeRuneInString(record[1])
		if record[1] == "" {
			return nil, malformedf("transition table row %d: Input is empty, expected a single character", row)
		}
		if symbol == utf8.RuneError && size == 1 {
			return nil, malformedf("transition table row %d: Input is not valid UTF-8", row)
		}
		if size != len(record[1]) {
			return nil, malformedf("transition table row %d: Input %q is more than one character", row, record[1])
		}

		transitions = append(transitions, Transition{From: from, Symbol: symbol, To: to})
	}
}

// LoadAcceptStatesJSON reads the accepting-state map from r. The format is a
// JSON array of [state, label] pairs, e.g. [[1, "exclamation"], [2, "not_equal"]].
// Duplicate state ids are rejected later, by New.
func LoadAcceptStatesJSON(r io.Reader) ([]AcceptState, error) {
	var raw [][]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, malformedf("accepting-state file: %v", err)
	}

	accepts := make([]AcceptState, 0, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, malformedf("accepting-state entry %d: expected a [state, label] pair, got %d elements", i, len(pair))
		}
		var state int
		if err := json.Unmarshal(pair[0], &state); err != nil {
			return nil, malformedf("accepting-state entry %d: state id: %v", i, err)
		}
		if state < 0 {
			return nil, malformedf("accepting-state entry %d: state id %d is negative", i, state)
		}
		var label string
		if err := json.Unmarshal(pair[1], &label); err != nil {
			return nil, malformedf("accepting-state entry %d: label: %v", i, err)
		}
		accepts = append(accepts, AcceptState{State: State(state), Label: label})
	}
	return accepts, nil
}

// LoadDFA reads a transition table CSV and an accepting-state JSON file and
// builds the validated DFA.
func LoadDFA(transitionsPath, acceptPath string) (*DFA, error) {
	tf, err := os.Open(transitionsPath)
	if err != nil {
		return nil, err
	}
	defer tf.Close()
	transitions, err := LoadTransitionsCSV(tf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", transitionsPath, err)
	}

	af, err := os.Open(acceptPath)
	if err != nil {
		return nil, err
	}
	defer af.Close()
	accepts, err := LoadAcceptStatesJSON(af)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", acceptPath, err)
	}

	return New(transitions, accepts)
}

func parseState(field string) (State, error) {
	if field == "" {
		return 0, fmt.Errorf("empty state id")
	}
	n := 0
	for _, ch := range field {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("state id %q is not a non-negative integer", field)
		}
		n = n*10 + int(ch-'0')
		if n < 0 {
			return 0, fmt.Errorf("state id %q overflows", field)
		}
	}
	return State(n), nil
}
