package automaton

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"
)

// WriteTransitionsCSV writes a transition table in the From,Input,To format
// that LoadTransitionsCSV reads. Rows are sorted by state then symbol so the
// output is deterministic.
func WriteTransitionsCSV(w io.Writer, transitions []Transition) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"From", "Input", "To"}); err != nil {
		return err
	}
	sorted := make([]Transition, len(transitions))
	copy(sorted, transitions)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		return sorted[i].Symbol < sorted[j].Symbol
	})
	for _, t := range sorted {
		record := []string{
			strconv.Itoa(int(t.From)),
			string(t.Symbol),
			strconv.Itoa(int(t.To)),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteAcceptStatesJSON writes the accepting-state map as a JSON array of
// [state, label] pairs, sorted by state id.
func WriteAcceptStatesJSON(w io.Writer, accepts []AcceptState) error {
	sorted := make([]AcceptState, len(accepts))
	copy(sorted, accepts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].State < sorted[j].State })
	pairs := make([][2]interface{}, len(sorted))
	for i, a := range sorted {
		pairs[i] = [2]interface{}{int(a.State), a.Label}
	}
	return json.NewEncoder(w).Encode(pairs)
}
