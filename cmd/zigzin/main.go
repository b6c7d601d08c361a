// Package main provides the zigzin lexer entry point.
//
// It loads a DFA from a transition-table CSV plus an accepting-state JSON
// file (or from a single JFLAP .jff drawing, which is subset-constructed into
// a DFA), scans a source file, and prints one line per token. On a lex error
// the tokens produced so far are printed, then the error with its position
// and the offending excerpt goes to stderr.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Diassisfilho/ZigZin/internal/automaton"
	"github.com/Diassisfilho/ZigZin/internal/lexer"
)

func main() {
	transitionsPath := flag.String("transitions", "", "DFA transition table CSV (From,Input,To)")
	acceptPath := flag.String("accept", "", "accepting-state JSON ([[state, label], ...])")
	jffPath := flag.String("jff", "", "JFLAP .jff automaton (alternative to -transitions/-accept)")
	skipFlag := flag.String("skip", "", "comma-separated token labels to drop (e.g. whitespace,comment)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	sourcePath := flag.Arg(0)

	dfa, err := loadAutomaton(*transitionsPath, *acceptPath, *jffPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zigzin: %v\n", err)
		os.Exit(1)
	}
	for _, warning := range dfa.Lint() {
		fmt.Fprintf(os.Stderr, "zigzin: warning: %s\n", warning)
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zigzin: %v\n", err)
		os.Exit(1)
	}

	var opts []lexer.Option
	if *skipFlag != "" {
		opts = append(opts, lexer.SkipLabels(strings.Split(*skipFlag, ",")...))
	}

	tokens, scanErr := lexer.ScanAll(dfa, string(source), sourcePath, opts...)
	for _, token := range tokens {
		fmt.Printf("%s\t%q\t%s\n", token.Label, token.Lexeme, token.Position)
	}
	if scanErr != nil {
		fmt.Fprintf(os.Stderr, "zigzin: %v\n", scanErr)
		os.Exit(1)
	}
}

// loadAutomaton builds the DFA from whichever table files were given. A .jff
// drawing goes through subset construction, which is a plain renumbering when
// the drawing is already deterministic.
func loadAutomaton(transitionsPath, acceptPath, jffPath string) (*automaton.DFA, error) {
	switch {
	case jffPath != "" && (transitionsPath != "" || acceptPath != ""):
		return nil, fmt.Errorf("-jff cannot be combined with -transitions/-accept")
	case jffPath != "":
		f, err := os.Open(jffPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		nfa, err := automaton.ReadJFF(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", jffPath, err)
		}
		return nfa.Subset()
	case transitionsPath != "" && acceptPath != "":
		return automaton.LoadDFA(transitionsPath, acceptPath)
	default:
		return nil, fmt.Errorf("need -transitions and -accept, or -jff (see -help)")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -transitions dfa.csv -accept finals.json [-skip labels] <source-file>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s -jff automaton.jff [-skip labels] <source-file>\n", os.Args[0])
	flag.PrintDefaults()
}
