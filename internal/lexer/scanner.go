package lexer

import (
	"io"
	"unicode/utf8"

	"github.com/Diassisfilho/ZigZin/internal/automaton"
)

// Scanner drives a DFA over source text and produces one token per call.
//
// Matching is maximal munch with backtrack-to-last-accept: the scanner keeps
// extending the current lexeme while transitions exist, remembering the most
// recent accepting position, and when the automaton gets stuck it rewinds to
// that position. Only the cursor and label of the last accept are remembered;
// DFA simulation is memoryless beyond the current state, so no deeper
// snapshot is needed.
//
// The whole source is held in memory; the scanner does no I/O. A Scanner is
// single-use and single-goroutine, but the DFA behind it is immutable and may
// back any number of concurrent scanners.
type Scanner struct {
	dfa *automaton.DFA

	// source is the complete text being scanned, read-only.
	source string

	// filename is used in token positions and error messages.
	filename string

	// start is the byte offset where the current token begins.
	start int

	// current is the committed cursor: everything before it has been handed
	// out as tokens (or skipped). It only moves forward.
	current int

	// line and lineStart track the committed cursor's line number (1-based)
	// and the offset where that line begins, for column computation.
	line      int
	lineStart int

	// skip holds labels that are consumed but never emitted.
	skip map[string]bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// SkipLabels makes the scanner drop tokens with the given labels instead of
// emitting them (whitespace, comments). By default nothing is skipped: the
// upstream tables encode no skip concept, so every accepting match is a token.
func SkipLabels(labels ...string) Option {
	return func(s *Scanner) {
		if s.skip == nil {
			s.skip = make(map[string]bool, len(labels))
		}
		for _, label := range labels {
			s.skip[label] = true
		}
	}
}

// New creates a Scanner over source, starting at the beginning.
func New(dfa *automaton.DFA, source, filename string, opts ...Option) *Scanner {
	s := &Scanner{
		dfa:       dfa,
		source:    source,
		filename:  filename,
		line:      1,
		lineStart: 0,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewAt creates a Scanner that resumes from pos, which must be a position
// previously produced by a scanner over the same source (Pos, a token
// position, or an error position).
func NewAt(dfa *automaton.DFA, source, filename string, pos Position, opts ...Option) *Scanner {
	s := New(dfa, source, filename, opts...)
	s.start = pos.Offset
	s.current = pos.Offset
	s.line = pos.Line
	s.lineStart = pos.Offset - (pos.Column - 1)
	return s
}

// Pos returns the position of the committed cursor: the start of whatever
// comes next.
func (s *Scanner) Pos() Position {
	return Position{
		Filename: s.filename,
		Line:     s.line,
		Column:   s.current - s.lineStart + 1,
		Offset:   s.current,
	}
}

// NextToken returns the next token from the source.
//
// At end of input it returns io.EOF. On a lex error it returns
// *UnrecognizedCharError or *DeadEndError; the scanner does not recover, and
// further calls re-attempt from the same position.
func (s *Scanner) NextToken() (Token, error) {
	for {
		if s.isAtEnd() {
			return Token{}, io.EOF
		}

		s.start = s.current
		startPos := s.Pos()

		// Walk the automaton with a tentative cursor. The committed cursor
		// only moves once a longest accepting prefix is known.
		state := s.dfa.Start()
		cursor := s.current
		line, lineStart := s.line, s.lineStart

		// Last accepting mark: overwritten on every accept, so the longest
		// match wins.
		acceptEnd := -1
		var acceptLabel string
		var acceptLine, acceptLineStart int

		for cursor < len(s.source) {
			symbol, size := utf8.DecodeRuneInString(s.source[cursor:])
			next, ok := s.dfa.Next(state, symbol)
			if !ok {
				break
			}
			state = next
			cursor += size
			if symbol == '\n' {
				line++
				lineStart = cursor
			}
			if label, accepting := s.dfa.LabelOf(state); accepting {
				acceptEnd = cursor
				acceptLabel = label
				acceptLine, acceptLineStart = line, lineStart
			}
		}

		if acceptEnd < 0 {
			if cursor == s.current {
				symbol, _ := utf8.DecodeRuneInString(s.source[s.current:])
				return Token{}, &UnrecognizedCharError{Char: symbol, Position: startPos}
			}
			return Token{}, &DeadEndError{
				Consumed: s.source[s.start:cursor],
				State:    state,
				Position: startPos,
			}
		}

		// Commit to the longest accepted prefix; the automaton may have
		// overshot past it into a dead end, which is discarded here.
		token := Token{
			Label:    acceptLabel,
			Lexeme:   s.source[s.start:acceptEnd],
			Position: startPos,
			Length:   acceptEnd - s.start,
		}
		s.current = acceptEnd
		s.line, s.lineStart = acceptLine, acceptLineStart

		if s.skip[token.Label] {
			continue
		}
		return token, nil
	}
}

// isAtEnd reports whether the committed cursor has consumed all the source.
func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}
