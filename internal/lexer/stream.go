package lexer

import (
	"io"

	"github.com/Diassisfilho/ZigZin/internal/automaton"
)

// Stream turns repeated scanner calls into a lazy, finite token sequence.
//
// A Stream is one-shot over one input: once it has reported end of input or a
// lex error it is exhausted, and re-scanning requires a fresh Stream. The
// terminal condition is sticky, so a caller that keeps pulling after an error
// sees the same error again rather than tokens past it.
type Stream struct {
	scanner *Scanner
	err     error
}

// NewStream creates a token stream over source.
func NewStream(dfa *automaton.DFA, source, filename string, opts ...Option) *Stream {
	return &Stream{scanner: New(dfa, source, filename, opts...)}
}

// Next returns the next token. At the end of the input it returns io.EOF; on
// a lex error it returns that error, and every later call repeats it.
func (st *Stream) Next() (Token, error) {
	if st.err != nil {
		return Token{}, st.err
	}
	token, err := st.scanner.NextToken()
	if err != nil {
		st.err = err
		return Token{}, err
	}
	return token, nil
}

// Err returns the terminal error, nil while the stream is still live or when
// it ended cleanly at io.EOF.
func (st *Stream) Err() error {
	if st.err == io.EOF {
		return nil
	}
	return st.err
}

// ScanAll scans the whole source and returns every token in order.
//
// On a lex error the tokens produced before the failure are returned together
// with the error; nothing is silently dropped. A nil error means the scan
// reached the end of the input.
func ScanAll(dfa *automaton.DFA, source, filename string, opts ...Option) ([]Token, error) {
	stream := NewStream(dfa, source, filename, opts...)
	var tokens []Token
	for {
		token, err := stream.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
}
