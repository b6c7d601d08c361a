package lexer

// Token is one lexeme of the source text together with the label of the
// accepting state that matched it. Token kinds are not an enum: they are the
// label strings carried by the loaded automaton table (for example
// "exclamation", "identifier", "double quotes"), so the set of kinds is
// decided by the table, not compiled into this package.
//
// Tokens are values: created by the scanner, never mutated.
type Token struct {
	// Label is the token kind assigned by the accepting state.
	Label string

	// Lexeme is the exact substring of the source that was consumed.
	Lexeme string

	// Position is where the lexeme starts.
	Position Position

	// Length is the lexeme length in bytes.
	Length int
}

// String formats the token as `label(lexeme) at filename:line:column`.
func (t Token) String() string {
	return t.Label + "(" + t.Lexeme + ") at " + t.Position.String()
}

// Span returns the source range the token covers.
func (t Token) Span() Span {
	return Span{
		Start: t.Position,
		End: Position{
			Filename: t.Position.Filename,
			Line:     t.Position.Line + lineBreaks(t.Lexeme),
			Column:   endColumn(t.Position.Column, t.Lexeme),
			Offset:   t.Position.Offset + t.Length,
		},
	}
}

// lineBreaks counts the newlines inside a lexeme. Most lexemes have none;
// multi-line tokens exist when the table accepts raw newlines (strings,
// comments).
func lineBreaks(lexeme string) int {
	n := 0
	for i := 0; i < len(lexeme); i++ {
		if lexeme[i] == '\n' {
			n++
		}
	}
	return n
}

// endColumn computes the column just past the lexeme's last byte.
func endColumn(startColumn int, lexeme string) int {
	lastBreak := -1
	for i := len(lexeme) - 1; i >= 0; i-- {
		if lexeme[i] == '\n' {
			lastBreak = i
			break
		}
	}
	if lastBreak < 0 {
		return startColumn + len(lexeme)
	}
	return len(lexeme) - lastBreak
}
