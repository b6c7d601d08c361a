// Package lexer scans source text into labeled tokens by simulating a
// table-driven DFA with maximal-munch matching.
package lexer

import "strconv"

// Position is a location in the source text.
//
// Line and Column are 1-based, the way editors display them; Offset is the
// 0-based byte offset from the start of the text, the natural index into the
// source buffer. Columns count bytes from the start of the line.
type Position struct {
	// Filename is the name of the source file, kept in every Position so
	// error messages are self-contained.
	Filename string

	// Line is the 1-based line number. A zero Line marks an invalid position.
	Line int

	// Column is the 1-based column within the line.
	Column int

	// Offset is the 0-based byte offset from the start of the source.
	Offset int
}

// String formats the position as "filename:line:column", the GCC/Clang form
// that editors and CI systems turn into clickable links.
func (p Position) String() string {
	return p.Filename + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// IsValid reports whether the position carries a real location.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p comes before other. Offset is the source of truth;
// line and column are derived from it.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// After reports whether p comes after other.
func (p Position) After(other Position) bool {
	return p.Offset > other.Offset
}

// Span is a source range from Start to End (inclusive).
type Span struct {
	Start Position
	End   Position
}

// String formats the span as "filename:line:col1-col2" when it stays on one
// line, or "filename:line:col-line:col" when it does not.
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return s.Start.Filename + ":" + strconv.Itoa(s.Start.Line) + ":" +
			strconv.Itoa(s.Start.Column) + "-" + strconv.Itoa(s.End.Column)
	}
	return s.Start.String() + "-" + strconv.Itoa(s.End.Line) + ":" + strconv.Itoa(s.End.Column)
}

// IsValid reports whether both ends are valid and ordered.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && !s.End.Before(s.Start)
}

// Contains reports whether pos falls within the span, inclusive.
func (s Span) Contains(pos Position) bool {
	return !pos.Before(s.Start) && !pos.After(s.End)
}

// Length returns the number of bytes the span covers.
func (s Span) Length() int {
	if !s.IsValid() {
		return 0
	}
	return s.End.Offset - s.Start.Offset
}
