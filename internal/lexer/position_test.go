package lexer

import (
	"testing"
)

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{
			name:     "valid position",
			pos:      Position{Filename: "test.zz", Line: 42, Column: 15, Offset: 100},
			expected: "test.zz:42:15",
		},
		{
			name:     "zero position",
			pos:      Position{},
			expected: ":0:0",
		},
		{
			name:     "line 1 column 1",
			pos:      Position{Filename: "main.zz", Line: 1, Column: 1, Offset: 0},
			expected: "main.zz:1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.expected {
				t.Errorf("Position.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPosition_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{"valid position", Position{Filename: "test.zz", Line: 1, Column: 1}, true},
		{"zero line", Position{Filename: "test.zz", Line: 0, Column: 1}, false},
		{"negative line", Position{Filename: "test.zz", Line: -1, Column: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.expected {
				t.Errorf("Position.IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPosition_Ordering(t *testing.T) {
	early := Position{Filename: "test.zz", Line: 1, Column: 1, Offset: 0}
	late := Position{Filename: "test.zz", Line: 3, Column: 2, Offset: 20}

	if !early.Before(late) {
		t.Errorf("early.Before(late) = false, want true")
	}
	if !late.After(early) {
		t.Errorf("late.After(early) = false, want true")
	}
	if early.Before(early) {
		t.Errorf("early.Before(early) = true, want false")
	}
}

func TestSpan_String(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		expected string
	}{
		{
			name: "single line",
			span: Span{
				Start: Position{Filename: "test.zz", Line: 42, Column: 15, Offset: 100},
				End:   Position{Filename: "test.zz", Line: 42, Column: 23, Offset: 108},
			},
			expected: "test.zz:42:15-23",
		},
		{
			name: "multiple lines",
			span: Span{
				Start: Position{Filename: "test.zz", Line: 42, Column: 15, Offset: 100},
				End:   Position{Filename: "test.zz", Line: 44, Column: 3, Offset: 130},
			},
			expected: "test.zz:42:15-44:3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.String(); got != tt.expected {
				t.Errorf("Span.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	span := Span{
		Start: Position{Filename: "test.zz", Line: 1, Column: 5, Offset: 4},
		End:   Position{Filename: "test.zz", Line: 1, Column: 9, Offset: 8},
	}

	inside := Position{Filename: "test.zz", Line: 1, Column: 7, Offset: 6}
	before := Position{Filename: "test.zz", Line: 1, Column: 1, Offset: 0}
	after := Position{Filename: "test.zz", Line: 2, Column: 1, Offset: 12}

	if !span.Contains(inside) {
		t.Errorf("Contains(inside) = false, want true")
	}
	if !span.Contains(span.Start) || !span.Contains(span.End) {
		t.Errorf("span must contain its own endpoints")
	}
	if span.Contains(before) || span.Contains(after) {
		t.Errorf("span must not contain positions outside it")
	}
}

func TestSpan_Length(t *testing.T) {
	span := Span{
		Start: Position{Filename: "test.zz", Line: 1, Column: 1, Offset: 0},
		End:   Position{Filename: "test.zz", Line: 1, Column: 5, Offset: 4},
	}
	if got := span.Length(); got != 4 {
		t.Errorf("Span.Length() = %d, want 4", got)
	}

	invalid := Span{}
	if got := invalid.Length(); got != 0 {
		t.Errorf("invalid Span.Length() = %d, want 0", got)
	}
}
