package lexer

import (
	"strings"
	"testing"
)

func TestErrorMessagesCarryPositionAndExcerpt(t *testing.T) {
	pos := Position{Filename: "test.zz", Line: 3, Column: 7, Offset: 42}

	unrecognized := &UnrecognizedCharError{Char: '#', Position: pos}
	msg := unrecognized.Error()
	if !strings.Contains(msg, "test.zz:3:7") || !strings.Contains(msg, "'#'") {
		t.Errorf("UnrecognizedCharError message = %q, want position and character", msg)
	}

	deadEnd := &DeadEndError{Consumed: "ab", State: 5, Position: pos}
	msg = deadEnd.Error()
	if !strings.Contains(msg, "test.zz:3:7") || !strings.Contains(msg, `"ab"`) || !strings.Contains(msg, "state 5") {
		t.Errorf("DeadEndError message = %q, want position, consumed run and state", msg)
	}
}
