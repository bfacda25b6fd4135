package util

import (
	"fmt"
	"unicode/utf8"
)

// Position is a location in a text buffer. Line and Column are 1-based,
// Offset is a 0-based byte offset. Column counts UTF-16 code units so that
// it lines up with what source map consumers expect.
type Position struct {
	Offset int
	Line   int
	Column int
}

// NewPosition returns the position at the very beginning of a text.
func NewPosition() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceLocation is a span of the original template source.
type SourceLocation struct {
	Start  Position
	End    Position
	Source string
}

// LocStub is the sentinel for "no location". Pushing text attributed to it
// records a start mapping but never an end mapping.
var LocStub = &SourceLocation{
	Start: Position{Offset: 0, Line: 1, Column: 1},
	End:   Position{Offset: 0, Line: 1, Column: 1},
}

// String returns a string representation of the location
func (l *SourceLocation) String() string {
	if l == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s-%s", l.Start, l.End)
}

// AdvancePositionWithMutation moves pos past the first numberOfCharacters
// bytes of source, scanning for line breaks. A negative count means the
// whole source.
func AdvancePositionWithMutation(pos *Position, source string, numberOfCharacters int) *Position {
	if numberOfCharacters < 0 || numberOfCharacters > len(source) {
		numberOfCharacters = len(source)
	}
	linesCount := 0
	lastNewLinePos := -1
	for i := 0; i < numberOfCharacters; i++ {
		if source[i] == '\n' {
			linesCount++
			lastNewLinePos = i
		}
	}

	pos.Offset += numberOfCharacters
	pos.Line += linesCount
	if lastNewLinePos == -1 {
		pos.Column += UTF16Len(source[:numberOfCharacters])
	} else {
		pos.Column = UTF16Len(source[lastNewLinePos:numberOfCharacters])
	}
	return pos
}

// AdvancePositionWithClone is AdvancePositionWithMutation on a copy.
func AdvancePositionWithClone(pos Position, source string, numberOfCharacters int) Position {
	AdvancePositionWithMutation(&pos, source, numberOfCharacters)
	return pos
}

// UTF16Len returns the number of UTF-16 code units needed to encode s.
// Invalid bytes count as one unit each.
func UTF16Len(s string) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
		i += size
	}
	return n
}
