package core

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

// CharClass categorizes a buffer character for word-motion purposes.
// Vim's small-word rules distinguish alphanumeric/underscore runs from
// runs of other printable characters.
type CharClass int

const (
	ClassSpace CharClass = iota
	ClassWord            // alphanumeric or underscore
	ClassPunct           // any other non-blank character
)

// Buffer is a 2D character grid the game round is played on (Using Runes).
// It is immutable for the lifetime of a round and replaced wholesale when
// a new round starts.
type Buffer struct {
	lines [][]rune
}

// NewBuffer creates a buffer from a slice of lines.
func NewBuffer(lines []string) *Buffer {
	b := &Buffer{lines: make([][]rune, len(lines))}
	for i, line := range lines {
		b.lines[i] = []rune(line)
	}
	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
	}
	return b
}

// NewBufferFromBytes creates a buffer by splitting content on newlines.
func NewBufferFromBytes(content []byte) *Buffer {
	text := strings.TrimSuffix(string(content), "\n")
	return NewBuffer(strings.Split(text, "\n"))
}

// LineCount returns the number of lines, including empty ones.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the rune count of the line at row, or 0 if out of bounds.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Line returns the runes of the line at row, or nil if out of bounds.
// The returned slice must not be modified.
func (b *Buffer) Line(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

// Lines returns the buffer content as strings (for rendering).
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, r := range b.lines {
		out[i] = string(r)
	}
	return out
}

// CharAt returns the character at pos. Querying outside the valid range is
// a contract violation and reports ErrOutOfBounds.
func (b *Buffer) CharAt(pos Position) (rune, error) {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return 0, fmt.Errorf("CharAt: %w: row %d out of bounds [0, %d)", ErrOutOfBounds, pos.Row, len(b.lines))
	}
	line := b.lines[pos.Row]
	if pos.Col < 0 || pos.Col >= len(line) {
		return 0, fmt.Errorf("CharAt: %w: col %d out of bounds [0, %d)", ErrOutOfBounds, pos.Col, len(line))
	}
	return line[pos.Col], nil
}

// ClassAt returns the character class at pos. Positions outside any line
// (including the implicit end-of-line) classify as space, which is what the
// word motions expect when crossing line boundaries.
func (b *Buffer) ClassAt(pos Position) CharClass {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return ClassSpace
	}
	line := b.lines[pos.Row]
	if pos.Col < 0 || pos.Col >= len(line) {
		return ClassSpace
	}
	return classOf(line[pos.Col])
}

// IsSpace reports whether the character at pos is whitespace.
// An empty line is not whitespace (w and b stop on empty lines), and
// neither is an out-of-bounds position.
func (b *Buffer) IsSpace(pos Position) bool {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return false
	}
	line := b.lines[pos.Row]
	if pos.Col < 0 || pos.Col >= len(line) {
		return false
	}
	return unicode.IsSpace(line[pos.Col])
}

// IsEmptyLine reports whether the line at pos has zero length.
func (b *Buffer) IsEmptyLine(pos Position) bool {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return false
	}
	return len(b.lines[pos.Row]) == 0
}

// lastCol returns the last valid cursor column for the row
// (0 for an empty line).
func (b *Buffer) lastCol(row int) int {
	if n := b.LineLen(row); n > 0 {
		return n - 1
	}
	return 0
}

// clamp returns pos clamped to a valid cursor position.
func (b *Buffer) clamp(pos Position) Position {
	if pos.Row < 0 {
		pos.Row = 0
	} else if pos.Row >= len(b.lines) {
		pos.Row = len(b.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	} else if last := b.lastCol(pos.Row); pos.Col > last {
		pos.Col = last
	}
	return pos
}

// randomAttempts bounds the rejection sampling below so a pathological
// buffer (all whitespace) cannot spin forever.
const randomAttempts = 1000

// RandomPosition returns a random position on the buffer. When allowSpace is
// false the position lands on a printable character. Returns false when no
// position could be found.
func (b *Buffer) RandomPosition(rng *rand.Rand, allowSpace bool) (Position, bool) {
	if len(b.lines) == 0 {
		return Position{}, false
	}

	for attempt := 0; attempt < randomAttempts; attempt++ {
		row := rng.Intn(len(b.lines))
		lineLen := b.LineLen(row)
		if lineLen == 0 {
			continue
		}
		pos := Position{Row: row, Col: rng.Intn(lineLen)}
		if allowSpace || !b.IsSpace(pos) {
			return pos, true
		}
	}
	return Position{}, false
}

// RandomPositionNear returns a random position within radius rows/columns of
// start, subject to the same whitespace rule as RandomPosition.
func (b *Buffer) RandomPositionNear(rng *rand.Rand, start Position, radius int, allowSpace bool) (Position, bool) {
	if len(b.lines) == 0 {
		return Position{}, false
	}

	startRow := max(start.Row-radius, 0)
	endRow := min(start.Row+radius, len(b.lines)-1)
	startCol := max(start.Col-radius, 0)

	for attempt := 0; attempt < randomAttempts; attempt++ {
		row := startRow + rng.Intn(endRow-startRow+1)
		lineLen := b.LineLen(row)
		if lineLen == 0 {
			continue
		}

		lo := min(startCol, lineLen-1)
		hi := min(start.Col+radius, lineLen-1)
		pos := Position{Row: row, Col: lo + rng.Intn(hi-lo+1)}

		if allowSpace || !b.IsSpace(pos) {
			return pos, true
		}
	}
	return Position{}, false
}

func classOf(r rune) CharClass {
	switch {
	case unicode.IsSpace(r):
		return ClassSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return ClassWord
	default:
		return ClassPunct
	}
}
