package core

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (character position in the line)
}

// Direction of travel within the buffer
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// stepChar moves pos one character in the given direction, crossing line
// boundaries. Returns the new position and whether the move happened.
// Used by the word motions, which treat the end of a line as a space;
// h/l deliberately do not go through here.
func stepChar(b *Buffer, pos Position, dir Direction) (Position, bool) {
	if pos.Row < 0 || pos.Row >= b.LineCount() {
		return pos, false
	}

	switch dir {
	case Forward:
		if pos.Col+1 < b.LineLen(pos.Row) {
			pos.Col++
			return pos, true
		}
		if pos.Row+1 < b.LineCount() {
			pos.Row++
			pos.Col = 0
			return pos, true
		}
		return pos, false

	default: // Backward
		if pos.Col > 0 {
			pos.Col--
			return pos, true
		}
		if pos.Row > 0 {
			pos.Row--
			pos.Col = b.lastCol(pos.Row)
			return pos, true
		}
		return pos, false
	}
}

// bufferEnd returns the position of the buffer's final character.
func bufferEnd(b *Buffer) Position {
	row := b.LineCount() - 1
	return Position{Row: row, Col: b.lastCol(row)}
}

// stepCharSkipSpaces moves at least one character, then keeps moving while
// positioned on whitespace. An empty line is not whitespace, so it acts as
// a stop (Vim's w/b stop on empty lines).
func stepCharSkipSpaces(b *Buffer, pos Position, dir Direction) (Position, bool) {
	next, ok := stepChar(b, pos, dir)
	if !ok {
		return pos, false
	}

	for b.IsSpace(next) {
		next, ok = stepChar(b, next, dir)
		if !ok {
			return pos, false
		}
	}
	return next, true
}

// stepLine moves pos one line in the given direction, clamping the column
// to the valid range of the destination line.
func stepLine(b *Buffer, pos Position, dir Direction) (Position, bool) {
	switch dir {
	case Forward:
		if pos.Row+1 >= b.LineCount() {
			return pos, false
		}
		pos.Row++
	default:
		if pos.Row <= 0 {
			return pos, false
		}
		pos.Row--
	}

	if last := b.lastCol(pos.Row); pos.Col > last {
		pos.Col = last
	}
	return pos, true
}
