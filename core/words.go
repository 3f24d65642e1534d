package core

// wordBounds returns the start and end columns (inclusive) of the word
// covering col on the given line.
//
// A word is either a run of letters, digits and underscores, or a run of
// other non-blank characters. The two kinds never merge. Returns ok=false
// when col is on whitespace or outside the line.
func wordBounds(line []rune, col int) (start, end int, ok bool) {
	if len(line) == 0 || col < 0 || col >= len(line) {
		return 0, 0, false
	}

	class := classOf(line[col])
	if class == ClassSpace {
		return 0, 0, false
	}

	start, end = col, col
	for start > 0 && classOf(line[start-1]) == class {
		start--
	}
	for end+1 < len(line) && classOf(line[end+1]) == class {
		end++
	}
	return start, end, true
}

// nextWordStart advances to the start of the next word. The end of a line
// counts as a space, so the motion crosses lines; an empty line is itself
// a word-like stop. Returns false when nothing past the current word exists.
func nextWordStart(b *Buffer, pos Position) (Position, bool) {
	if _, end, ok := wordBounds(b.Line(pos.Row), pos.Col); ok {
		// Skip to the end of the current word first.
		pos.Col = end
	}

	next, ok := stepCharSkipSpaces(b, pos, Forward)
	if !ok {
		// Only whitespace remains; land on the buffer's final character
		// instead of stalling mid-word.
		return bufferEnd(b), false
	}
	return next, true
}

// nextWordEnd advances to the last character of the next word. Unlike
// nextWordStart it does not stop on empty lines.
func nextWordEnd(b *Buffer, pos Position) (Position, bool) {
	cur := pos
	for {
		next, ok := stepChar(b, cur, Forward)
		if !ok {
			return pos, false
		}
		cur = next

		if _, end, ok := wordBounds(b.Line(cur.Row), cur.Col); ok {
			cur.Col = end
			return cur, true
		}
		// On a space or an empty line, keep scanning.
	}
}

// prevWordStart moves back to the start of the current word, or to the
// start of the previous word when already there (or on whitespace).
func prevWordStart(b *Buffer, pos Position) (Position, bool) {
	if start, _, ok := wordBounds(b.Line(pos.Row), pos.Col); ok && pos.Col != start {
		pos.Col = start
		return pos, true
	}

	next, ok := stepCharSkipSpaces(b, pos, Backward)
	if !ok {
		return pos, false
	}
	if start, _, ok := wordBounds(b.Line(next.Row), next.Col); ok {
		next.Col = start
	}
	return next, true
}
