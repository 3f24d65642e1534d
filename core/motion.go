package core

// MotionKind identifies a normal-mode motion.
type MotionKind int

const (
	MotionLeft  MotionKind = iota // h
	MotionDown                    // j
	MotionUp                      // k
	MotionRight                   // l
	MotionLineStart               // 0
	MotionWordStart               // w
	MotionWordEnd                 // e
	MotionWordBackward            // b
	MotionFindForward             // f{c}
	MotionFindBackward            // F{c}
	MotionTillForward             // t{c}
	MotionTillBackward            // T{c}
)

// Motion is a fully specified motion. Target is only meaningful for the
// character searches (f/F/t/T).
type Motion struct {
	Kind   MotionKind
	Target rune
}

// IsSearch reports whether the motion is a character search.
func (m Motion) IsSearch() bool {
	switch m.Kind {
	case MotionFindForward, MotionFindBackward, MotionTillForward, MotionTillBackward:
		return true
	}
	return false
}

// IsVertical reports whether the motion moves across lines (j/k), which is
// what the sticky-column rule applies to.
func (m Motion) IsVertical() bool {
	return m.Kind == MotionDown || m.Kind == MotionUp
}

// Reversed returns the motion with its search direction flipped
// (f<->F, t<->T). Non-search motions are returned unchanged.
func (m Motion) Reversed() Motion {
	switch m.Kind {
	case MotionFindForward:
		m.Kind = MotionFindBackward
	case MotionFindBackward:
		m.Kind = MotionFindForward
	case MotionTillForward:
		m.Kind = MotionTillBackward
	case MotionTillBackward:
		m.Kind = MotionTillForward
	}
	return m
}

// Resolve computes the target position for motion m applied with the given
// count. It never fails: motions that cannot move any further return the
// position reached so far, clamped to the buffer.
func Resolve(b *Buffer, pos Position, m Motion, count int) Position {
	if count < 1 {
		count = 1
	}
	pos = b.clamp(pos)

	switch m.Kind {
	case MotionLeft:
		pos.Col = max(pos.Col-count, 0)

	case MotionRight:
		pos.Col = min(pos.Col+count, b.lastCol(pos.Row))

	case MotionDown:
		pos.Row = min(pos.Row+count, b.LineCount()-1)
		pos.Col = min(pos.Col, b.lastCol(pos.Row))

	case MotionUp:
		pos.Row = max(pos.Row-count, 0)
		pos.Col = min(pos.Col, b.lastCol(pos.Row))

	case MotionLineStart:
		pos.Col = 0

	case MotionWordStart:
		// Partial progress is kept when the buffer runs out, so w at the
		// last word still reaches its final character.
		for i := 0; i < count; i++ {
			next, ok := nextWordStart(b, pos)
			pos = next
			if !ok {
				break
			}
		}

	case MotionWordEnd:
		for i := 0; i < count; i++ {
			next, ok := nextWordEnd(b, pos)
			pos = next
			if !ok {
				break
			}
		}

	case MotionWordBackward:
		for i := 0; i < count; i++ {
			next, ok := prevWordStart(b, pos)
			pos = next
			if !ok {
				break
			}
		}

	default:
		if target, ok := searchLine(b, pos, m, count); ok {
			pos = target
		}
	}

	return pos
}

// searchLine scans the current line for the count-th occurrence of the
// motion's target character. f/t scan forward from the column after the
// cursor, F/T backward from the column before it. The scan never leaves the
// line; ok is false when fewer than count occurrences exist, in which case
// pos is returned unchanged.
func searchLine(b *Buffer, pos Position, m Motion, count int) (Position, bool) {
	line := b.Line(pos.Row)

	switch m.Kind {
	case MotionFindForward, MotionTillForward:
		found := 0
		for col := pos.Col + 1; col < len(line); col++ {
			if line[col] != m.Target {
				continue
			}
			found++
			if found == count {
				if m.Kind == MotionTillForward {
					col--
				}
				pos.Col = col
				return pos, true
			}
		}

	case MotionFindBackward, MotionTillBackward:
		found := 0
		for col := pos.Col - 1; col >= 0; col-- {
			if line[col] != m.Target {
				continue
			}
			found++
			if found == count {
				if m.Kind == MotionTillBackward {
					col++
				}
				pos.Col = col
				return pos, true
			}
		}
	}

	return pos, false
}
