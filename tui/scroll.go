package tui

import "github.com/ionut-t/hjkl/core"

// scrollPadding is how many lines the cursor keeps between itself and the
// viewport edge before scrolling kicks in.
const scrollPadding = 3

// scrollState tracks which slice of the buffer is on screen.
type scrollState struct {
	top     int
	padding int
}

func newScrollState() scrollState {
	return scrollState{padding: scrollPadding}
}

// adjust scrolls just enough to keep the cursor inside the padded area,
// never past the end of the buffer.
func (s *scrollState) adjust(cursor core.Position, bufferLines, visibleHeight int) {
	if visibleHeight <= 0 {
		return
	}

	if cursor.Row < s.top+s.padding {
		s.top = max(cursor.Row-s.padding, 0)
	}

	if cursor.Row > s.top+visibleHeight-s.padding-1 {
		s.top = cursor.Row + s.padding + 1 - visibleHeight
	}

	s.top = min(s.top, max(bufferLines-visibleHeight, 0))
	s.top = max(s.top, 0)
}
