package core

import "strings"

// Session ties one round together: the buffer being played, the cursor,
// the motion parser and the mode. The surrounding game loop feeds it
// keystrokes and reads the cursor position back for collision checks.
type Session struct {
	buffer *Buffer
	cursor *Cursor
	parser *Parser

	mode    Mode
	cmdline string
	message string
}

func NewSession(buffer *Buffer) *Session {
	return &Session{
		buffer: buffer,
		cursor: NewCursor(),
		parser: NewParser(),
		mode:   NormalMode,
	}
}

func (s *Session) Buffer() *Buffer    { return s.buffer }
func (s *Session) Cursor() *Cursor    { return s.cursor }
func (s *Session) Position() Position { return s.cursor.Pos() }
func (s *Session) Mode() Mode         { return s.mode }

// CommandLine returns the command being typed, prompt included, or ""
// outside command mode.
func (s *Session) CommandLine() string {
	if s.mode != CommandMode {
		return ""
	}
	return ":" + s.cmdline
}

// Pending returns the half-typed normal-mode command ("12f") for display.
func (s *Session) Pending() string {
	return s.parser.Pending()
}

// Message returns the last status message (cleared by the next keystroke).
func (s *Session) Message() string {
	return s.message
}

// Reset starts a new round on the given buffer. Cursor position, search
// memory and any half-typed input are all dropped.
func (s *Session) Reset(buffer *Buffer) {
	s.buffer = buffer
	s.cursor.Reset()
	s.parser.Reset()
	s.parser.ClearSearch()
	s.mode = NormalMode
	s.cmdline = ""
	s.message = ""
}

// HandleKey processes one keystroke and reports any round-level request
// it completed.
func (s *Session) HandleKey(key KeyEvent) RoundSignal {
	s.message = ""

	if s.mode == CommandMode {
		return s.handleCommandKey(key)
	}
	return s.handleNormalKey(key)
}

func (s *Session) handleNormalKey(key KeyEvent) RoundSignal {
	action := s.parser.HandleKey(key)

	switch action.Kind {
	case ActionMotion:
		s.applyMotion(action)

	case ActionEnterCommand:
		s.mode = CommandMode
		s.cmdline = ""
	}

	return SignalNone
}

func (s *Session) applyMotion(action Action) {
	m := action.Motion

	if m.IsSearch() {
		_, found := searchLine(s.buffer, s.cursor.Pos(), m, action.Count)
		if !found {
			return
		}
		if action.RecordSearch {
			s.parser.RecordSearch(m)
		}
	}

	s.cursor.Apply(s.buffer, m, action.Count)
}

func (s *Session) handleCommandKey(key KeyEvent) RoundSignal {
	switch key.Key {
	case KeyEscape:
		s.mode = NormalMode
		s.cmdline = ""
		return SignalNone

	case KeyBackspace:
		if len(s.cmdline) > 0 {
			runes := []rune(s.cmdline)
			s.cmdline = string(runes[:len(runes)-1])
		} else {
			// Backspace on an empty command line leaves command mode.
			s.mode = NormalMode
		}
		return SignalNone

	case KeyEnter:
		cmd := s.cmdline
		s.mode = NormalMode
		s.cmdline = ""
		return s.executeCommand(cmd)

	case KeySpace:
		s.cmdline += " "
		return SignalNone

	default:
		if key.Rune != 0 {
			s.cmdline += string(key.Rune)
		}
		return SignalNone
	}
}

func (s *Session) executeCommand(cmd string) RoundSignal {
	switch strings.TrimSpace(cmd) {
	case "q", "quit":
		return SignalQuit
	case "n", "new":
		return SignalNewRound
	case "":
		return SignalNone
	default:
		s.message = "invalid command: " + cmd
		return SignalNone
	}
}
