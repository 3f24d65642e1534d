package core

import "strconv"

// maxCount caps count prefixes. Counts past this point are saturated
// rather than rejected, so "999999999w" still moves.
const maxCount = 1_000_000

// countState tracks count prefix accumulation during parsing.
type countState struct {
	value  int
	active bool
}

func (c *countState) reset() {
	c.value = 0
	c.active = false
}

// push appends a digit to the count, saturating at maxCount.
func (c *countState) push(digit int) {
	c.active = true
	c.value = c.value*10 + digit
	if c.value > maxCount {
		c.value = maxCount
	}
}

// take returns the effective count (1 when none was typed) and resets.
func (c *countState) take() int {
	count := 1
	if c.active && c.value > 0 {
		count = c.value
	}
	c.reset()
	return count
}

// parseState is the parser's position in a multi-key command.
type parseState uint8

const (
	// stateIdle is waiting for a motion, a count digit or ':'.
	stateIdle parseState = iota
	// stateAwaitChar has received f/F/t/T and waits for the target character.
	stateAwaitChar
)

// ActionKind classifies what a keystroke amounted to.
type ActionKind int

const (
	// ActionNone means the key was ignored or cancelled pending input.
	ActionNone ActionKind = iota
	// ActionPending means the key was consumed but the command is incomplete.
	ActionPending
	// ActionMotion carries a complete motion with its count.
	ActionMotion
	// ActionEnterCommand switches the session to command mode.
	ActionEnterCommand
)

// Action is the parser's verdict on a keystroke.
type Action struct {
	Kind   ActionKind
	Motion Motion
	Count  int

	// RecordSearch marks motions whose successful resolution should be
	// remembered for ';' and ','. A ',' repeat never re-records, so the
	// remembered direction stays put.
	RecordSearch bool
}

// Parser turns raw normal-mode keystrokes into Actions, one key at a time.
// It owns the pending count, the half-typed character search and the
// remembered search used by ';' and ','.
type Parser struct {
	state   parseState
	count   countState
	pending MotionKind

	search    Motion
	hasSearch bool
}

func NewParser() *Parser {
	return &Parser{}
}

// HandleKey consumes one keystroke and reports what it completed.
func (p *Parser) HandleKey(key KeyEvent) Action {
	if key.Key == KeyEscape {
		p.Reset()
		return Action{Kind: ActionNone}
	}

	if p.state == stateAwaitChar {
		return p.handleSearchTarget(key)
	}

	switch key.Key {
	case KeyLeft:
		return p.motion(Motion{Kind: MotionLeft})
	case KeyDown:
		return p.motion(Motion{Kind: MotionDown})
	case KeyUp:
		return p.motion(Motion{Kind: MotionUp})
	case KeyRight:
		return p.motion(Motion{Kind: MotionRight})
	}

	switch key.Rune {
	case 0:
		return Action{Kind: ActionNone}

	case 'h':
		return p.motion(Motion{Kind: MotionLeft})
	case 'j':
		return p.motion(Motion{Kind: MotionDown})
	case 'k':
		return p.motion(Motion{Kind: MotionUp})
	case 'l':
		return p.motion(Motion{Kind: MotionRight})
	case 'w':
		return p.motion(Motion{Kind: MotionWordStart})
	case 'e':
		return p.motion(Motion{Kind: MotionWordEnd})
	case 'b':
		return p.motion(Motion{Kind: MotionWordBackward})

	case 'f':
		return p.awaitChar(MotionFindForward)
	case 'F':
		return p.awaitChar(MotionFindBackward)
	case 't':
		return p.awaitChar(MotionTillForward)
	case 'T':
		return p.awaitChar(MotionTillBackward)

	case ';':
		return p.repeatSearch(false)
	case ',':
		return p.repeatSearch(true)

	case ':':
		p.Reset()
		return Action{Kind: ActionEnterCommand}

	case '0':
		// A leading zero is the line-start motion; otherwise it extends
		// the count.
		if !p.count.active {
			return p.motion(Motion{Kind: MotionLineStart})
		}
		p.count.push(0)
		return Action{Kind: ActionPending}

	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		p.count.push(int(key.Rune - '0'))
		return Action{Kind: ActionPending}

	default:
		// Unbound key: drop whatever was accumulated.
		p.Reset()
		return Action{Kind: ActionNone}
	}
}

// RecordSearch remembers a successfully resolved character search so that
// ';' and ',' can repeat it.
func (p *Parser) RecordSearch(m Motion) {
	if !m.IsSearch() {
		return
	}
	p.search = m
	p.hasSearch = true
}

// Reset drops any half-typed command. The remembered search survives;
// use ClearSearch for a full wipe.
func (p *Parser) Reset() {
	p.state = stateIdle
	p.pending = 0
	p.count.reset()
}

// ClearSearch forgets the remembered character search.
func (p *Parser) ClearSearch() {
	p.search = Motion{}
	p.hasSearch = false
}

// Pending returns the half-typed command for display ("12f"), or "".
func (p *Parser) Pending() string {
	var out string
	if p.count.active {
		out = strconv.Itoa(p.count.value)
	}
	if p.state == stateAwaitChar {
		switch p.pending {
		case MotionFindForward:
			out += "f"
		case MotionFindBackward:
			out += "F"
		case MotionTillForward:
			out += "t"
		case MotionTillBackward:
			out += "T"
		}
	}
	return out
}

func (p *Parser) motion(m Motion) Action {
	return Action{Kind: ActionMotion, Motion: m, Count: p.count.take()}
}

func (p *Parser) awaitChar(kind MotionKind) Action {
	p.state = stateAwaitChar
	p.pending = kind
	return Action{Kind: ActionPending}
}

func (p *Parser) handleSearchTarget(key KeyEvent) Action {
	if key.Rune == 0 && key.Key != KeySpace {
		// Still waiting for a printable target.
		return Action{Kind: ActionPending}
	}

	target := key.Rune
	if key.Key == KeySpace {
		target = ' '
	}

	m := Motion{Kind: p.pending, Target: target}
	p.state = stateIdle
	p.pending = 0

	return Action{
		Kind:         ActionMotion,
		Motion:       m,
		Count:        p.count.take(),
		RecordSearch: true,
	}
}

func (p *Parser) repeatSearch(reverse bool) Action {
	count := p.count.take()
	if !p.hasSearch {
		return Action{Kind: ActionNone}
	}

	m := p.search
	if reverse {
		m = m.Reversed()
	}
	return Action{
		Kind:         ActionMotion,
		Motion:       m,
		Count:        count,
		RecordSearch: !reverse,
	}
}
