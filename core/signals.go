package core

// RoundSignal tells the host what a keystroke asked of the round as a whole.
// Motions resolve inside the session; only round-level requests surface here.
type RoundSignal int

const (
	// SignalNone means the key was consumed (or ignored) by the session.
	SignalNone RoundSignal = iota
	// SignalQuit requests shutting the game down (:q).
	SignalQuit
	// SignalNewRound requests a fresh buffer and a reset round (:n).
	SignalNewRound
)
