package core

type Mode string

const (
	NormalMode  Mode = "normal"
	CommandMode Mode = "command"
)
