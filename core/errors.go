package core

import "errors"

var (
	ErrOutOfBounds    = errors.New("position out of bounds")
	ErrEmptyBuffer    = errors.New("empty buffer")
	ErrInvalidCommand = errors.New("invalid command")
	ErrInvalidMotion  = errors.New("invalid motion")
)
