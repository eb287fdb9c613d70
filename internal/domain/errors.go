package domain

import "errors"

var (
	ErrInvalidLevel     = errors.New("invalid level")
	ErrInvalidEventType = errors.New("invalid event type")
)
