package cache

import "errors"

var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrUnknownPolicy   = errors.New("unknown eviction policy")
)
