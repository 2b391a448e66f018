package probe

import "errors"

// Common errors.
var (
	ErrInvalidDimension   = errors.New("dimension must be positive")
	ErrInvalidSampleCount = errors.New("invalid sample count")
	ErrUnknownMode        = errors.New("unknown probe mode")
)
