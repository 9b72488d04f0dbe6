package interval

import "github.com/pkg/errors"

var (
	// ErrInvalidTransition is returned when an operation is not allowed in the current phase.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrDurationOutOfRange is returned for session lengths outside 1-60 minutes.
	ErrDurationOutOfRange = errors.New("duration out of range")
)
