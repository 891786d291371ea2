package align

import "errors"

var (
	// ErrUnknownAxis is returned when a configured axis name is not recognized.
	ErrUnknownAxis = errors.New("unknown axis")

	// ErrUnknownAlignment is returned when a configured edge name is not recognized.
	ErrUnknownAlignment = errors.New("unknown alignment")
)
