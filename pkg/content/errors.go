package content

import "errors"

var (
	// ErrIncongruent is returned by Overlay when front and back differ in width.
	ErrIncongruent = errors.New("overlay operands differ in width")

	// ErrNotGrapheme is returned when a string is not exactly one grapheme cluster.
	ErrNotGrapheme = errors.New("not a single grapheme cluster")
)
