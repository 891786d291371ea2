package style

import "errors"

var (
	// ErrUnknownAttribute is returned by Parse for words it does not recognize.
	ErrUnknownAttribute = errors.New("unknown style attribute")
	// ErrMissingColor is returned by Parse for fg= or bg= without a color.
	ErrMissingColor = errors.New("color attribute without a value")
)

// ErrUnknownProfile is returned by ParseProfile.
var ErrUnknownProfile = errors.New("unknown color profile")
