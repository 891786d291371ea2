package style

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// ParseProfile reads a color profile name: none (or ascii), ansi, ansi256 or
// truecolor. An empty name is none.
func ParseProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "ascii", "false", "off":
		return termenv.Ascii, nil
	case "ansi", "16":
		return termenv.ANSI, nil
	case "ansi256", "256":
		return termenv.ANSI256, nil
	case "truecolor", "24bit", "true", "on":
		return termenv.TrueColor, nil
	}
	return termenv.Ascii, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// ProfileName is the inverse of ParseProfile.
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.ANSI:
		return "ansi"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.TrueColor:
		return "truecolor"
	default:
		return "none"
	}
}
