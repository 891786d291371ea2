// Package style provides terminal styles for styled content.
package style

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Termenv styles text with ANSI escape sequences through termenv. The zero
// value applies nothing.
//
// Colors are hex strings ("#ff8800") or ANSI color numbers ("208"). Profile
// decides how colors degrade; it is not part of a style's description and is
// normally stamped on by the renderer with WithProfile.
type Termenv struct {
	Foreground string `mapstructure:"fg" json:"fg,omitempty" yaml:"fg,omitempty"`
	Background string `mapstructure:"bg" json:"bg,omitempty" yaml:"bg,omitempty"`
	Bold       bool   `mapstructure:"bold" json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic     bool   `mapstructure:"italic" json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline  bool   `mapstructure:"underline" json:"underline,omitempty" yaml:"underline,omitempty"`
	Faint      bool   `mapstructure:"faint" json:"faint,omitempty" yaml:"faint,omitempty"`
	Reverse    bool   `mapstructure:"reverse" json:"reverse,omitempty" yaml:"reverse,omitempty"`

	Profile termenv.Profile `mapstructure:"-" json:"-" yaml:"-"`
}

// IsZero reports whether s has no attributes.
func (s Termenv) IsZero() bool {
	s.Profile = 0
	return s == Termenv{}
}

// WithProfile returns s rendering for profile p.
func (s Termenv) WithProfile(p termenv.Profile) Termenv {
	s.Profile = p
	return s
}

// Merge returns s with every attribute set in over applied on top.
func (s Termenv) Merge(over Termenv) Termenv {
	if over.Foreground != "" {
		s.Foreground = over.Foreground
	}
	if over.Background != "" {
		s.Background = over.Background
	}
	s.Bold = s.Bold || over.Bold
	s.Italic = s.Italic || over.Italic
	s.Underline = s.Underline || over.Underline
	s.Faint = s.Faint || over.Faint
	s.Reverse = s.Reverse || over.Reverse
	return s
}

// Apply wraps text in the escape sequences for s.
func (s Termenv) Apply(text string) string {
	if text == "" || s.IsZero() || s.Profile == termenv.Ascii {
		return text
	}
	out := s.Profile.String(text)
	if s.Foreground != "" {
		out = out.Foreground(s.Profile.Color(s.Foreground))
	}
	if s.Background != "" {
		out = out.Background(s.Profile.Color(s.Background))
	}
	if s.Bold {
		out = out.Bold()
	}
	if s.Italic {
		out = out.Italic()
	}
	if s.Underline {
		out = out.Underline()
	}
	if s.Faint {
		out = out.Faint()
	}
	if s.Reverse {
		out = out.Reverse()
	}
	return out.String()
}

// String describes s in the form accepted by Parse.
func (s Termenv) String() string {
	var parts []string
	if s.Foreground != "" {
		parts = append(parts, "fg="+s.Foreground)
	}
	if s.Background != "" {
		parts = append(parts, "bg="+s.Background)
	}
	for _, flag := range []struct {
		name string
		set  bool
	}{{"bold", s.Bold}, {"italic", s.Italic}, {"underline", s.Underline}, {"faint", s.Faint}, {"reverse", s.Reverse}} {
		if flag.set {
			parts = append(parts, flag.name)
		}
	}
	return strings.Join(parts, " ")
}

// Parse reads a style description such as "bold fg=#ff8800 bg=236".
func Parse(desc string) (Termenv, error) {
	var s Termenv
	for _, field := range strings.Fields(desc) {
		key, value, _ := strings.Cut(field, "=")
		switch strings.ToLower(key) {
		case "fg", "foreground":
			if value == "" {
				return Termenv{}, fmt.Errorf("%w: %q", ErrMissingColor, field)
			}
			s.Foreground = value
		case "bg", "background":
			if value == "" {
				return Termenv{}, fmt.Errorf("%w: %q", ErrMissingColor, field)
			}
			s.Background = value
		case "bold":
			s.Bold = true
		case "italic":
			s.Italic = true
		case "underline":
			s.Underline = true
		case "faint":
			s.Faint = true
		case "reverse":
			s.Reverse = true
		default:
			return Termenv{}, fmt.Errorf("%w: %q", ErrUnknownAttribute, field)
		}
	}
	return s, nil
}
