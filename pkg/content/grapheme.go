package content

import "fmt"

// Grapheme is a single user-perceived character, possibly spanning several code
// points. The zero value is not a valid grapheme; use NewGrapheme or GraphemeOf.
type Grapheme struct {
	cluster string
}

// Space is the grapheme used for all padding.
var Space = Grapheme{cluster: " "}

// NewGrapheme validates that s is exactly one grapheme cluster.
func NewGrapheme(s string) (Grapheme, error) {
	if clusters := Graphemes(s); len(clusters) != 1 {
		return Grapheme{}, fmt.Errorf("%w: %q", ErrNotGrapheme, s)
	}
	return Grapheme{cluster: s}, nil
}

// MustGrapheme is like NewGrapheme but panics on invalid input. It is intended
// for package-level tables of glyphs.
func MustGrapheme(s string) Grapheme {
	g, err := NewGrapheme(s)
	if err != nil {
		panic(err)
	}
	return g
}

// GraphemeOf returns the grapheme for a single rune.
func GraphemeOf(r rune) Grapheme {
	return Grapheme{cluster: string(r)}
}

// String returns the UTF-8 encoding of the cluster.
func (g Grapheme) String() string { return g.cluster }

// Width returns the display width of the grapheme.
func (g Grapheme) Width() int { return Width(g.cluster) }

// IsSpace reports whether g is the padding space.
func (g Grapheme) IsSpace() bool { return g == Space }
