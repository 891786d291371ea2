/*
Package content models a single line of renderable text.

Two implementations are provided: Text, a plain string, and Styled, an ordered
sequence of runs where each run carries a Style. Both satisfy Content, the
capability set the block engine is written against: measuring display width,
truncating and repeating by grapheme cluster, splitting into lines, concatenating,
and overlaying two lines of equal width one grapheme at a time.

# Graphemes and Width

All width math goes through a Measure, which segments text into grapheme clusters
and computes display columns. The default, Uniseg, follows UAX #29 and East Asian
Width via github.com/rivo/uniseg. RuneWidth uses github.com/mattn/go-runewidth
and can treat ambiguous-width characters as wide. A multi-byte cluster is never
split: truncation that would cut a wide glyph in half drops it instead.

# Overlay

Overlay walks two congruent lines in lock-step and asks a Decider, at each
position, whether the front or the back glyph wins:

	front := content.Text("a c")
	back := content.Text("xyz")
	merged, _ := front.Overlay(back, content.Opaque) // "ayc"

For Styled content the style of each output glyph is taken from the side that
won, and adjacent glyphs from the same source run are coalesced into one run.
*/
package content
