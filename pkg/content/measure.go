package content

import (
	"sync/atomic"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Measure segments text into grapheme clusters and computes its display width in
// terminal columns.
type Measure interface {
	Graphemes(text string) []string
	Width(text string) int
}

// Uniseg measures with github.com/rivo/uniseg.
type Uniseg struct{}

func (Uniseg) Graphemes(text string) []string {
	return segment(text)
}

func (Uniseg) Width(text string) int {
	return uniseg.StringWidth(text)
}

// RuneWidth measures with github.com/mattn/go-runewidth. When EastAsian is set,
// characters of ambiguous width count as two columns, which matches CJK terminal
// locales.
type RuneWidth struct {
	EastAsian bool
}

func (RuneWidth) Graphemes(text string) []string {
	return segment(text)
}

func (r RuneWidth) Width(text string) int {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = r.EastAsian
	return cond.StringWidth(text)
}

func segment(text string) []string {
	if text == "" {
		return nil
	}
	clusters := make([]string, 0, len(text))
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

type measureHolder struct {
	measure Measure
}

var current atomic.Pointer[measureHolder]

func init() {
	current.Store(&measureHolder{measure: Uniseg{}})
}

// CurrentMeasure returns the Measure used by Text and Styled.
func CurrentMeasure() Measure {
	return current.Load().measure
}

// SetMeasure replaces the process-wide Measure and returns the previous one. A nil
// measure restores Uniseg. Blocks built under one measure are not re-measured
// when it changes, so this is meant to be called once at startup.
func SetMeasure(m Measure) Measure {
	if m == nil {
		m = Uniseg{}
	}
	return current.Swap(&measureHolder{measure: m}).measure
}

// Width returns the display width of text under the current Measure.
func Width(text string) int {
	return CurrentMeasure().Width(text)
}

// Graphemes splits text into grapheme clusters under the current Measure.
func Graphemes(text string) []string {
	return CurrentMeasure().Graphemes(text)
}
