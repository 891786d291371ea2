package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/aretw0/tessera/pkg/block"
	"github.com/aretw0/tessera/pkg/content"
	"github.com/aretw0/tessera/pkg/primitive"
	"github.com/aretw0/tessera/pkg/style"
)

var bannerArt = []string{
	" _                             ",
	"| |_ ___  ___ ___  ___ _ __ __ _ ",
	"| __/ _ \\/ __/ __|/ _ \\ '__/ _` |",
	"| ||  __/\\__ \\__ \\  __/ | | (_| |",
	" \\__\\___||___/___/\\___|_|  \\__,_|",
}

// Subtle gradient (Indigo/Violet), one color per row.
var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

type banner = content.Styled[style.Lipgloss]

// Banner builds the tessera banner as a block: the art in a gradient, framed
// with a rounded stroke, the version tucked under it on the right.
func Banner(version string, profile termenv.Profile) block.Block[banner] {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	var art block.Block[banner]
	for i, row := range bannerArt {
		fg := r.NewStyle().Foreground(lipgloss.Color(bannerColors[i%len(bannerColors)]))
		line := block.WithContent(content.NewStyled(style.FromLipgloss(fg), row))
		art = art.JoinTopToBottomAtLeft(line)
	}

	framed := primitive.Frame(art.PadAtLeft(1).PadAtRight(1), primitive.Rounded)

	faint := r.NewStyle().Faint(true)
	tag := block.WithContent(content.NewStyled(style.FromLipgloss(faint), "v"+version))
	return framed.JoinTopToBottomAtRight(tag)
}

// PrintBanner writes the banner to w using the color profile of the terminal.
func PrintBanner(w io.Writer, version string) error {
	_, err := Banner(version, termenv.ColorProfile()).WriteTo(w)
	return err
}
