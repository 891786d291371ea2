package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tessera/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "tessera",
	Short: "Tessera composes rectangular blocks of terminal text",
	Long: `Tessera lays out terminal text as rectangular blocks: frames, cards, lines
and dividers joined and overlaid from YAML or JSON layout documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("color", "auto", "Color profile: auto, none, ansi, ansi256 or truecolor")
	rootCmd.PersistentFlags().String("measure", "uniseg", "Width measure: uniseg, runewidth or eastasian")
	rootCmd.PersistentFlags().String("markdown-style", "", "Glamour style for markdown (dark, light, notty, ...)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log debug information to stderr")
}

// engineOptions collects the persistent flags.
func engineOptions(cmd *cobra.Command) cli.EngineOptions {
	color, _ := cmd.Flags().GetString("color")
	measure, _ := cmd.Flags().GetString("measure")
	mdStyle, _ := cmd.Flags().GetString("markdown-style")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.EngineOptions{
		Color:         color,
		Measure:       measure,
		MarkdownStyle: mdStyle,
		Debug:         debug,
	}
}
