package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tessera/pkg/layout"
)

var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "Draw a line or a labeled divider",
	Example: `  tessera line --stroke heavy
  tessera line --label "section 2" --length 40`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		length, _ := cmd.Flags().GetInt("length")
		axis, _ := cmd.Flags().GetString("axis")
		stroke, _ := cmd.Flags().GetString("stroke")
		label, _ := cmd.Flags().GetString("label")
		lineStyle, _ := cmd.Flags().GetString("style")

		if length <= 0 {
			length = terminalWidth(80)
		}

		n := node{"kind": "line", "axis": axis, "length": length}
		if label != "" {
			n = node{"kind": "divider", "length": length, "label": label}
		}
		return renderDocument(cmd, layout.Document{Stroke: stroke, Layout: withStyle(n, lineStyle)})
	},
}

func init() {
	rootCmd.AddCommand(lineCmd)

	lineCmd.Flags().IntP("length", "l", 0, "Length in cells (default: terminal width)")
	lineCmd.Flags().String("axis", "horizontal", "Axis: horizontal or vertical (ignored with --label)")
	lineCmd.Flags().StringP("stroke", "s", "single", "Line stroke")
	lineCmd.Flags().String("label", "", "Label centered in a horizontal divider")
	lineCmd.Flags().String("style", "", "Line style")
}
