package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tessera/pkg/layout"
)

var markdownCmd = &cobra.Command{
	Use:   "markdown [file]",
	Short: "Render markdown as a block, optionally framed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var source string
		if len(args) > 0 && args[0] != "-" {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read markdown: %w", err)
			}
			source = string(data)
		} else {
			text, err := textArg(cmd, nil)
			if err != nil {
				return err
			}
			source = text
		}

		width, _ := cmd.Flags().GetInt("width")
		framed, _ := cmd.Flags().GetBool("frame")
		title, _ := cmd.Flags().GetString("title")
		stroke, _ := cmd.Flags().GetString("stroke")

		var root any = node{"kind": "markdown", "source": source, "width": width}
		if framed || title != "" {
			root = node{"kind": "frame", "title": title, "child": root}
		}
		return renderDocument(cmd, layout.Document{Stroke: stroke, Layout: root})
	},
}

func init() {
	rootCmd.AddCommand(markdownCmd)

	markdownCmd.Flags().Int("width", 0, "Word wrap width (default: the renderer's)")
	markdownCmd.Flags().Bool("frame", false, "Draw a frame around the output")
	markdownCmd.Flags().StringP("title", "t", "", "Frame title (implies --frame)")
	markdownCmd.Flags().StringP("stroke", "s", "rounded", "Frame stroke")
}
