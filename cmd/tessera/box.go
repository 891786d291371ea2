package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tessera/pkg/layout"
)

var boxCmd = &cobra.Command{
	Use:   "box [text...]",
	Short: "Draw a frame around text",
	Example: `  tessera box --title greeting "hello world"
  ls | tessera box --stroke double --padding 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(cmd, args)
		if err != nil {
			return err
		}
		stroke, _ := cmd.Flags().GetString("stroke")
		title, _ := cmd.Flags().GetString("title")
		padding, _ := cmd.Flags().GetInt("padding")
		align, _ := cmd.Flags().GetString("align")
		textStyle, _ := cmd.Flags().GetString("style")
		borderStyle, _ := cmd.Flags().GetString("border-style")

		child := withStyle(node{"kind": "text", "text": text, "align": align}, textStyle)
		if padding > 0 {
			child = node{
				"kind": "pad", "child": child,
				"left": padding, "right": padding, "top": padding / 2, "bottom": padding / 2,
			}
		}
		frame := withStyle(node{"kind": "frame", "title": title, "child": child}, borderStyle)
		return renderDocument(cmd, layout.Document{Stroke: stroke, Layout: frame})
	},
}

func init() {
	rootCmd.AddCommand(boxCmd)

	boxCmd.Flags().StringP("stroke", "s", "single", "Frame stroke (see 'tessera strokes')")
	boxCmd.Flags().StringP("title", "t", "", "Title set into the top edge")
	boxCmd.Flags().IntP("padding", "p", 0, "Columns of space inside the frame (half as many rows)")
	boxCmd.Flags().String("align", "left", "Text alignment: left, center or right")
	boxCmd.Flags().String("style", "", `Text style, e.g. "bold fg=#ff8800"`)
	boxCmd.Flags().String("border-style", "", "Frame style")
}
