package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tessera/pkg/layout"
	"github.com/aretw0/tessera/pkg/primitive"
)

var strokesCmd = &cobra.Command{
	Use:   "strokes",
	Short: "Show every stroke as a small frame",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cards []any
		for _, name := range primitive.StrokeNames() {
			cards = append(cards, node{
				"kind":   "frame",
				"stroke": name,
				"child":  node{"kind": "text", "text": " " + name + " "},
			})
		}
		return renderDocument(cmd, layout.Document{
			Layout: node{"kind": "join", "axis": "left-right", "gap": 1, "children": cards},
		})
	},
}

func init() {
	rootCmd.AddCommand(strokesCmd)
}
