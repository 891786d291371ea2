package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tessera/internal/cli"
	"github.com/aretw0/tessera/internal/presentation/graph"
	"github.com/aretw0/tessera/pkg/layout"
)

var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Print the node tree of a layout document as a Mermaid flowchart",
	Long: `Prints the node tree of a layout document as a Mermaid flowchart. Nodes that
fail to compile are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		format, _ := cmd.Flags().GetString("format")

		data, f, err := cli.ReadInput(path, format, cmd.InOrStdin())
		if err != nil {
			return err
		}
		doc, err := layout.Parse(data, f)
		if err != nil {
			return err
		}
		// Markdown is checked for structure only.
		plain := layout.MarkdownFunc(func(source string, _ int) (string, error) { return source, nil })
		_, compileErr := layout.Compile(doc, layout.WithMarkdown(plain))

		_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(doc, graph.OverlayFromError(compileErr)))
		return err
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "", "Document format: yaml or json (default: from the file extension)")
}
