package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/tessera/internal/cli"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a layout document",
	Long: `Renders a YAML or JSON layout document to stdout. Without a file (or with "-")
the document is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RenderOptions{EngineOptions: engineOptions(cmd)}
		if len(args) > 0 {
			opts.Path = args[0]
		}
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.Watch, _ = cmd.Flags().GetBool("watch")
		opts.Interval, _ = cmd.Flags().GetDuration("interval")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return cli.Render(ctx, opts, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("format", "f", "", "Document format: yaml or json (default: from the file extension)")
	renderCmd.Flags().BoolP("watch", "w", false, "Re-render whenever the file changes")
	renderCmd.Flags().Duration("interval", 0, "Polling interval for --watch (default 500ms)")
}
