package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/tessera/internal/cli"
	"github.com/aretw0/tessera/internal/logging"
	"github.com/aretw0/tessera/pkg/layout"
)

// renderDocument renders a document built from flags through the engine.
func renderDocument(cmd *cobra.Command, doc layout.Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}

	opts := engineOptions(cmd)
	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}
	engine, closeEngine, err := cli.CreateEngine(opts, cmd.OutOrStdout(), logging.New(level))
	if err != nil {
		return err
	}
	defer closeEngine()

	out, err := engine.Render(cmd.Context(), data, layout.YAML)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// textArg joins the arguments, or reads stdin when there are none.
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// terminalWidth is the width of stdout, or fallback when it is not a terminal.
func terminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}

// node is shorthand for an inline layout node.
type node = map[string]any

func withStyle(n node, style string) node {
	if style != "" {
		n["style"] = style
	}
	return n
}
