package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/tessera/internal/logging"
	"github.com/aretw0/tessera/pkg/layout"
)

func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}

// ReadInput reads the document at path, or stdin for "" and "-". An empty
// format is guessed from the extension of path.
func ReadInput(path, format string, stdin io.Reader) ([]byte, layout.Format, error) {
	f, err := inputFormat(path, format)
	if err != nil {
		return nil, "", err
	}
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read layout: %w", err)
	}
	return data, f, nil
}

func inputFormat(path, format string) (layout.Format, error) {
	if format != "" {
		return layout.ParseFormat(format)
	}
	if path == "" || path == "-" {
		return layout.YAML, nil
	}
	return layout.FormatFromPath(filepath.Clean(path)), nil
}
