package cli

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const defaultWatchInterval = 500 * time.Millisecond

// Watch re-renders the document at opts.Path every time its content changes,
// until ctx is cancelled. Render errors are reported and watching goes on.
func Watch(ctx context.Context, opts RenderOptions, out io.Writer) error {
	if opts.Path == "" || opts.Path == "-" {
		return errors.New("--watch needs a file, not stdin")
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	logger := createLogger(opts.Debug)
	engine, closeEngine, err := CreateEngine(opts.EngineOptions, out, logger)
	if err != nil {
		return err
	}
	defer closeEngine()

	logger.Info("Starting Watcher", "path", opts.Path, "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last [md5.Size]byte
	first := true
	for {
		data, format, err := ReadInput(opts.Path, opts.Format, nil)
		switch {
		case err != nil:
			logger.Warn("Watcher cannot read layout", "path", opts.Path, "err", err)
		case first || md5.Sum(data) != last:
			last = md5.Sum(data)
			first = false
			clearScreen(out)
			if err := renderTo(ctx, engine, data, format, out); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}
		}

		select {
		case <-ctx.Done():
			logger.Info("Watcher stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func clearScreen(out io.Writer) {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		termenv.NewOutput(f).ClearScreen()
	}
}
