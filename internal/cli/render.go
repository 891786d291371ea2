package cli

import (
	"context"
	"io"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/pkg/layout"
)

// Render handles the 'render' command, dispatching to Watch mode when asked.
func Render(ctx context.Context, opts RenderOptions, stdin io.Reader, out io.Writer) error {
	if opts.Watch {
		return Watch(ctx, opts, out)
	}

	logger := createLogger(opts.Debug)
	engine, closeEngine, err := CreateEngine(opts.EngineOptions, out, logger)
	if err != nil {
		return err
	}
	defer closeEngine()

	data, format, err := ReadInput(opts.Path, opts.Format, stdin)
	if err != nil {
		return err
	}
	return renderTo(ctx, engine, data, format, out)
}

func renderTo(ctx context.Context, engine *tessera.Engine, data []byte, format layout.Format, out io.Writer) error {
	rendered, err := engine.Render(ctx, data, format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}
