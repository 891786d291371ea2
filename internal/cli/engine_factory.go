package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/internal/presentation/tui"
	"github.com/aretw0/tessera/pkg/adapters/memory"
	"github.com/aretw0/tessera/pkg/adapters/redis"
	"github.com/aretw0/tessera/pkg/content"
	"github.com/aretw0/tessera/pkg/style"
)

// CreateEngine initializes a Tessera engine with standard CLI conventions.
// The returned func releases the cache backend.
func CreateEngine(opts EngineOptions, out io.Writer, logger *slog.Logger, extra ...tessera.Option) (*tessera.Engine, func() error, error) {
	profile, err := ResolveProfile(opts.Color, out)
	if err != nil {
		return nil, nil, err
	}
	if err := ApplyMeasure(opts.Measure); err != nil {
		return nil, nil, err
	}

	// 1. Logger & Presentation
	engineOpts := []tessera.Option{
		tessera.WithLogger(logger),
		tessera.WithProfile(profile),
		tessera.WithMarkdownRenderer(tui.NewMarkdown(tui.WithStyle(opts.MarkdownStyle))),
	}

	// 2. Cache backend
	closer := func() error { return nil }
	switch {
	case opts.RedisAddr != "":
		cache := redis.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB, redis.WithTTL(opts.CacheTTL))
		engineOpts = append(engineOpts,
			tessera.WithCache(cache),
			tessera.WithLocker(redis.NewLocker(cache.Client(), ""), 0),
		)
		closer = cache.Close
		logger.Debug("Using redis render cache", "addr", opts.RedisAddr, "db", opts.RedisDB)
	case opts.CacheSize > 0:
		engineOpts = append(engineOpts,
			tessera.WithCache(memory.NewCache(memory.WithLimit(opts.CacheSize))),
			tessera.WithLocker(memory.NewLocker(), 0),
		)
		logger.Debug("Using in-memory render cache", "size", opts.CacheSize)
	}

	engineOpts = append(engineOpts, extra...)
	return tessera.New(engineOpts...), closer, nil
}

// ResolveProfile picks the color profile for out. "auto" colors only when out
// is a terminal, honoring NO_COLOR and the terminal's capabilities.
func ResolveProfile(color string, out io.Writer) (termenv.Profile, error) {
	if strings.ToLower(strings.TrimSpace(color)) != "auto" {
		return style.ParseProfile(color)
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii, nil
	}
	return termenv.NewOutput(f).EnvColorProfile(), nil
}

// ApplyMeasure installs the named width measure for the whole process.
func ApplyMeasure(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniseg":
		content.SetMeasure(nil)
	case "runewidth":
		content.SetMeasure(content.RuneWidth{})
	case "eastasian":
		content.SetMeasure(content.RuneWidth{EastAsian: true})
	default:
		return fmt.Errorf("unknown width measure %q (want uniseg, runewidth or eastasian)", name)
	}
	return nil
}
