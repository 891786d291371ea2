package tessera

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/muesli/termenv"

	"github.com/aretw0/tessera/internal/logging"
	"github.com/aretw0/tessera/pkg/content"
	"github.com/aretw0/tessera/pkg/layout"
	"github.com/aretw0/tessera/pkg/ports"
)

const defaultLockTTL = 10 * time.Second

// RenderEvent describes one finished Render call.
type RenderEvent struct {
	Key      string
	Cached   bool
	Duration time.Duration
	Err      error
}

// Hooks observes the engine.
type Hooks struct {
	OnRender func(ctx context.Context, ev RenderEvent)
}

// Engine is the high-level entry point for the Tessera library.
// It compiles layout documents and caches the rendered output.
type Engine struct {
	cache    ports.RenderCache
	locker   ports.Locker
	lockTTL  time.Duration
	markdown layout.MarkdownRenderer
	profile  termenv.Profile
	hooks    Hooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCache stores rendered output so identical documents render once.
func WithCache(cache ports.RenderCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithLocker serializes cache misses per document, so concurrent engines
// sharing a cache compute each output once. It has no effect without a cache.
func WithLocker(locker ports.Locker, ttl time.Duration) Option {
	return func(e *Engine) {
		e.locker = locker
		if ttl > 0 {
			e.lockTTL = ttl
		}
	}
}

// WithMarkdownRenderer enables markdown nodes.
func WithMarkdownRenderer(r layout.MarkdownRenderer) Option {
	return func(e *Engine) {
		e.markdown = r
	}
}

// WithProfile sets the color profile of the output (default: termenv.Ascii).
func WithProfile(p termenv.Profile) Option {
	return func(e *Engine) {
		e.profile = p
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New initializes a new Tessera Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{
		lockTTL: defaultLockTTL,
		profile: termenv.Ascii,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

// Profile returns the color profile the engine renders with.
func (e *Engine) Profile() termenv.Profile {
	return e.profile
}

// Compile parses and compiles a document without rendering it.
func (e *Engine) Compile(data []byte, format layout.Format) (layout.Block, error) {
	doc, err := layout.Parse(data, format)
	if err != nil {
		return layout.Block{}, err
	}
	return e.compiler(e.profile).Compile(doc)
}

func (e *Engine) compiler(profile termenv.Profile) *layout.Compiler {
	opts := []layout.Option{
		layout.WithLogger(e.logger),
		layout.WithProfile(profile),
	}
	if e.markdown != nil {
		opts = append(opts, layout.WithMarkdown(e.markdown))
	}
	return layout.NewCompiler(opts...)
}

// Render compiles the document and returns its rendered text.
func (e *Engine) Render(ctx context.Context, data []byte, format layout.Format) (string, error) {
	return e.RenderWithProfile(ctx, data, format, e.profile)
}

// RenderWithProfile is Render with a per-call color profile.
func (e *Engine) RenderWithProfile(ctx context.Context, data []byte, format layout.Format, profile termenv.Profile) (out string, err error) {
	start := time.Now()
	key := Key(data, format, profile)
	cached := false
	defer func() {
		if e.hooks.OnRender != nil {
			e.hooks.OnRender(ctx, RenderEvent{Key: key, Cached: cached, Duration: time.Since(start), Err: err})
		}
	}()

	if out, cached = e.lookup(ctx, key); cached {
		return out, nil
	}

	if e.cache != nil && e.locker != nil {
		unlock, err := e.locker.Lock(ctx, key, e.lockTTL)
		if err != nil {
			return "", fmt.Errorf("failed to lock render %s: %w", key, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				e.logger.Warn("failed to release render lock", "key", key, "error", err)
			}
		}()
		// Another holder may have rendered it while we waited.
		if out, cached = e.lookup(ctx, key); cached {
			return out, nil
		}
	}

	doc, err := layout.Parse(data, format)
	if err != nil {
		return "", err
	}
	b, err := e.compiler(profile).Compile(doc)
	if err != nil {
		return "", err
	}
	out = b.Render()

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, out); err != nil {
			e.logger.Warn("failed to cache render", "key", key, "error", err)
		}
	}
	e.logger.Debug("rendered layout", "key", key, "width", b.Width(), "height", b.Height())
	return out, nil
}

// lookup reads the cache. Cache failures other than a miss are logged and
// treated as a miss.
func (e *Engine) lookup(ctx context.Context, key string) (string, bool) {
	if e.cache == nil {
		return "", false
	}
	out, err := e.cache.Get(ctx, key)
	if err == nil {
		return out, true
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		e.logger.Warn("render cache unavailable", "key", key, "error", err)
	}
	return "", false
}

// Key identifies the rendered output of a document: the same bytes in the same
// format under the same profile and width measure always render to the same
// text.
func Key(data []byte, format layout.Format, profile termenv.Profile) string {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(int(profile))))
	h.Write([]byte{0})
	fmt.Fprintf(h, "%T%+v", content.CurrentMeasure(), content.CurrentMeasure())
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
