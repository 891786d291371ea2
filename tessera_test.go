package tessera_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/pkg/adapters/memory"
	"github.com/aretw0/tessera/pkg/content"
	"github.com/aretw0/tessera/pkg/layout"
	"github.com/aretw0/tessera/pkg/ports"
	"github.com/aretw0/tessera/pkg/style"
)

const card = `
stroke: rounded
layout:
  kind: frame
  title: hi
  child: "hello"
`

func TestEngine_Render(t *testing.T) {
	eng := tessera.New()
	out, err := eng.Render(context.Background(), []byte(card), layout.YAML)
	require.NoError(t, err)
	assert.Equal(t, "╭ hi ─╮\n│hello│\n╰─────╯\n", out)
}

func TestEngine_Compile(t *testing.T) {
	eng := tessera.New()
	b, err := eng.Compile([]byte(card), layout.YAML)
	require.NoError(t, err)
	assert.Equal(t, 7, b.Width())
	assert.Equal(t, 3, b.Height())

	_, err = eng.Compile([]byte("layout: {kind: spiral}"), layout.YAML)
	assert.ErrorIs(t, err, layout.ErrUnknownKind)
}

// countingCache wraps a cache and counts writes.
type countingCache struct {
	ports.RenderCache
	sets atomic.Int32
}

func (c *countingCache) Set(ctx context.Context, key, out string) error {
	c.sets.Add(1)
	return c.RenderCache.Set(ctx, key, out)
}

func TestEngine_Cache(t *testing.T) {
	ctx := context.Background()
	cache := &countingCache{RenderCache: memory.NewCache()}

	var events []tessera.RenderEvent
	eng := tessera.New(
		tessera.WithCache(cache),
		tessera.WithHooks(tessera.Hooks{
			OnRender: func(_ context.Context, ev tessera.RenderEvent) {
				events = append(events, ev)
			},
		}),
	)

	first, err := eng.Render(ctx, []byte(card), layout.YAML)
	require.NoError(t, err)
	second, err := eng.Render(ctx, []byte(card), layout.YAML)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, cache.sets.Load())
	require.Len(t, events, 2)
	assert.False(t, events[0].Cached)
	assert.True(t, events[1].Cached)
	assert.Equal(t, tessera.Key([]byte(card), layout.YAML, termenv.Ascii), events[0].Key)
}

func TestEngine_CacheKeyedByProfile(t *testing.T) {
	ctx := context.Background()
	eng := tessera.New(tessera.WithCache(memory.NewCache()))
	src := []byte("layout: {kind: text, text: x, style: bold}")

	plain, err := eng.Render(ctx, src, layout.YAML)
	require.NoError(t, err)
	colored, err := eng.RenderWithProfile(ctx, src, layout.YAML, termenv.ANSI)
	require.NoError(t, err)

	assert.Equal(t, "x\n", plain)
	assert.NotEqual(t, plain, colored)
	assert.Equal(t, plain, style.Strip(colored))

	assert.NotEqual(t,
		tessera.Key(src, layout.YAML, termenv.Ascii),
		tessera.Key(src, layout.JSON, termenv.Ascii))
}

func TestKey_Measure(t *testing.T) {
	src := []byte("layout: 漢字")
	narrow := tessera.Key(src, layout.YAML, termenv.Ascii)

	prev := content.SetMeasure(content.RuneWidth{EastAsian: true})
	t.Cleanup(func() { content.SetMeasure(prev) })

	wide := tessera.Key(src, layout.YAML, termenv.Ascii)
	assert.NotEqual(t, narrow, wide)
	assert.Equal(t, wide, tessera.Key(src, layout.YAML, termenv.Ascii))

	content.SetMeasure(content.RuneWidth{})
	assert.NotEqual(t, wide, tessera.Key(src, layout.YAML, termenv.Ascii))
}

func TestEngine_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	cache := &countingCache{RenderCache: memory.NewCache()}

	var got error
	eng := tessera.New(
		tessera.WithCache(cache),
		tessera.WithHooks(tessera.Hooks{
			OnRender: func(_ context.Context, ev tessera.RenderEvent) { got = ev.Err },
		}),
	)

	_, err := eng.Render(ctx, []byte("layout: {ref: nowhere}"), layout.YAML)
	require.Error(t, err)
	assert.ErrorIs(t, got, layout.ErrUnknownRef)
	assert.Zero(t, cache.sets.Load())
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (string, error) { return "", errors.New("down") }
func (brokenCache) Set(context.Context, string, string) error   { return errors.New("down") }
func (brokenCache) Delete(context.Context, string) error        { return errors.New("down") }

func TestEngine_CacheFailureFallsBack(t *testing.T) {
	eng := tessera.New(tessera.WithCache(brokenCache{}))
	out, err := eng.Render(context.Background(), []byte("layout: x"), layout.YAML)
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestEngine_LockedRendersOnce(t *testing.T) {
	ctx := context.Background()
	cache := &countingCache{RenderCache: memory.NewCache()}
	eng := tessera.New(
		tessera.WithCache(cache),
		tessera.WithLocker(memory.NewLocker(), 0),
	)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := eng.Render(ctx, []byte(card), layout.YAML)
			assert.NoError(t, err)
			assert.Equal(t, "╭ hi ─╮\n│hello│\n╰─────╯\n", out)
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, cache.sets.Load())
}

func TestEngine_Markdown(t *testing.T) {
	md := layout.MarkdownFunc(func(source string, width int) (string, error) {
		return "  " + source + "\n", nil
	})
	eng := tessera.New(tessera.WithMarkdownRenderer(md))
	out, err := eng.Render(context.Background(), []byte("layout: {kind: markdown, source: hey}"), layout.YAML)
	require.NoError(t, err)
	assert.Equal(t, "  hey\n", out)
}
