package observability

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/pkg/adapters/memory"
	"github.com/aretw0/tessera/pkg/layout"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		ev   tessera.RenderEvent
		want string
	}{
		{"hit", tessera.RenderEvent{Cached: true}, ResultHit},
		{"miss", tessera.RenderEvent{}, ResultMiss},
		{"no layout", tessera.RenderEvent{Err: layout.ErrNoLayout}, ResultInvalid},
		{"node error", tessera.RenderEvent{Err: &layout.AggregateError{Errors: []error{&layout.NodeError{Path: "layout"}}}}, ResultInvalid},
		{"backend", tessera.RenderEvent{Err: errors.New("redis down")}, ResultError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Result(tt.ev))
		})
	}
}

func TestMetrics_Engine(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	eng := tessera.New(tessera.WithCache(memory.NewCache()), tessera.WithHooks(m.Hooks()))
	ctx := context.Background()

	for range 2 {
		_, err := eng.Render(ctx, []byte("layout: x"), layout.YAML)
		require.NoError(t, err)
	}
	_, err := eng.Render(ctx, []byte("layout: {kind: spiral}"), layout.YAML)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.renders.WithLabelValues(ResultMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.renders.WithLabelValues(ResultHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.renders.WithLabelValues(ResultInvalid)))

	m.Observe(ctx, tessera.RenderEvent{Duration: time.Millisecond})
	expected := `
# HELP tessera_renders_total Total number of layout renders, by result
# TYPE tessera_renders_total counter
tessera_renders_total{result="hit"} 1
tessera_renders_total{result="invalid"} 1
tessera_renders_total{result="miss"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "tessera_renders_total"))
}
