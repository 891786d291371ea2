package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/pkg/layout"
	"github.com/aretw0/tessera/pkg/observability"
	"github.com/aretw0/tessera/pkg/style"
)

// MockEngine for testing
type MockEngine struct {
	RenderFunc func(ctx context.Context, data []byte, format layout.Format, profile termenv.Profile) (string, error)
}

func (m *MockEngine) RenderWithProfile(ctx context.Context, data []byte, format layout.Format, profile termenv.Profile) (string, error) {
	return m.RenderFunc(ctx, data, format, profile)
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRender(t *testing.T) {
	handler := NewHandler(tessera.New())

	w := do(t, handler, "POST", "/render", "application/yaml", "stroke: rounded\nlayout: {kind: frame, child: ab}")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "╭──╮\n│ab│\n╰──╯\n", w.Body.String())

	w = do(t, handler, "POST", "/render", "application/json", `{"layout": "x"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "x\n", w.Body.String())

	w = do(t, handler, "POST", "/render?format=json", "", `{"layout": "y"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "y\n", w.Body.String())
}

func TestRender_Color(t *testing.T) {
	handler := NewHandler(tessera.New())
	src := "layout: {kind: text, text: x, style: bold}"

	w := do(t, handler, "POST", "/render?color=ansi", "", src)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, "x\n", w.Body.String())
	assert.Equal(t, "x\n", style.Strip(w.Body.String()))

	w = do(t, handler, "POST", "/render?color=sepia", "", src)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRender_Invalid(t *testing.T) {
	handler := NewHandler(tessera.New())

	w := do(t, handler, "POST", "/render", "", "layout:\n  kind: join\n  children: [{kind: spiral}, {ref: nope}]")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "layout.children[0]", resp.Errors[0].Path)
	assert.Equal(t, "layout.children[1]", resp.Errors[1].Path)

	w = do(t, handler, "POST", "/render", "", "layout: [")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, handler, "POST", "/render?format=toml", "", "layout = 1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRender_EngineFailure(t *testing.T) {
	mock := &MockEngine{
		RenderFunc: func(context.Context, []byte, layout.Format, termenv.Profile) (string, error) {
			return "", errors.New("cache exploded")
		},
	}
	w := do(t, NewHandler(mock), "POST", "/render", "", "layout: x")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "cache exploded")
}

func TestRender_BodyLimit(t *testing.T) {
	handler := NewHandler(tessera.New(), WithMaxBody(8))
	w := do(t, handler, "POST", "/render", "", "layout: this is far too long")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHealthAndStrokes(t *testing.T) {
	handler := NewHandler(tessera.New())

	w := do(t, handler, "GET", "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok\n", w.Body.String())

	w = do(t, handler, "GET", "/strokes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	assert.Contains(t, names, "rounded")

	w = do(t, handler, "OPTIONS", "/render", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(t, handler, "GET", "/metrics", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "metrics are off unless a gatherer is set")
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	handler := NewHandler(tessera.New(tessera.WithHooks(m.Hooks())), WithMetrics(reg))

	do(t, handler, "POST", "/render", "", "layout: x")
	do(t, handler, "POST", "/render", "", "layout: {kind: spiral}")

	w := do(t, handler, "GET", "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `tessera_renders_total{result="miss"} 1`)
	assert.Contains(t, body, `tessera_renders_total{result="invalid"} 1`)
	assert.Contains(t, body, "tessera_render_duration_seconds_bucket")
}
