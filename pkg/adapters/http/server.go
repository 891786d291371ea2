package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/tessera/internal/logging"
	"github.com/aretw0/tessera/pkg/layout"
	"github.com/aretw0/tessera/pkg/observability"
	"github.com/aretw0/tessera/pkg/primitive"
	"github.com/aretw0/tessera/pkg/style"
)

const defaultMaxBody = 1 << 20

// Engine defines the interface for the Tessera render core.
type Engine interface {
	RenderWithProfile(ctx context.Context, data []byte, format layout.Format, profile termenv.Profile) (string, error)
}

// Server serves layout renders over HTTP.
type Server struct {
	Engine   Engine
	logger   *slog.Logger
	gatherer prometheus.Gatherer
	maxBody  int64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics exposes the metrics of g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithMaxBody limits the size of a document (default 1 MiB).
func WithMaxBody(n int64) Option {
	return func(s *Server) {
		s.maxBody = n
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		Engine:  engine,
		logger:  logging.NewNop(),
		maxBody: defaultMaxBody,
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Post("/render", server.Render)
	r.Get("/strokes", server.Strokes)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok\n")
	})
	if server.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Errors []ErrorEntry `json:"errors,omitempty"`
}

// ErrorEntry locates one problem in a document.
type ErrorEntry struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Render handles the POST /render request. The body is the document; the
// format comes from ?format or the Content-Type, and ?color picks a profile.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	format, err := requestFormat(r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	profile, err := style.ParseProfile(r.URL.Query().Get("color"))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	out, err := s.Engine.RenderWithProfile(r.Context(), data, format, profile)
	if err != nil {
		status := http.StatusInternalServerError
		if observability.IsInvalid(err) {
			status = http.StatusUnprocessableEntity
		}
		s.fail(w, r, status, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, out); err != nil {
		s.logger.Error("Render response write failed", "error", err)
	}
}

// Strokes handles the GET /strokes request.
func (s *Server) Strokes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(primitive.StrokeNames()); err != nil {
		s.logger.Error("Strokes response encode failed", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}
	for _, n := range layout.NodeErrors(err) {
		resp.Errors = append(resp.Errors, ErrorEntry{Path: n.Path, Reason: n.Message()})
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.Log(r.Context(), level, "Render failed",
		"status", status,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Error response encode failed", "error", err)
	}
}

func requestFormat(r *http.Request) (layout.Format, error) {
	if f := r.URL.Query().Get("format"); f != "" {
		return layout.ParseFormat(f)
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return "", fmt.Errorf("invalid content type %q: %w", ct, err)
		}
		if mt == "application/json" {
			return layout.JSON, nil
		}
	}
	return layout.YAML, nil
}
