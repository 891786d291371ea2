package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/muesli/termenv"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/internal/logging"
	"github.com/aretw0/tessera/pkg/block"
	"github.com/aretw0/tessera/pkg/layout"
	"github.com/aretw0/tessera/pkg/primitive"
	"github.com/aretw0/tessera/pkg/style"
)

// RenderArgs are the arguments of the render_layout tool.
type RenderArgs struct {
	Document string `json:"document"`
	Format   string `json:"format,omitempty"`
	Color    string `json:"color,omitempty"`
}

// RenderResponse is the structured result of render_layout.
type RenderResponse struct {
	Output string `json:"output" jsonschema_description:"The rendered block, one line per row"`
	Width  int    `json:"width" jsonschema_description:"Width of the block in terminal columns"`
	Height int    `json:"height" jsonschema_description:"Number of rows"`
}

// Engine defines the interface required by the MCP server.
type Engine interface {
	RenderWithProfile(ctx context.Context, data []byte, format layout.Format, profile termenv.Profile) (string, error)
}

// Server wraps the Tessera Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("tessera-mcp", strings.TrimSpace(tessera.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: render_layout
	renderTool := mcp.NewTool("render_layout",
		mcp.WithDescription("Render a YAML or JSON layout document into a block of terminal text."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The layout document")),
		mcp.WithString("format", mcp.Description("Document format: yaml (default) or json")),
		mcp.WithString("color", mcp.Description("Color profile: none (default), ansi, ansi256 or truecolor")),
		mcp.WithOutputSchema[RenderResponse](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRender))

	// TOOL: list_strokes
	s.mcpServer.AddTool(mcp.NewTool("list_strokes",
		mcp.WithDescription("List the stroke names usable for lines, dividers and frames."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(strings.Join(primitive.StrokeNames(), "\n")), nil
	})
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest, args RenderArgs) (RenderResponse, error) {
	if strings.TrimSpace(args.Document) == "" {
		return RenderResponse{}, errors.New("document is required")
	}
	format, err := layout.ParseFormat(args.Format)
	if err != nil {
		return RenderResponse{}, err
	}
	profile, err := style.ParseProfile(args.Color)
	if err != nil {
		return RenderResponse{}, err
	}

	out, err := s.engine.RenderWithProfile(ctx, []byte(args.Document), format, profile)
	if err != nil {
		s.logger.Warn("MCP render_layout failed", "error", err)
		return RenderResponse{}, fmt.Errorf("render failed: %w", err)
	}

	shape := block.Text(strings.TrimSuffix(style.Strip(out), "\n"))
	return RenderResponse{
		Output: out,
		Width:  shape.Width(),
		Height: shape.Height(),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: tessera://kinds
	s.mcpServer.AddResource(mcp.NewResource("tessera://kinds", "Layout Node Kinds",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(layout.Kinds)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "tessera://kinds",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
