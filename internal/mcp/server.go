package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/sketch/internal/config"
	"github.com/1broseidon/sketch/internal/platform"
)

const (
	ServerName    = "sketch"
	ServerVersion = "0.1.0"
)

// Opener connects to the window system. It is called once per tool call
// that needs live displays.
type Opener func() (platform.Backend, error)

// Server is the MCP server exposing sketch checking and resolution.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	open      Opener
	logger    *slog.Logger
}

// NewServer creates an MCP server. A nil logger means slog.Default().
func NewServer(cfg *config.Config, open Opener, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		config: cfg,
		open:   open,
		logger: logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting", "transport", "stdio")
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Connect serves a single session over t.
func (s *Server) Connect(ctx context.Context, t mcpsdk.Transport) (*mcpsdk.ServerSession, error) {
	return s.mcpServer.Connect(ctx, t, nil)
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "check_sketch",
		Description: "Parse and validate a window sketch. Returns a textual description of the declared window, or a diagnostic with line, column and the expected token. Invalid sketches are reported in the result, not as tool errors.",
	}, s.handleCheckSketch)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resolve_sketch",
		Description: "Resolve a window sketch to concrete pixel geometry on a display. Percentages are taken of the display extent, sizes never exceed it, and centered or unspecified axes are reported as \"centered\" or \"default\".",
	}, s.handleResolveSketch)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_displays",
		Description: "List the connected displays with their index, output name, full bounds and usable work area.",
	}, s.handleListDisplays)
}
