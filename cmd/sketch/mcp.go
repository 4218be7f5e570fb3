package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/sketch/internal/mcp"
	"github.com/1broseidon/sketch/internal/platform"
)

func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Model Context Protocol server",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Start the MCP server on stdio. Designed to be invoked by MCP clients.

Tools:
  check_sketch    Parse and validate a sketch
  resolve_sketch  Resolve a sketch to pixel geometry on a display
  list_displays   List connected displays

The window system is connected per tool call, so the server starts without
an X display.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := mcp.NewServer(a.cfg, func() (platform.Backend, error) {
				return a.backend()
			}, a.logger)
			return server.Run(ctx)
		},
	})
	return cmd
}
