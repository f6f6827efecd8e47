package main

import (
	"context"

	"github.com/spf13/cobra"

	"boardroom/internal/logging"
	mcpserver "boardroom/internal/mcp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing the five boardroom tools.
MCP clients connect via their server configuration and call the tools directly.

The server monitors for parent process death: when the client disconnects or
restarts, the server self-terminates to prevent zombie processes.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, closeStores := newEngine()
	defer closeStores()

	srv := mcpserver.NewServer(e)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting boardroom MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
