package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyscan/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.
It exposes one tool, find_keywords, which scans a local document.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, for example to test with the
MCP Inspector web UI. It binds to localhost unless --host names another
interface.

Examples:
  # Stdio mode (default, for Claude Desktop)
  keyscan mcp serve

  # HTTP mode (for MCP Inspector)
  keyscan mcp serve --port 8080

  # HTTP mode on all interfaces (remote access)
  keyscan mcp serve --port 8080 --host 0.0.0.0

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "keyscan": {
        "command": "/path/to/keyscan",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().String("host", mcp.DefaultHost, "HTTP host to bind (with --port)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	host, err := cmd.Flags().GetString("host")
	if err != nil {
		return fmt.Errorf("getting host flag: %w", err)
	}

	ports := &mcp.Ports{
		Scan:     scanService,
		Settings: settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := mcp.ListenAddr(host, port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
