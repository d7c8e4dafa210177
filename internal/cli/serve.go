package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/baobao/elxup/internal/http"
	"github.com/baobao/elxup/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snapshot preview server",
	Long: `Start an HTTP server exposing the generated snapshot files and an
authenticated proxy to the ElevenLabs API for local extension development.

Examples:
  elxup serve                         # current directory, port 8000
  elxup serve --path ./extension      # explicit directory
  elxup serve --port 8080             # custom port`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		path, _ := cmd.Flags().GetString("path")

		dir, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("invalid path '%s': %w", path, err)
		}

		fmt.Printf("🚀 Starting preview server...\n")
		fmt.Printf("   Port: %d\n", port)
		fmt.Printf("   Dir:  %s\n", dir)
		fmt.Println()

		return http.StartServer(port, dir)
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Model Context Protocol (MCP) server management",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio)",
	Long: `Start the MCP server, communicating with an AI agent over stdio.

Examples:
  elxup mcp serve                 # stdio mode`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.ErrOrStderr(), "🚀 Starting MCP server (stdio mode)...")
		return mcp.StartMCPServer()
	},
}

func init() {
	// -p means --path everywhere
	serveCmd.Flags().Int("port", 8000, "Server port")
	serveCmd.Flags().StringP("path", "p", ".", "Extension directory path")

	mcpCmd.AddCommand(mcpServeCmd)
}
