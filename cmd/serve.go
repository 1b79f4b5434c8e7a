package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the clustering and save-decision tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the engine as
tools. Agents and platform integrations can pass captured snapshots and get
clusters and save directives back; the server keeps one in-memory session
store for its lifetime so multi-step flows work across tool calls.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  fieldsense serve
  fieldsense serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().String("browser-list", "", "YAML file with extra browser packages")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	browserList, _ := cmd.Flags().GetString("browser-list")

	cfg := MCPConfig{
		Transport:   transport,
		Port:        port,
		BrowserList: browserList,
	}

	srv, err := newMCPServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return srv.serve(cfg)
}
