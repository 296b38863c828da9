package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fovesdk/fove-go/capi"
	"github.com/fovesdk/fove-go/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing headset tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes headset status,
gaze, calibration and profile operations as tools. AI agents can query the
tracker directly without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  fovectl mcp
  fovectl mcp --transport streamable-http --port 8080
  fovectl mcp --cache-ttl 0`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	mcpCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	mcpCmd.Flags().Int("cache-ttl", 500, "Status cache TTL in milliseconds (0 to disable)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	h, err := openHeadset(cmd, capi.CapEyeTracking|capi.CapGazeDepth|
		capi.CapOrientationTracking|capi.CapPositionTracking)
	if err != nil {
		return err
	}
	defer h.Close()

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}
	return server.New(h, cfg).Serve(cfg)
}
