// Package server exposes headset status, gaze, calibration and profile
// operations as MCP tools, so agents can query the tracker without shelling
// out to fovectl.
package server

import (
	"fmt"
	"sync"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/fovesdk/fove-go"
)

// Server wraps the MCP server with the headset connection and status cache.
// Native calls are serialized by headsetMu; the headset handle is shared by
// every tool handler.
type Server struct {
	headset   *fove.Headset
	headsetMu sync.Mutex
	cache     *StatusCache
	mcp       *mcpserver.MCPServer
}

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// New creates and configures an MCP server over an open headset. The caller
// keeps ownership of the headset and closes it after Serve returns.
func New(h *fove.Headset, cfg Config) *Server {
	s := &Server{
		headset: h,
		cache:   NewStatusCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"fovectl",
		"1.0.0",
	)

	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}
