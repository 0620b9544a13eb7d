// Command mcp-compare runs the MCP tool server for transcript comparison.
// Uses stdio transport for integration with AI assistants.
package main

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ansigo/compare-output/internal/config"
	"github.com/ansigo/compare-output/internal/mcpserver"
	"github.com/ansigo/compare-output/internal/observability"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	// stdout carries the protocol; logs go to stderr.
	logger := observability.InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "compare-output",
		Version: "v1.0.0",
	}, nil)
	mcpserver.RegisterTools(server, logger)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}
