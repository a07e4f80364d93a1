package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tasksync/internal/adapters/filesystem"
	mcpadapter "tasksync/internal/adapters/mcp"
	"tasksync/internal/adapters/sqlite"
	"tasksync/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	settings, err := config.Load(*vaultFlag)
	if err != nil {
		log.Fatalf("tasksync-mcp: %v", err)
	}

	index := sqlite.NewIndex(settings)
	if err := index.Open(*vaultFlag); err != nil {
		log.Fatalf("tasksync-mcp: %v", err)
	}
	defer index.Close()

	if index.NeedsFullRebuild() {
		if _, err := index.SyncFull(); err != nil {
			log.Fatalf("tasksync-mcp: %v", err)
		}
	} else if _, err := index.SyncIncremental(); err != nil {
		log.Fatalf("tasksync-mcp: %v", err)
	}

	deps := mcpadapter.Deps{
		Store:    filesystem.NewVault(*vaultFlag),
		Index:    index,
		Settings: settings,
	}

	mcpServer := server.NewMCPServer(
		"tasksync-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tasksync-mcp: %v", err)
	}
}
