package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tcgcatalog/internal/apiclient"
	"tcgcatalog/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP bridge to the HTTP API over stdio",
		Args:  cobra.NoArgs,
		RunE:  runMCP,
	}
	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := apiclient.New(cfg.API.BaseURL, apiclient.WithTimeout(cfg.API.Timeout))
	if err != nil {
		return err
	}

	// stdout carries the protocol, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info("mcp bridge running on stdio", "api", client.BaseURL())

	server := mcp.NewServer(client, version, logger)
	return server.Run(ctx, &sdk.StdioTransport{})
}
