// Package main is a demo MCP tool provider serving an employee leave ledger
// over stdio.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	loggerpkg "github.com/minhyannv/mcp-client-go/pkg/logger"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func newServer(book *ledger) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "leave-manager", Version: "dev"}, nil)
	registerTools(server, book)
	return server
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout carries the protocol; diagnostics go to stderr.
	log := loggerpkg.Named(loggerpkg.NewWriterLogger(os.Stderr), "leave-server")
	loggerpkg.Info(log, "serving on stdio", map[string]any{"auth": os.Getenv("MCP_AUTH_TYPE")})

	if err := newServer(newLedger()).Run(ctx, &mcpsdk.StdioTransport{}); err != nil && ctx.Err() == nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
