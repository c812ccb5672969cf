// Package main is the interactive MCP chat client.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/minhyannv/mcp-client-go/pkg/agent"
	"github.com/minhyannv/mcp-client-go/pkg/llm"
	loggerpkg "github.com/minhyannv/mcp-client-go/pkg/logger"
	"github.com/minhyannv/mcp-client-go/pkg/mcp"
)

// main is the program entry point.
func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	cli, err := parseCLIConfig(args, os.Getenv, errOut)
	if err != nil {
		return err
	}
	cfg := cli.Config

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second interrupt falls through to the default handler.
		<-ctx.Done()
		stop()
	}()

	appLogger := loggerpkg.NewWriterLogger(errOut)
	loggerpkg.Debug(cfg.Verbose, appLogger, "config resolved", map[string]any{
		"provider":    cfg.Provider,
		"model":       cfg.Model,
		"base_url":    cfg.BaseURL,
		"server_path": cfg.ServerPath,
		"allowed_dir": cfg.AllowedDir,
	})

	_, _ = fmt.Fprintln(out, cli.Auth.Describe())
	client, err := mcp.Connect(ctx, mcp.ServerConfigFrom(cfg, cli.Auth),
		mcp.WithLogger(loggerpkg.Named(appLogger, "mcp"), cfg.Verbose))
	if err != nil {
		return fmt.Errorf("connect to server: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			loggerpkg.Debug(cfg.Verbose, appLogger, "close session", map[string]any{"error": err.Error()})
		}
	}()

	descriptors, err := client.ListTools(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	_, _ = fmt.Fprintf(out, "\nConnected to server with tools: %v\n", names)

	endpoint, err := llm.New(cfg, llm.WithLogger(loggerpkg.Named(appLogger, "llm"), cfg.Verbose))
	if err != nil {
		return err
	}
	reconciler, err := agent.New(client, endpoint,
		agent.WithLogger(loggerpkg.Named(appLogger, "agent")),
		agent.WithVerbose(cfg.Verbose))
	if err != nil {
		return err
	}

	return runREPL(ctx, reconciler, replOptions{
		Verbose: cfg.Verbose,
		Logger:  appLogger,
	}, in, out)
}
