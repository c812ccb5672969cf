package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	loggerpkg "github.com/minhyannv/mcp-client-go/pkg/logger"
)

// querier answers one user query.
type querier interface {
	Reconcile(ctx context.Context, query string) (string, error)
}

// replOptions configures REPL behavior.
type replOptions struct {
	Verbose bool
	Logger  loggerpkg.Logger
}

// runREPL reads queries from in until "quit" or end of input. Query failures
// are printed and the loop keeps going.
func runREPL(ctx context.Context, q querier, opts replOptions, in io.Reader, out io.Writer) error {
	if q == nil {
		return fmt.Errorf("querier is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerpkg.Debug(opts.Verbose, opts.Logger, "repl start", nil)

	reader := bufio.NewReader(in)
	printWelcome(out)

	for {
		if ctx.Err() != nil {
			return nil
		}
		_, _ = fmt.Fprint(out, "\nQuery: ")
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		if errors.Is(readErr, io.EOF) && line == "" {
			return nil
		}

		input := strings.TrimSpace(line)
		if strings.EqualFold(input, "quit") {
			return nil
		}

		response, err := reconcile(ctx, q, input)
		if err != nil {
			_, _ = fmt.Fprintf(out, "\nError: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(out, "\n%s\n", response)
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}
	}
}

// reconcile runs one query, turning a panic anywhere below into an error.
func reconcile(ctx context.Context, q querier, input string) (response string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return q.Reconcile(ctx, input)
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "\nMCP Client Started!")
	_, _ = fmt.Fprintln(out, "Type your queries or 'quit' to exit.")
}
