// Package agent turns one user query into a reply: it offers the provider's
// tools to the model, runs whatever calls the model asks for and merges the
// model text with the rendered tool outcomes.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minhyannv/mcp-client-go/pkg/llm"
	loggerpkg "github.com/minhyannv/mcp-client-go/pkg/logger"
	"github.com/minhyannv/mcp-client-go/pkg/tools"
)

// Turn is the result of one query. It is not retained between queries.
type Turn struct {
	Query     string
	ModelText string
	Outcomes  []tools.Outcome
}

// Text renders the reply shown to the user: the model text when present,
// then one line per tool outcome in call order.
func (t Turn) Text() string {
	parts := make([]string, 0, len(t.Outcomes)+1)
	if t.ModelText != "" {
		parts = append(parts, t.ModelText)
	}
	for _, out := range t.Outcomes {
		parts = append(parts, out.Text)
	}
	return strings.Join(parts, "\n")
}

// Reconciler holds the tool transport and model endpoint for a session.
type Reconciler struct {
	transport tools.Transport
	endpoint  llm.Endpoint
	invoker   *tools.Invoker

	logger  loggerpkg.Logger
	verbose bool
}

// New builds a Reconciler over transport and endpoint.
func New(transport tools.Transport, endpoint llm.Endpoint, opts ...Option) (*Reconciler, error) {
	if transport == nil {
		return nil, errors.New("tool transport is not set")
	}
	if endpoint == nil {
		return nil, errors.New("model endpoint is not set")
	}
	d := deps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	d.logger = loggerpkg.OrNop(d.logger)

	return &Reconciler{
		transport: transport,
		endpoint:  endpoint,
		invoker:   tools.NewInvoker(transport, d.logger, d.verbose),
		logger:    d.logger,
		verbose:   d.verbose,
	}, nil
}

// Reconcile runs one turn and returns its rendered reply.
func (r *Reconciler) Reconcile(ctx context.Context, query string) (string, error) {
	turn, err := r.RunTurn(ctx, query)
	if err != nil {
		return "", err
	}
	return turn.Text(), nil
}

// RunTurn lists the current tools, asks the model once and executes the
// requested tool calls sequentially. Failures to list tools or reach the model
// are returned; individual tool failures become error outcomes.
func (r *Reconciler) RunTurn(ctx context.Context, query string) (Turn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	turn := Turn{Query: query}

	descriptors, err := r.transport.ListTools(ctx)
	if err != nil {
		return turn, fmt.Errorf("list tools: %w", err)
	}
	specs := tools.AdaptAll(descriptors)
	loggerpkg.Debug(r.verbose, r.logger, "sending query", map[string]any{
		"query": query,
		"tools": len(specs),
	})

	resp, err := r.endpoint.Complete(ctx, llm.Request{Query: query, Tools: specs})
	if err != nil {
		return turn, fmt.Errorf("model request: %w", err)
	}
	if resp == nil {
		return turn, nil
	}
	turn.ModelText = resp.Text
	loggerpkg.Debug(r.verbose, r.logger, "model responded", map[string]any{
		"text_bytes": len(resp.Text),
		"tool_calls": len(resp.ToolCalls),
	})

	turn.Outcomes = make([]tools.Outcome, 0, len(resp.ToolCalls))
	for _, call := range resp.ToolCalls {
		turn.Outcomes = append(turn.Outcomes, r.invoker.Invoke(ctx, call.Name, call.Arguments))
	}
	return turn, nil
}
