package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/minhyannv/mcp-client-go/pkg/llm"
	loggerpkg "github.com/minhyannv/mcp-client-go/pkg/logger"
)

// Invoker runs model-requested tool calls against a Transport. Every call
// produces exactly one Outcome; transport faults are rendered, not returned.
type Invoker struct {
	transport Transport
	logger    loggerpkg.Logger
	verbose   bool
}

// NewInvoker builds an Invoker. A nil logger discards output.
func NewInvoker(transport Transport, logger loggerpkg.Logger, verbose bool) *Invoker {
	return &Invoker{transport: transport, logger: loggerpkg.OrNop(logger), verbose: verbose}
}

// Invoke normalizes args, makes a single call and renders the result.
func (i *Invoker) Invoke(ctx context.Context, name string, args llm.Arguments) (outcome Outcome) {
	normalized := NormalizeArguments(args)
	loggerpkg.Debug(i.verbose, i.logger, "tool call", map[string]any{
		"name":      name,
		"arguments": normalized,
	})

	defer func() {
		if r := recover(); r != nil {
			outcome = errorOutcome(name, fmt.Errorf("%v", r))
			loggerpkg.Error(i.logger, "tool call panicked", map[string]any{"name": name, "panic": fmt.Sprint(r)})
		}
	}()

	if i.transport == nil {
		return errorOutcome(name, errors.New("no tool transport configured"))
	}

	result, err := i.transport.CallTool(ctx, name, normalized)
	if err != nil {
		loggerpkg.Debug(i.verbose, i.logger, "tool call failed", map[string]any{"name": name, "error": err.Error()})
		return errorOutcome(name, err)
	}

	text, ok := ResultText(result)
	if !ok {
		loggerpkg.Debug(i.verbose, i.logger, "tool result has no text content", map[string]any{"name": name})
	}
	if result != nil && result.IsError {
		return errorOutcome(name, errors.New(text))
	}
	return Outcome{
		Name:   name,
		Status: StatusSuccess,
		Text:   fmt.Sprintf("Tool '%s' result: %s", name, text),
	}
}

func errorOutcome(name string, err error) Outcome {
	return Outcome{
		Name:   name,
		Status: StatusError,
		Text:   fmt.Sprintf("Error calling tool '%s': %s", name, err.Error()),
	}
}

// NormalizeArguments turns model-supplied arguments into a mapping. Anything
// that does not decode to a JSON object becomes an empty mapping.
func NormalizeArguments(args llm.Arguments) map[string]any {
	switch args.Kind() {
	case llm.ArgumentsText:
		return decodeObject([]byte(args.Text()))
	case llm.ArgumentsJSON:
		return decodeObject(args.Raw())
	case llm.ArgumentsMap:
		if m := args.Map(); m != nil {
			return m
		}
	}
	return map[string]any{}
}

func decodeObject(data []byte) map[string]any {
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

// ResultText extracts displayable text from a tool result. ok is false when
// the expected shape was absent and the text is a JSON rendering instead.
func ResultText(result *Result) (text string, ok bool) {
	if result == nil {
		return "", false
	}
	if len(result.Content) > 0 {
		first := result.Content[0]
		if first.Text != "" {
			return first.Text, true
		}
		if raw := strings.TrimSpace(string(first.Raw)); raw != "" {
			return raw, true
		}
		b, err := json.Marshal(first)
		if err == nil {
			return string(b), true
		}
	}
	if result.Structured != nil {
		if b, err := json.Marshal(result.Structured); err == nil {
			return string(b), false
		}
	}
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%+v", *result), false
	}
	return string(b), false
}
