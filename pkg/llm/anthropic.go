package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	loggerpkg "github.com/minhyannv/mcp-client-go/pkg/logger"
)

// AnthropicEndpoint talks to the hosted Messages API with a fixed model and
// token budget.
type AnthropicEndpoint struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
	logger    loggerpkg.Logger
	verbose   bool
}

// NewAnthropicClient builds an SDK client. An empty baseURL keeps the SDK default.
func NewAnthropicClient(baseURL, apiKey string, extra ...option.RequestOption) *anthropic.Client {
	opts := []option.RequestOption{}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	opts = append(opts, extra...)
	c := anthropic.NewClient(opts...)
	return &c
}

// NewAnthropicEndpoint wraps client for model with a maxTokens budget per reply.
func NewAnthropicEndpoint(client *anthropic.Client, model string, maxTokens int64, opts ...Option) *AnthropicEndpoint {
	o := applyOptions(opts)
	return &AnthropicEndpoint{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		logger:    o.logger,
		verbose:   o.verbose,
	}
}

// Complete sends one user message with the offered tools.
func (e *AnthropicEndpoint) Complete(ctx context.Context, req Request) (*Response, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Query)),
		},
	}
	if len(req.Tools) > 0 {
		params.Tools = anthropicTools(req.Tools)
	}

	loggerpkg.Debug(e.verbose, e.logger, "anthropic request", map[string]any{
		"model":      e.model,
		"max_tokens": e.maxTokens,
		"tools":      len(params.Tools),
	})
	msg, err := e.client.Messages.New(ctx, params)
	if err != nil {
		return nil, err
	}
	loggerpkg.Debug(e.verbose, e.logger, "anthropic response", map[string]any{
		"stop_reason": msg.StopReason,
		"blocks":      len(msg.Content),
	})

	var texts []string
	resp := &Response{}
	for _, block := range msg.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			if v.Text != "" {
				texts = append(texts, v.Text)
			}
		case anthropic.ToolUseBlock:
			resp.ToolCalls = append(resp.ToolCalls, ToolCall{
				ID:        v.ID,
				Name:      v.Name,
				Arguments: RawArguments(json.RawMessage(v.JSON.Input.Raw())),
			})
		}
	}
	resp.Text = strings.Join(texts, "\n")
	return resp, nil
}

func anthropicTools(specs []FunctionSpec) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(specs))
	for _, spec := range specs {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        spec.Name,
			Description: anthropic.String(spec.Description),
			InputSchema: anthropicInputSchema(spec.Parameters),
		}})
	}
	return out
}

func anthropicInputSchema(params map[string]any) anthropic.ToolInputSchemaParam {
	schema := anthropic.ToolInputSchemaParam{}
	if props, ok := params["properties"]; ok && props != nil {
		schema.Properties = props
	} else {
		schema.Properties = map[string]any{}
	}
	switch required := params["required"].(type) {
	case []string:
		schema.Required = required
	case []any:
		for _, r := range required {
			if s, ok := r.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}
	return schema
}
