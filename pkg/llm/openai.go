package llm

import (
	"context"
	"encoding/json"
	"strings"

	loggerpkg "github.com/minhyannv/mcp-client-go/pkg/logger"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIEndpoint talks to any OpenAI-compatible chat completions API,
// including local inference servers such as Ollama.
type OpenAIEndpoint struct {
	client  openai.Client
	model   string
	logger  loggerpkg.Logger
	verbose bool
}

// NewOpenAIClient builds an SDK client for baseURL and apiKey.
func NewOpenAIClient(baseURL, apiKey string, extra ...option.RequestOption) openai.Client {
	opts := []option.RequestOption{}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	opts = append(opts, extra...)
	return openai.NewClient(opts...)
}

// NewOpenAIEndpoint wraps client for model.
func NewOpenAIEndpoint(client openai.Client, model string, opts ...Option) *OpenAIEndpoint {
	o := applyOptions(opts)
	return &OpenAIEndpoint{client: client, model: model, logger: o.logger, verbose: o.verbose}
}

// Complete sends one user message with the offered functions.
func (e *OpenAIEndpoint) Complete(ctx context.Context, req Request) (*Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(req.Query)},
	}
	if len(req.Tools) > 0 {
		params.Tools = openAITools(req.Tools)
	}

	loggerpkg.Debug(e.verbose, e.logger, "openai request", map[string]any{
		"model": e.model,
		"tools": len(params.Tools),
	})
	completion, err := e.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, ErrEmptyChoices
	}

	message := completion.Choices[0].Message
	loggerpkg.Debug(e.verbose, e.logger, "openai response", map[string]any{
		"finish_reason": completion.Choices[0].FinishReason,
		"tool_calls":    len(message.ToolCalls),
	})

	resp := &Response{Text: message.Content}
	for _, call := range message.ToolCalls {
		resp.ToolCalls = append(resp.ToolCalls, ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: toolCallArguments(call.Function.Arguments, call.Function.JSON.Arguments.Raw()),
		})
	}
	return resp, nil
}

func openAITools(specs []FunctionSpec) []openai.ChatCompletionToolParam {
	out := make([]openai.ChatCompletionToolParam, 0, len(specs))
	for _, spec := range specs {
		params := spec.Parameters
		if params == nil {
			params = map[string]any{}
		}
		out = append(out, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        spec.Name,
				Description: openai.String(spec.Description),
				Parameters:  openai.FunctionParameters(params),
			},
		})
	}
	return out
}

// toolCallArguments keeps object-valued arguments, which some local servers
// send instead of the JSON-encoded string the API defines.
func toolCallArguments(text, raw string) Arguments {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		return RawArguments(json.RawMessage(trimmed))
	}
	return TextArguments(text)
}
