package tools

import (
	"bytes"
	"encoding/json"

	"github.com/minhyannv/mcp-client-go/pkg/llm"
)

// Adapt projects a provider descriptor onto the model's function-calling
// shape. Missing fields default to empty values; it never fails.
func Adapt(d Descriptor) llm.FunctionSpec {
	return llm.FunctionSpec{
		Type:        "function",
		Name:        d.Name,
		Description: d.Description,
		Parameters:  decodeSchema(d.InputSchema),
	}
}

// AdaptAll adapts every descriptor. It returns nil for an empty list so the
// request carries no tools at all.
func AdaptAll(descriptors []Descriptor) []llm.FunctionSpec {
	if len(descriptors) == 0 {
		return nil
	}
	out := make([]llm.FunctionSpec, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, Adapt(d))
	}
	return out
}

func decodeSchema(raw json.RawMessage) map[string]any {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return map[string]any{}
	}
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil || schema == nil {
		return map[string]any{}
	}
	return schema
}
