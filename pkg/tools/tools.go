// Package tools adapts tool-provider descriptors to model function specs and
// invokes the provider's tools on behalf of the model.
package tools

import (
	"context"
	"encoding/json"
)

// Descriptor is a tool declared by the provider.
type Descriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema,omitempty"`
}

// Content is one item of a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	// Raw is the item as it appeared on the wire.
	Raw json.RawMessage `json:"-"`
}

// Result is what a provider returns for a tool call.
type Result struct {
	Content    []Content `json:"content"`
	Structured any       `json:"structuredContent,omitempty"`
	IsError    bool      `json:"isError,omitempty"`
}

// Transport is the tool-provider boundary.
type Transport interface {
	ListTools(ctx context.Context) ([]Descriptor, error)
	CallTool(ctx context.Context, name string, arguments map[string]any) (*Result, error)
}

// Status of a single tool call.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Outcome is the rendered result of one tool call.
type Outcome struct {
	Name   string
	Status Status
	Text   string
}
