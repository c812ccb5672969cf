// Package llm defines the model endpoint boundary used by the reconciler and
// its OpenAI-compatible and Anthropic backends.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrEmptyChoices is returned when a backend replies without any message.
var ErrEmptyChoices = errors.New("empty completion choices")

// FunctionSpec is the function-calling declaration offered to the model.
type FunctionSpec struct {
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ArgumentsKind tags the shape in which a model delivered tool arguments.
type ArgumentsKind int

const (
	ArgumentsNone ArgumentsKind = iota
	ArgumentsText
	ArgumentsJSON
	ArgumentsMap
	ArgumentsOther
)

// Arguments carries tool-call arguments exactly as the model produced them.
// Backends build it with TextArguments, RawArguments, MapArguments or
// ArgumentsOf; consumers switch on Kind.
type Arguments struct {
	kind  ArgumentsKind
	text  string
	raw   json.RawMessage
	m     map[string]any
	other any
}

// TextArguments wraps a JSON-encoded string.
func TextArguments(s string) Arguments { return Arguments{kind: ArgumentsText, text: s} }

// RawArguments wraps an undecoded JSON document.
func RawArguments(raw json.RawMessage) Arguments { return Arguments{kind: ArgumentsJSON, raw: raw} }

// MapArguments wraps already-structured arguments.
func MapArguments(m map[string]any) Arguments { return Arguments{kind: ArgumentsMap, m: m} }

// ArgumentsOf classifies an arbitrary value.
func ArgumentsOf(v any) Arguments {
	switch t := v.(type) {
	case nil:
		return Arguments{}
	case Arguments:
		return t
	case string:
		return TextArguments(t)
	case []byte:
		return RawArguments(json.RawMessage(t))
	case json.RawMessage:
		return RawArguments(t)
	case map[string]any:
		return MapArguments(t)
	default:
		return Arguments{kind: ArgumentsOther, other: v}
	}
}

func (a Arguments) Kind() ArgumentsKind  { return a.kind }
func (a Arguments) Text() string         { return a.text }
func (a Arguments) Raw() json.RawMessage { return a.raw }
func (a Arguments) Map() map[string]any  { return a.m }
func (a Arguments) Other() any           { return a.other }

// String renders the arguments for logging.
func (a Arguments) String() string {
	switch a.kind {
	case ArgumentsText:
		return a.text
	case ArgumentsJSON:
		return string(a.raw)
	case ArgumentsMap:
		b, err := json.Marshal(a.m)
		if err != nil {
			return "<unencodable>"
		}
		return string(b)
	case ArgumentsOther:
		return "<unsupported>"
	default:
		return ""
	}
}

// ToolCall is one function invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments Arguments
}

// Request is a single-turn completion request.
type Request struct {
	Query string
	// Tools is nil when the provider offers no tools.
	Tools []FunctionSpec
}

// Response separates free text from requested tool calls.
type Response struct {
	Text      string
	ToolCalls []ToolCall
}

// Endpoint is an LLM backend able to do function calling.
type Endpoint interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}
