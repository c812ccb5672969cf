package llm

import (
	"encoding/json"
	"errors"
	"testing"

	configpkg "github.com/minhyannv/mcp-client-go/pkg/config"
)

func TestArgumentsOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want ArgumentsKind
	}{
		{name: "nil", in: nil, want: ArgumentsNone},
		{name: "string", in: `{"a":1}`, want: ArgumentsText},
		{name: "bytes", in: []byte(`{"a":1}`), want: ArgumentsJSON},
		{name: "raw", in: json.RawMessage(`{"a":1}`), want: ArgumentsJSON},
		{name: "map", in: map[string]any{"a": 1}, want: ArgumentsMap},
		{name: "other", in: []int{1, 2}, want: ArgumentsOther},
		{name: "already arguments", in: TextArguments("x"), want: ArgumentsText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArgumentsOf(tt.in).Kind(); got != tt.want {
				t.Fatalf("ArgumentsOf(%#v).Kind() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestArgumentsString(t *testing.T) {
	if got := MapArguments(map[string]any{"employee_id": "E001"}).String(); got != `{"employee_id":"E001"}` {
		t.Fatalf("unexpected map rendering: %q", got)
	}
	if got := ArgumentsOf(42).String(); got != "<unsupported>" {
		t.Fatalf("unexpected other rendering: %q", got)
	}
	if got := (Arguments{}).String(); got != "" {
		t.Fatalf("unexpected empty rendering: %q", got)
	}
}

func TestNewSelectsBackend(t *testing.T) {
	endpoint, err := New(configpkg.Normalize(configpkg.Config{Provider: configpkg.ProviderOpenAI}))
	if err != nil {
		t.Fatalf("New openai: %v", err)
	}
	if _, ok := endpoint.(*OpenAIEndpoint); !ok {
		t.Fatalf("expected *OpenAIEndpoint, got %T", endpoint)
	}

	endpoint, err = New(configpkg.Normalize(configpkg.Config{Provider: configpkg.ProviderAnthropic, APIKey: "k"}))
	if err != nil {
		t.Fatalf("New anthropic: %v", err)
	}
	if _, ok := endpoint.(*AnthropicEndpoint); !ok {
		t.Fatalf("expected *AnthropicEndpoint, got %T", endpoint)
	}

	if _, err := New(configpkg.Config{Provider: "bogus"}); !errors.Is(err, configpkg.ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}
