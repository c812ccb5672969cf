package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported LLM providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

const (
	DefaultOpenAIModel    = "llama3.2"
	DefaultOpenAIBaseURL  = "http://localhost:11434/v1"
	DefaultAnthropicModel = "claude-3-5-sonnet-20241022"
	DefaultMaxTokens      = 1000
	DefaultConfigFile     = "mcp-client.yaml"
)

var ErrUnknownProvider = errors.New("unknown provider")

// Config holds all runtime configuration for the client.
type Config struct {
	ServerPath string `yaml:"server_path"`
	AllowedDir string `yaml:"allowed_dir"`
	PythonCmd  string `yaml:"python_command"`
	NodeCmd    string `yaml:"node_command"`

	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	MaxTokens int64  `yaml:"max_tokens"`

	// Credentials forwarded to the tool-provider subprocess.
	MCPAPIKey string `yaml:"mcp_api_key"`
	MCPToken  string `yaml:"mcp_token"`

	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		PythonCmd: "python",
		NodeCmd:   "node",
		Provider:  ProviderOpenAI,
		MaxTokens: DefaultMaxTokens,
	}
}

// LoadFile overlays values from a YAML file onto cfg. A missing file is not an
// error when optional is true.
func LoadFile(cfg Config, path string, optional bool) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize sanitizes configuration values and applies provider defaults.
func Normalize(cfg Config) Config {
	cfg.ServerPath = strings.TrimSpace(cfg.ServerPath)
	cfg.AllowedDir = strings.TrimSpace(cfg.AllowedDir)
	cfg.PythonCmd = strings.TrimSpace(cfg.PythonCmd)
	cfg.NodeCmd = strings.TrimSpace(cfg.NodeCmd)
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.MCPAPIKey = strings.TrimSpace(cfg.MCPAPIKey)
	cfg.MCPToken = strings.TrimSpace(cfg.MCPToken)

	if cfg.PythonCmd == "" {
		cfg.PythonCmd = "python"
	}
	if cfg.NodeCmd == "" {
		cfg.NodeCmd = "node"
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.Model == "" {
			cfg.Model = DefaultOpenAIModel
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = DefaultOpenAIBaseURL
		}
		// Local inference servers accept any key but the SDK requires one.
		if cfg.APIKey == "" {
			cfg.APIKey = "ollama"
		}
	case ProviderAnthropic:
		if cfg.Model == "" {
			cfg.Model = DefaultAnthropicModel
		}
	}
	return cfg
}

// Validate reports configuration problems that make the client unusable.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
	case ProviderAnthropic:
		if c.APIKey == "" {
			return errors.New("ANTHROPIC_API_KEY is not set")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	if c.ServerPath == "" {
		return errors.New("server path is required (argument, -config server_path or MCP_SERVER_PATH)")
	}
	return nil
}
