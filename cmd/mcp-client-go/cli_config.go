package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	configpkg "github.com/minhyannv/mcp-client-go/pkg/config"
)

// cliConfig is the resolved startup state of the client.
type cliConfig struct {
	Config configpkg.Config
	Auth   configpkg.Auth
}

// parseCLIConfig merges defaults, the YAML file, the environment and flags,
// in increasing order of precedence.
func parseCLIConfig(args []string, getenv func(string) string, stderr io.Writer) (cliConfig, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	fs := flag.NewFlagSet("mcp-client-go", flag.ContinueOnError)
	if stderr != nil {
		fs.SetOutput(stderr)
	}
	fs.Usage = func() {
		_, _ = fmt.Fprintln(fs.Output(), "Usage: mcp-client-go [flags] <path_to_server_script>")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", configpkg.DefaultConfigFile, "YAML config file (optional when left at the default)")
	provider := fs.String("provider", "", "LLM provider: openai or anthropic")
	model := fs.String("model", "", "Model identifier")
	baseURL := fs.String("base_url", "", "LLM API base URL")
	maxTokens := fs.Int64("max_tokens", 0, "Token budget per response (anthropic)")
	apiKey := fs.String("api_key", "", "API key passed to the tool server")
	token := fs.String("token", "", "Bearer token passed to the tool server")
	allowedDir := fs.String("allowed_dir", "", "Only launch server scripts under this directory")
	verbose := fs.Bool("verbose", false, "Verbose request and tool-call logging")
	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if fs.NArg() > 1 {
		return cliConfig{}, fmt.Errorf("expected one server path, got %d arguments", fs.NArg())
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := configpkg.LoadFile(configpkg.DefaultConfig(), *configPath, !set["config"])
	if err != nil {
		return cliConfig{}, err
	}

	if v := getenv("LLM_PROVIDER"); strings.TrimSpace(v) != "" {
		cfg.Provider = v
	}
	if set["provider"] {
		cfg.Provider = *provider
	}
	cfg = applyEnv(cfg, getenv)

	if set["model"] {
		cfg.Model = *model
	}
	if set["base_url"] {
		cfg.BaseURL = *baseURL
	}
	if set["max_tokens"] {
		cfg.MaxTokens = *maxTokens
	}
	if set["allowed_dir"] {
		cfg.AllowedDir = *allowedDir
	}
	if set["verbose"] {
		cfg.Verbose = *verbose
	}
	if fs.NArg() == 1 {
		cfg.ServerPath = fs.Arg(0)
	}

	cfg = configpkg.Normalize(cfg)
	if err := cfg.Validate(); err != nil {
		return cliConfig{}, err
	}

	auth := configpkg.ResolveAuth(*apiKey, *token, getenv)
	if !auth.Authenticated() {
		auth = configpkg.ResolveAuth(cfg.MCPAPIKey, cfg.MCPToken, nil)
	}
	return cliConfig{Config: cfg, Auth: auth}, nil
}

// applyEnv overlays provider-specific environment variables onto cfg.
func applyEnv(cfg configpkg.Config, getenv func(string) string) configpkg.Config {
	overlay := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	overlay(&cfg.ServerPath, "MCP_SERVER_PATH")

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case configpkg.ProviderAnthropic:
		overlay(&cfg.APIKey, "ANTHROPIC_API_KEY")
		overlay(&cfg.Model, "ANTHROPIC_MODEL")
		overlay(&cfg.BaseURL, "ANTHROPIC_BASE_URL")
	default:
		overlay(&cfg.APIKey, "OPENAI_API_KEY")
		overlay(&cfg.Model, "OPENAI_MODEL")
		overlay(&cfg.BaseURL, "OPENAI_BASE_URL")
	}
	return cfg
}
