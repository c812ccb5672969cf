package config

import "strings"

// AuthType identifies how the tool provider is authenticated.
type AuthType string

const (
	AuthNone   AuthType = ""
	AuthAPIKey AuthType = "api_key"
	AuthBearer AuthType = "bearer"
)

// Environment variables consulted by ResolveAuth, in precedence order.
const (
	EnvMCPAPIKey      = "MCP_API_KEY"
	EnvMCPToken       = "MCP_TOKEN"
	EnvMCPBearerToken = "MCP_BEARER_TOKEN"
)

// Auth is the credential handed to the tool-provider subprocess.
type Auth struct {
	Type  AuthType
	Value string
}

// Authenticated reports whether any credential was resolved.
func (a Auth) Authenticated() bool {
	return a.Type != AuthNone && a.Value != ""
}

// Describe returns the user-facing line printed during connect.
func (a Auth) Describe() string {
	switch a.Type {
	case AuthAPIKey:
		return "Using API key authentication"
	case AuthBearer:
		return "Using Bearer token authentication"
	default:
		return "No authentication configured"
	}
}

// ResolveAuth picks the credential once at startup.
// API key: explicit > MCP_API_KEY. Token: explicit > MCP_TOKEN > MCP_BEARER_TOKEN.
// An API key wins over a token when both are present.
func ResolveAuth(apiKey, token string, getenv func(string) string) Auth {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	apiKey = firstNonEmpty(apiKey, getenv(EnvMCPAPIKey))
	token = firstNonEmpty(token, getenv(EnvMCPToken), getenv(EnvMCPBearerToken))

	switch {
	case apiKey != "":
		return Auth{Type: AuthAPIKey, Value: apiKey}
	case token != "":
		return Auth{Type: AuthBearer, Value: token}
	default:
		return Auth{}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
