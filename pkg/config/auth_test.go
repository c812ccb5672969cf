package config

import "testing"

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestResolveAuth(t *testing.T) {
	tests := []struct {
		name      string
		apiKey    string
		token     string
		env       map[string]string
		wantType  AuthType
		wantValue string
	}{
		{name: "explicit api key", apiKey: "test-key-123", wantType: AuthAPIKey, wantValue: "test-key-123"},
		{name: "explicit token", token: "test-token-456", wantType: AuthBearer, wantValue: "test-token-456"},
		{name: "api key wins over token", apiKey: "test-key", token: "test-token", wantType: AuthAPIKey, wantValue: "test-key"},
		{name: "api key from env", env: map[string]string{EnvMCPAPIKey: "env-key-123"}, wantType: AuthAPIKey, wantValue: "env-key-123"},
		{name: "token from env", env: map[string]string{EnvMCPToken: "env-token-456"}, wantType: AuthBearer, wantValue: "env-token-456"},
		{name: "bearer token from env", env: map[string]string{EnvMCPBearerToken: "env-bearer-789"}, wantType: AuthBearer, wantValue: "env-bearer-789"},
		{name: "MCP_TOKEN before MCP_BEARER_TOKEN", env: map[string]string{EnvMCPToken: "first", EnvMCPBearerToken: "second"}, wantType: AuthBearer, wantValue: "first"},
		{name: "explicit overrides env", apiKey: "explicit-key", env: map[string]string{EnvMCPAPIKey: "env-key"}, wantType: AuthAPIKey, wantValue: "explicit-key"},
		{name: "env api key beats explicit token", token: "tok", env: map[string]string{EnvMCPAPIKey: "env-key"}, wantType: AuthAPIKey, wantValue: "env-key"},
		{name: "none", wantType: AuthNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := ResolveAuth(tt.apiKey, tt.token, envMap(tt.env))
			if auth.Type != tt.wantType || auth.Value != tt.wantValue {
				t.Fatalf("got %+v, want type=%q value=%q", auth, tt.wantType, tt.wantValue)
			}
			if auth.Authenticated() != (tt.wantType != AuthNone) {
				t.Fatalf("Authenticated()=%v for %+v", auth.Authenticated(), auth)
			}
		})
	}
}

func TestResolveAuthNilGetenv(t *testing.T) {
	if auth := ResolveAuth("", "", nil); auth.Authenticated() {
		t.Fatalf("expected no auth, got %+v", auth)
	}
}

func TestAuthDescribe(t *testing.T) {
	cases := map[AuthType]string{
		AuthAPIKey: "Using API key authentication",
		AuthBearer: "Using Bearer token authentication",
		AuthNone:   "No authentication configured",
	}
	for typ, want := range cases {
		if got := (Auth{Type: typ, Value: "x"}).Describe(); got != want {
			t.Fatalf("Describe(%q) = %q, want %q", typ, got, want)
		}
	}
}
