package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	configpkg "github.com/minhyannv/mcp-client-go/pkg/config"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrUnsupportedServer is returned for server paths that cannot be launched.
var ErrUnsupportedServer = errors.New("server script must be a .py or .js file")

// Environment variables set on the subprocess for authentication.
const (
	EnvAuthType    = "MCP_AUTH_TYPE"
	EnvAPIKey      = configpkg.EnvMCPAPIKey
	EnvBearerToken = configpkg.EnvMCPBearerToken
)

func buildTransport(ctx context.Context, cfg ServerConfig) (mcpsdk.Transport, error) {
	cmd, err := serverCommand(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &mcpsdk.CommandTransport{Command: cmd}, nil
}

// serverCommand resolves cfg.Path and builds the command that runs it.
func serverCommand(ctx context.Context, cfg ServerConfig) (*exec.Cmd, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	path, err := resolveServerPath(cfg.Path, cfg.AllowedDir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("server script %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrUnsupportedServer, path)
	}

	var name string
	var args []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		name, args = orDefault(cfg.PythonCmd, "python"), []string{path}
	case ".js":
		name, args = orDefault(cfg.NodeCmd, "node"), []string{path}
	default:
		if info.Mode().Perm()&0o111 == 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedServer, path)
		}
		name = path
	}

	// #nosec G204 -- path was resolved and checked above
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = filepath.Dir(path)
	cmd.Env = serverEnv(os.Environ(), cfg.Auth)
	return cmd, nil
}

// resolveServerPath returns the absolute path, rejecting paths outside
// allowedDir when it is set.
func resolveServerPath(path, allowedDir string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("server path is empty")
	}
	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("invalid server path: %w", err)
	}

	allowedDir = strings.TrimSpace(allowedDir)
	if allowedDir == "" {
		return absPath, nil
	}
	root, err := filepath.Abs(allowedDir)
	if err != nil {
		return "", fmt.Errorf("invalid allowed dir: %w", err)
	}
	rel, err := filepath.Rel(root, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("server path outside allowed directory: %s (allowed: %s)", absPath, root)
	}
	return absPath, nil
}

// serverEnv keeps only low-risk variables from base and adds the credential.
func serverEnv(base []string, auth configpkg.Auth) []string {
	allowedPrefixes := []string{
		"PATH=",
		"HOME=",
		"USER=",
		"LOGNAME=",
		"SHELL=",
		"TERM=",
		"TMPDIR=",
		"LANG=",
		"LC_",
		"PYTHONPATH=",
		"VIRTUAL_ENV=",
		"NODE_PATH=",
		"SYSTEMROOT=",
		"APPDATA=",
	}

	env := make([]string, 0, len(allowedPrefixes)+2)
	for _, kv := range base {
		for _, prefix := range allowedPrefixes {
			if strings.HasPrefix(kv, prefix) {
				env = append(env, kv)
				break
			}
		}
	}

	switch auth.Type {
	case configpkg.AuthAPIKey:
		env = append(env, EnvAuthType+"="+string(auth.Type), EnvAPIKey+"="+auth.Value)
	case configpkg.AuthBearer:
		env = append(env, EnvAuthType+"="+string(auth.Type), EnvBearerToken+"="+auth.Value)
	}
	return env
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
