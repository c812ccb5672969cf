// Package mcp connects to a tool-provider subprocess speaking the Model
// Context Protocol over stdio and exposes it as a tools.Transport.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	configpkg "github.com/minhyannv/mcp-client-go/pkg/config"
	loggerpkg "github.com/minhyannv/mcp-client-go/pkg/logger"
	"github.com/minhyannv/mcp-client-go/pkg/tools"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrNotConnected is returned by calls made on a closed or unconnected client.
var ErrNotConnected = errors.New("mcp: session is not initialized")

// transportBuilder is overridden in tests to avoid spawning processes.
var transportBuilder = buildTransport

// ServerConfig describes how to launch the tool provider.
type ServerConfig struct {
	Path       string
	AllowedDir string
	PythonCmd  string
	NodeCmd    string
	// Auth is forwarded to the subprocess environment.
	Auth configpkg.Auth
}

// ServerConfigFrom builds a ServerConfig from normalized client configuration.
func ServerConfigFrom(cfg configpkg.Config, auth configpkg.Auth) ServerConfig {
	return ServerConfig{
		Path:       cfg.ServerPath,
		AllowedDir: cfg.AllowedDir,
		PythonCmd:  cfg.PythonCmd,
		NodeCmd:    cfg.NodeCmd,
		Auth:       auth,
	}
}

// Client owns one MCP session with a tool provider.
type Client struct {
	session *mcpsdk.ClientSession
	logger  loggerpkg.Logger
	verbose bool
}

var _ tools.Transport = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithLogger injects a logger used for verbose protocol tracing.
func WithLogger(l loggerpkg.Logger, verbose bool) Option {
	return func(c *Client) {
		c.logger = l
		c.verbose = verbose
	}
}

// Connect launches the server described by cfg and completes the MCP
// initialize handshake. Errors here are fatal to the session.
func Connect(ctx context.Context, cfg ServerConfig, opts ...Option) (*Client, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c := &Client{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.logger = loggerpkg.OrNop(c.logger)

	transport, err := transportBuilder(ctx, cfg)
	if err != nil {
		return nil, err
	}

	impl := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "mcp-client-go", Version: "dev"}, nil)
	session, err := impl.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("initialize session: %w", err)
	}
	c.session = session
	loggerpkg.Debug(c.verbose, c.logger, "mcp session initialized", map[string]any{
		"server": cfg.Path,
		"auth":   string(cfg.Auth.Type),
	})
	return c, nil
}

// ListTools fetches the provider's current tool list.
func (c *Client) ListTools(ctx context.Context) ([]tools.Descriptor, error) {
	if c == nil || c.session == nil {
		return nil, ErrNotConnected
	}
	var out []tools.Descriptor
	for tool, err := range c.session.Tools(ctx, nil) {
		if err != nil {
			return nil, fmt.Errorf("list tools: %w", err)
		}
		out = append(out, toDescriptor(tool))
	}
	loggerpkg.Debug(c.verbose, c.logger, "tools listed", map[string]any{"count": len(out)})
	return out, nil
}

// CallTool invokes name with arguments and returns the provider's result.
func (c *Client) CallTool(ctx context.Context, name string, arguments map[string]any) (*tools.Result, error) {
	if c == nil || c.session == nil {
		return nil, ErrNotConnected
	}
	if arguments == nil {
		arguments = map[string]any{}
	}
	res, err := c.session.CallTool(ctx, &mcpsdk.CallToolParams{Name: name, Arguments: arguments})
	if err != nil {
		return nil, err
	}
	return toResult(res), nil
}

// Close ends the session and waits for the subprocess to exit.
func (c *Client) Close() error {
	if c == nil || c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

func toDescriptor(tool *mcpsdk.Tool) tools.Descriptor {
	if tool == nil {
		return tools.Descriptor{}
	}
	d := tools.Descriptor{Name: tool.Name, Description: tool.Description}
	if tool.InputSchema != nil {
		if raw, err := json.Marshal(tool.InputSchema); err == nil {
			d.InputSchema = raw
		}
	}
	return d
}

func toResult(res *mcpsdk.CallToolResult) *tools.Result {
	if res == nil {
		return &tools.Result{}
	}
	out := &tools.Result{
		Structured: res.StructuredContent,
		IsError:    res.IsError,
	}
	for _, item := range res.Content {
		out.Content = append(out.Content, toContent(item))
	}
	return out
}

func toContent(item mcpsdk.Content) tools.Content {
	if text, ok := item.(*mcpsdk.TextContent); ok {
		return tools.Content{Type: "text", Text: text.Text}
	}
	raw, err := json.Marshal(item)
	if err != nil {
		return tools.Content{Type: fmt.Sprintf("%T", item)}
	}
	var head struct {
		Type string `json:"type"`
	}
	_ = json.Unmarshal(raw, &head)
	return tools.Content{Type: head.Type, Raw: raw}
}
