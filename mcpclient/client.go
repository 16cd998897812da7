// Package mcpclient connects the tool wrappers in notiontools to a real
// Notion MCP server. Transport, session management and the protocol
// handshake are delegated to the official Go SDK; this package only adapts
// its session to the notiontools.Caller interface.
package mcpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ggoodman/notion-mcp-go/internal/validation"
	"github.com/ggoodman/notion-mcp-go/mcp"
	"github.com/ggoodman/notion-mcp-go/notiontools"
)

// Version is reported to servers as the client implementation version.
const Version = "0.1.0"

var _ notiontools.Caller = (*Session)(nil)

// sdkSession is the part of *sdk.ClientSession a Session uses.
type sdkSession interface {
	CallTool(ctx context.Context, params *sdk.CallToolParams) (*sdk.CallToolResult, error)
	ListTools(ctx context.Context, params *sdk.ListToolsParams) (*sdk.ListToolsResult, error)
	Close() error
}

// Session is a live connection to an MCP server.
type Session struct {
	cs  sdkSession
	log *slog.Logger
}

type options struct {
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures Connect.
type Option func(*options)

// WithHTTPClient sets the HTTP client used by the transport. Its transport
// is wrapped to add the bearer token.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger sets the logger for connection lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Connect opens a session against cfg.Endpoint using the streamable HTTP
// transport.
func Connect(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	o := options{httpClient: http.DefaultClient, log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	cfg = cfg.withDefaults()

	hc := *o.httpClient
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc.Transport = bearerRT{base: base, token: cfg.Token}

	client := sdk.NewClient(&sdk.Implementation{Name: cfg.ClientName, Version: Version}, &sdk.ClientOptions{})
	transport := &sdk.StreamableClientTransport{
		Endpoint:   cfg.Endpoint,
		HTTPClient: &hc,
	}
	cs, err := client.Connect(ctx, transport, &sdk.ClientSessionOptions{})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Endpoint, err)
	}
	o.log.InfoContext(ctx, "connected to mcp server", slog.String("endpoint", cfg.Endpoint))
	return &Session{cs: cs, log: o.log}, nil
}

// CallTool forwards req to the server.
func (s *Session) CallTool(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := req.ArgumentsMap()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Name, err)
	}
	res, err := s.cs.CallTool(ctx, &sdk.CallToolParams{Name: req.Name, Arguments: args})
	if err != nil {
		return nil, err
	}
	return FromSDKResult(res)
}

// ListTools returns every tool the server advertises, following pagination
// cursors until the list is exhausted.
func (s *Session) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	var tools []mcp.Tool
	params := &sdk.ListToolsParams{}
	for {
		res, err := s.cs.ListTools(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("list tools: %w", err)
		}
		for _, t := range res.Tools {
			var tool mcp.Tool
			if err := convert(t, &tool); err != nil {
				return nil, fmt.Errorf("tool %s: %w", t.Name, err)
			}
			if err := validation.ToolInputSchema(&tool.InputSchema); err != nil {
				s.logger().WarnContext(ctx, "server advertises an inconsistent input schema",
					slog.String("tool", tool.Name), slog.String("err", err.Error()))
			}
			tools = append(tools, tool)
		}
		if res.NextCursor == "" {
			return tools, nil
		}
		params = &sdk.ListToolsParams{Cursor: res.NextCursor}
	}
}

func (s *Session) logger() *slog.Logger {
	if s.log == nil {
		return slog.Default()
	}
	return s.log
}

// Close ends the session.
func (s *Session) Close() error {
	return s.cs.Close()
}

// FromSDKResult converts a result produced by the Go SDK into the local wire
// type.
func FromSDKResult(res *sdk.CallToolResult) (*mcp.CallToolResult, error) {
	if res == nil {
		return nil, errors.New("nil tool result")
	}
	var out mcp.CallToolResult
	if err := convert(res, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func convert(from, to any) error {
	b, err := json.Marshal(from)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := json.Unmarshal(b, to); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// bearerRT injects an Authorization header when a token is configured.
type bearerRT struct {
	base  http.RoundTripper
	token string
}

func (t bearerRT) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(r)
}
