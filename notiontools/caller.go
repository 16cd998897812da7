package notiontools

import (
	"context"

	"github.com/ggoodman/notion-mcp-go/mcp"
)

// Caller executes tool calls. Implementations own transport, authentication
// and any retry or throttling behavior.
type Caller interface {
	CallTool(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// CallFunc is an ordinary function usable as a Caller.
type CallFunc func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error)

func (f CallFunc) CallTool(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return f(ctx, req)
}

// Middleware wraps a CallFunc with additional behavior.
type Middleware func(next CallFunc) CallFunc

// Chain wraps c with mws. The first middleware is the outermost one.
func Chain(c Caller, mws ...Middleware) Caller {
	if c == nil {
		return nil
	}
	next := CallFunc(c.CallTool)
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			next = mws[i](next)
		}
	}
	return next
}
