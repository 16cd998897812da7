package notiontools

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ggoodman/notion-mcp-go/internal/logctx"
	"github.com/ggoodman/notion-mcp-go/mcp"
)

// Retrier decides whether a failed call is attempted again. It is consulted
// after every failed attempt (attempt counts from 1) with that attempt's
// outcome and returns how long to wait before the next one, or false to stop.
type Retrier interface {
	Retry(ctx context.Context, req *mcp.CallToolRequest, attempt int, res *mcp.CallToolResult, err error) (time.Duration, bool)
}

// Limiter throttles calls. *rate.Limiter from golang.org/x/time/rate
// satisfies it.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Cache stores results of read-only tools. Keys are opaque strings derived
// from the tool name and arguments.
type Cache interface {
	Get(ctx context.Context, key string) (*mcp.CallToolResult, bool)
	Set(ctx context.Context, key string, res *mcp.CallToolResult)
}

// WithRetry re-issues failed calls for as long as r allows. A call fails when
// it returns an error or a result with IsError set.
func WithRetry(r Retrier) Middleware {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			for attempt := 1; ; attempt++ {
				res, err := next(ctx, req)
				if err == nil && (res == nil || !res.IsError) {
					return res, nil
				}
				wait, again := r.Retry(ctx, req, attempt, res, err)
				if !again {
					return res, err
				}
				t := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					t.Stop()
					return nil, ctx.Err()
				case <-t.C:
				}
			}
		}
	}
}

// WithRateLimit waits on l before every call.
func WithRateLimit(l Limiter) Middleware {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if err := l.Wait(ctx); err != nil {
				return nil, err
			}
			return next(ctx, req)
		}
	}
}

// WithCache serves read-only tool calls from c and stores their successful
// results. Calls to other tools pass straight through.
func WithCache(c Cache) Middleware {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !IsReadOnly(req.Name) {
				return next(ctx, req)
			}
			key := CacheKey(req)
			if res, ok := c.Get(ctx, key); ok {
				return res, nil
			}
			res, err := next(ctx, req)
			if err == nil && res != nil && !res.IsError {
				c.Set(ctx, key, res)
			}
			return res, err
		}
	}
}

// CacheKey derives the cache key of req. Arguments are re-encoded so that key
// order and whitespace do not matter.
func CacheKey(req *mcp.CallToolRequest) string {
	args := string(req.Arguments)
	if m, err := req.ArgumentsMap(); err == nil {
		if b, err := json.Marshal(m); err == nil {
			args = string(b)
		}
	}
	return req.Name + "\x00" + args
}

// WithLogging logs every call on log, tagging the context with the tool name
// and a fresh call ID so that downstream logging carries them too.
func WithLogging(log *slog.Logger) Middleware {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ctx = logctx.WithToolCallData(ctx, &logctx.ToolCallData{ToolName: req.Name, CallID: uuid.NewString()})
			start := time.Now()
			log.DebugContext(ctx, "tool call started")

			res, err := next(ctx, req)

			elapsed := slog.Duration("elapsed", time.Since(start))
			switch {
			case err != nil:
				log.ErrorContext(ctx, "tool call failed", elapsed, slog.String("err", err.Error()))
			case res != nil && res.IsError:
				log.WarnContext(ctx, "tool reported an error", elapsed, slog.String("message", Text(res)))
			default:
				log.InfoContext(ctx, "tool call finished", elapsed)
			}
			return res, err
		}
	}
}
