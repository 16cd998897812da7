package logctx

import (
	"context"
	"log/slog"
)

// Handler decorates records with whatever tool call or snapshot data the
// context carries.
type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if td, ok := ctx.Value(toolCallDataKey{}).(*ToolCallData); ok {
		r.AddAttrs(slog.Group("tool",
			slog.String("name", td.ToolName),
			slog.String("call_id", td.CallID),
		))
	}

	if sd, ok := ctx.Value(snapshotDataKey{}).(*SnapshotData); ok {
		r.AddAttrs(slog.Group("snapshot",
			slog.String("path", sd.Path),
			slog.String("kind", sd.Kind),
		))
	}

	return h.Handler.Handle(ctx, r)
}

func (h Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Handler{h.Handler.WithAttrs(attrs)}
}

func (h Handler) WithGroup(name string) slog.Handler {
	return Handler{h.Handler.WithGroup(name)}
}

type toolCallDataKey struct{}

type ToolCallData struct {
	ToolName string
	CallID   string
}

func WithToolCallData(ctx context.Context, data *ToolCallData) context.Context {
	return context.WithValue(ctx, toolCallDataKey{}, data)
}

type snapshotDataKey struct{}

type SnapshotData struct {
	Path string
	Kind string
}

func WithSnapshotData(ctx context.Context, data *SnapshotData) context.Context {
	return context.WithValue(ctx, snapshotDataKey{}, data)
}
