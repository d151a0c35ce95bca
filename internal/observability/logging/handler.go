package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// ContextHandler decorates records with request scoped attributes.
type ContextHandler struct {
	slog.Handler
	projectID string
}

func NewHandler(w io.Writer, level slog.Level, projectID string) *ContextHandler {
	return &ContextHandler{
		Handler:   slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
		projectID: projectID,
	}
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestID(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}

	if m := ModuleFrom(ctx); m != "" {
		r.AddAttrs(slog.String("module", string(m)))
	}

	r.AddAttrs(platformAttrs(ctx, h.projectID)...)

	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs), projectID: h.projectID}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name), projectID: h.projectID}
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
