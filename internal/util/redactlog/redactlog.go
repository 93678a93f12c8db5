// Package redactlog wraps a slog.Handler so that secret-bearing attributes
// never reach the log sink.
package redactlog

import (
	"context"
	"log/slog"
	"strings"
)

const redactedValue = "[REDACTED]"

var sensitiveKeyParts = []string{"secret", "private", "passphrase", "password", "seed", "token"}

// Handler replaces the value of any attribute whose key looks sensitive.
type Handler struct {
	next slog.Handler
}

// WrapHandler returns next wrapped in a redacting Handler.
func WrapHandler(next slog.Handler) slog.Handler {
	if next == nil {
		return nil
	}
	return &Handler{next: next}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(attr slog.Attr) bool {
		out.AddAttrs(RedactAttr(attr))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cleaned := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		cleaned = append(cleaned, RedactAttr(a))
	}
	return &Handler{next: h.next.WithAttrs(cleaned)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name)}
}

// RedactAttr redacts attr when its key is sensitive, descending into groups.
func RedactAttr(attr slog.Attr) slog.Attr {
	if isSensitiveKey(attr.Key) {
		return slog.String(attr.Key, redactedValue)
	}
	v := attr.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		return slog.Attr{Key: attr.Key, Value: v}
	}
	group := v.Group()
	cleaned := make([]any, 0, len(group))
	for _, a := range group {
		cleaned = append(cleaned, RedactAttr(a))
	}
	return slog.Group(attr.Key, cleaned...)
}

func isSensitiveKey(key string) bool {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, part := range sensitiveKeyParts {
		if strings.Contains(k, part) {
			return true
		}
	}
	return false
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog.Level,
// defaulting to info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
