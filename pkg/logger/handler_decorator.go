package logger

import (
	"context"
	"log/slog"
)

// RedactedValue replaces the value of every redacted attribute.
const RedactedValue = "[REDACTED]"

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler. It adds attributes taken from the
// record's context at write time and masks the values of redacted keys, so
// secrets and tokens never reach the output even when a caller logs them.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
	redact     map[string]struct{}
}

// NewLogHandlerDecorator creates a decorated handler. Nil extractors and
// empty keys are dropped.
func NewLogHandlerDecorator(next slog.Handler, redactKeys []string, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}

	var redact map[string]struct{}
	for _, k := range redactKeys {
		if k == "" {
			continue
		}
		if redact == nil {
			redact = make(map[string]struct{}, len(redactKeys))
		}
		redact[k] = struct{}{}
	}

	return &LogHandlerDecorator{next: next, extractors: clean, redact: redact}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle masks redacted attributes, appends context attributes and delegates.
func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.redact) > 0 {
		out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
		rec.Attrs(func(a slog.Attr) bool {
			out.AddAttrs(h.mask(a))
			return true
		})
		rec = out
	}

	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(h.mask(attr))
		}
	}
	return h.next.Handle(ctx, rec)
}

// WithAttrs masks static attributes once, when they are bound.
func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(h.redact) > 0 {
		masked := make([]slog.Attr, len(attrs))
		for i, a := range attrs {
			masked[i] = h.mask(a)
		}
		attrs = masked
	}
	return &LogHandlerDecorator{
		next:       h.next.WithAttrs(attrs),
		extractors: h.extractors,
		redact:     h.redact,
	}
}

// WithGroup keeps extractors and redaction; extracted attributes land in the group.
func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{
		next:       h.next.WithGroup(name),
		extractors: h.extractors,
		redact:     h.redact,
	}
}

// mask replaces redacted values, descending into groups.
func (h *LogHandlerDecorator) mask(a slog.Attr) slog.Attr {
	if len(h.redact) == 0 {
		return a
	}
	if _, ok := h.redact[a.Key]; ok {
		return slog.String(a.Key, RedactedValue)
	}
	if a.Value.Kind() != slog.KindGroup {
		return a
	}

	group := a.Value.Group()
	masked := make([]slog.Attr, len(group))
	for i, ga := range group {
		masked[i] = h.mask(ga)
	}
	return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
}
