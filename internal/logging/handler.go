package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
)

const defaultType = "app"

// Handler writes every record to next and also enqueues a sanitized JSON copy
// on the shipper. The shipped copy carries the same attributes and groups.
type Handler struct {
	next    slog.Handler
	shipper *Shipper
	ops     []func(slog.Handler) slog.Handler
	typ     string
}

func NewHandler(next slog.Handler, shipper *Shipper) *Handler {
	return &Handler{next: next, shipper: shipper, typ: defaultType}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	err := h.next.Handle(ctx, r)

	line, encErr := h.encode(ctx, r)
	if encErr == nil {
		h.shipper.Enqueue(Entry{
			Time:  r.Time,
			Level: strings.ToLower(r.Level.String()),
			Type:  h.recordType(r),
			Line:  Sanitize(line),
		})
	}

	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.next = h.next.WithAttrs(attrs)
	clone.ops = append(clone.ops, func(l slog.Handler) slog.Handler { return l.WithAttrs(attrs) })
	for _, a := range attrs {
		if a.Key == "type" {
			clone.typ = a.Value.String()
		}
	}
	return clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.next = h.next.WithGroup(name)
	clone.ops = append(clone.ops, func(l slog.Handler) slog.Handler { return l.WithGroup(name) })
	return clone
}

func (h *Handler) clone() *Handler {
	return &Handler{
		next:    h.next,
		shipper: h.shipper,
		ops:     append([]func(slog.Handler) slog.Handler(nil), h.ops...),
		typ:     h.typ,
	}
}

// encode renders the record as one JSON line without the time field; Loki
// stores the timestamp separately.
func (h *Handler) encode(ctx context.Context, r slog.Record) (string, error) {
	var buf bytes.Buffer
	var l slog.Handler = slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	for _, op := range h.ops {
		l = op(l)
	}
	if err := l.Handle(ctx, r); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (h *Handler) recordType(r slog.Record) string {
	typ := h.typ
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "type" {
			typ = a.Value.String()
			return false
		}
		return true
	})
	return typ
}
