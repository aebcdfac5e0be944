package logger

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"
)

// Poster is the part of *fluent.Fluent used by FluentHandler
type Poster interface {
	Post(tag string, message interface{}) error
}

// FluentHandler is a slog handler that posts records to Fluent Bit.
// Records are tagged "<tag>.<level>".
type FluentHandler struct {
	client Poster
	tag    string
	level  slog.Leveler
	fields map[string]interface{}
	prefix string
}

func NewFluentHandler(client Poster, tag string, level slog.Leveler) *FluentHandler {
	if tag == "" {
		tag = "app"
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &FluentHandler{
		client: client,
		tag:    tag,
		level:  level,
		fields: map[string]interface{}{},
	}
}

func (h *FluentHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *FluentHandler) Handle(_ context.Context, r slog.Record) error {
	data := make(map[string]interface{}, len(h.fields)+r.NumAttrs()+3)
	maps.Copy(data, h.fields)

	r.Attrs(func(a slog.Attr) bool {
		addAttr(data, h.prefix, a)
		return true
	})

	level := strings.ToLower(r.Level.String())
	data["level"] = level
	data["message"] = r.Message
	data["timestamp"] = r.Time.UTC().Format(time.RFC3339Nano)

	return h.client.Post(h.tag+"."+level, data)
}

func (h *FluentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		addAttr(next.fields, next.prefix, a)
	}
	return next
}

func (h *FluentHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *FluentHandler) clone() *FluentHandler {
	return &FluentHandler{
		client: h.client,
		tag:    h.tag,
		level:  h.level,
		fields: maps.Clone(h.fields),
		prefix: h.prefix,
	}
}

func addAttr(data map[string]interface{}, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range v.Group() {
			addAttr(data, groupPrefix, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	data[prefix+a.Key] = fluentValue(v)
}

// fluentValue converts a value to something msgpack can encode
func fluentValue(v slog.Value) interface{} {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339Nano)
	default:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprintf("%+v", v.Any())
	}
}
