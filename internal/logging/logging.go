// Package logging bridges eventframe envelopes into log/slog. The model
// itself never logs; these helpers flatten an envelope into structured
// attributes so collaborating services can log it consistently.
package logging

import (
	"log/slog"

	"github.com/fluxrelay/eventframe/internal/model"
)

// EventAttrs flattens event metadata into slog attributes.
func EventAttrs(m model.EventMetadata) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("event_id", m.ID()),
		slog.String("event_type", string(m.Type())),
		slog.String("event_action", m.Action()),
		slog.String("created_at", m.CreatedAt().String()),
		slog.String("status", string(m.State().Status())),
	}
	if code, ok := m.State().Code(); ok {
		attrs = append(attrs, slog.Int64("status_code", code))
	}
	if desc := m.State().Description(); desc != "" {
		attrs = append(attrs, slog.String("status_description", desc))
	}
	if rt := m.ResponseTo(); rt != "" {
		attrs = append(attrs, slog.String("response_to", rt))
	}
	return attrs
}

// TraceAttrs flattens trace metadata into slog attributes.
func TraceAttrs(t *model.EventTraceMetadata) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("service", t.Service()),
		slog.String("trace_id", t.TraceID()),
		slog.String("span_id", t.SpanID()),
		slog.String("start_timestamp", t.StartTimestamp().String()),
	}
	if parent := t.ParentSpanID(); parent != "" {
		attrs = append(attrs, slog.String("parent_span_id", parent))
	}
	if finish, ok := t.FinishTimestamp(); ok {
		attrs = append(attrs, slog.String("finish_timestamp", finish.String()))
	}
	return attrs
}

// MessageAttrs flattens an envelope, including nested metadata, into
// slog attributes.
func MessageAttrs(msg model.EventMessage) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("message_id", msg.ID),
		slog.String("message_type", msg.Type),
	}
	if msg.From != "" {
		attrs = append(attrs, slog.String("from", msg.From))
	}
	if msg.To != "" {
		attrs = append(attrs, slog.String("to", msg.To))
	}
	if msg.PP != "" {
		attrs = append(attrs, slog.String("pp", msg.PP))
	}
	if msg.Metadata != nil {
		attrs = append(attrs, slog.Attr{Key: "event", Value: slog.GroupValue(EventAttrs(msg.Metadata.Event)...)})
		attrs = append(attrs, slog.Attr{Key: "trace", Value: slog.GroupValue(TraceAttrs(&msg.Metadata.Trace)...)})
	}
	return attrs
}
