package model

import (
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/trace"

	errspkg "github.com/fluxrelay/eventframe/internal/errors"
	"github.com/fluxrelay/eventframe/internal/ids"
)

// EventTraceMetadata describes one span of a distributed trace: the
// owning service, the W3C-shaped trace and span identifiers, optional
// parent linkage and sampling bits, and the start/finish timestamps.
// Identifiers are validated at construction; an instance with a
// malformed id cannot exist.
type EventTraceMetadata struct {
	service         string
	traceID         string
	spanID          string
	parentSpanID    string
	sampled         *int
	flags           *int
	startTimestamp  Timestamp
	finishTimestamp Timestamp
}

// TraceOption customises optional EventTraceMetadata fields. Options
// carrying identifiers are validated by the constructor, not by the
// option itself.
type TraceOption func(*EventTraceMetadata)

// WithParentSpanID links the span under a parent span.
func WithParentSpanID(parentSpanID string) TraceOption {
	return func(t *EventTraceMetadata) {
		t.parentSpanID = parentSpanID
	}
}

// WithSampled sets the numeric sampling flag.
func WithSampled(sampled int) TraceOption {
	return func(t *EventTraceMetadata) {
		s := sampled
		t.sampled = &s
	}
}

// WithFlags sets the numeric trace flags.
func WithFlags(flags int) TraceOption {
	return func(t *EventTraceMetadata) {
		f := flags
		t.flags = &f
	}
}

// WithStartTimestamp overrides the start timestamp, which otherwise
// defaults to the construction time.
func WithStartTimestamp(ts Timestamp) TraceOption {
	return func(t *EventTraceMetadata) {
		t.startTimestamp = ts
	}
}

// NewTraceMetadata builds trace metadata for an existing span context.
// The service must be non-empty, traceID must be 32 lowercase hex
// characters, and spanID (and the parent span id, if provided) must be
// 16 lowercase hex characters. Any violation fails construction; no
// partially valid object is ever returned.
func NewTraceMetadata(service, traceID, spanID string, opts ...TraceOption) (*EventTraceMetadata, error) {
	t := &EventTraceMetadata{
		service: service,
		traceID: traceID,
		spanID:  spanID,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.service == "" {
		return nil, errspkg.ErrServiceRequired
	}
	if !ids.IsValidTraceID(t.traceID) {
		return nil, fmt.Errorf("%w: %q", errspkg.ErrInvalidTraceID, t.traceID)
	}
	if !ids.IsValidSpanID(t.spanID) {
		return nil, fmt.Errorf("%w: %q", errspkg.ErrInvalidSpanID, t.spanID)
	}
	if t.parentSpanID != "" && !ids.IsValidSpanID(t.parentSpanID) {
		return nil, fmt.Errorf("%w: %q", errspkg.ErrInvalidParentSpanID, t.parentSpanID)
	}

	if t.startTimestamp.IsZero() {
		t.startTimestamp = Now()
	}
	return t, nil
}

// StartTrace begins a brand new trace for a service, generating a fresh
// trace id and span id from the default id source.
func StartTrace(service string, opts ...TraceOption) (*EventTraceMetadata, error) {
	return NewTraceMetadata(service, ids.NewTraceID(), ids.NewSpanID(), opts...)
}

// StartChildSpan begins a new span within an existing trace, parented
// under the given metadata's span.
func StartChildSpan(parent *EventTraceMetadata, opts ...TraceOption) (*EventTraceMetadata, error) {
	merged := append([]TraceOption{WithParentSpanID(parent.spanID)}, opts...)
	return NewTraceMetadata(parent.service, parent.traceID, ids.NewSpanID(), merged...)
}

// Finish stamps the span as finished at the current time. Calling it
// again overwrites the previous value; callers wanting a single
// transition must guard it themselves.
func (t *EventTraceMetadata) Finish() {
	t.FinishAt(Now())
}

// FinishAt stamps the span as finished at the given time, overwriting
// any prior finish timestamp.
func (t *EventTraceMetadata) FinishAt(ts Timestamp) {
	if ts.IsZero() {
		ts = Now()
	}
	t.finishTimestamp = ts
}

// Service returns the owning service name.
func (t *EventTraceMetadata) Service() string { return t.service }

// TraceID returns the 32-character hex trace id.
func (t *EventTraceMetadata) TraceID() string { return t.traceID }

// SpanID returns the 16-character hex span id.
func (t *EventTraceMetadata) SpanID() string { return t.spanID }

// ParentSpanID returns the parent span id, empty for a root span.
func (t *EventTraceMetadata) ParentSpanID() string { return t.parentSpanID }

// Sampled returns the sampling flag and whether one was set.
func (t *EventTraceMetadata) Sampled() (int, bool) {
	if t.sampled == nil {
		return 0, false
	}
	return *t.sampled, true
}

// Flags returns the trace flags and whether they were set.
func (t *EventTraceMetadata) Flags() (int, bool) {
	if t.flags == nil {
		return 0, false
	}
	return *t.flags, true
}

// StartTimestamp returns when the span started.
func (t *EventTraceMetadata) StartTimestamp() Timestamp { return t.startTimestamp }

// FinishTimestamp returns when the span finished and whether Finish has
// been called.
func (t *EventTraceMetadata) FinishTimestamp() (Timestamp, bool) {
	return t.finishTimestamp, !t.finishTimestamp.IsZero()
}

// Finished reports whether the span carries a finish timestamp.
func (t *EventTraceMetadata) Finished() bool {
	return !t.finishTimestamp.IsZero()
}

// traceFlagsByte folds the explicit flags and the sampled bit into one
// W3C trace-flags byte.
func (t *EventTraceMetadata) traceFlagsByte() byte {
	var b byte
	if t.flags != nil {
		b = byte(*t.flags)
	}
	if t.sampled != nil && *t.sampled != 0 {
		b |= byte(trace.FlagsSampled)
	}
	return b
}

// SpanContext converts the metadata into an OpenTelemetry remote span
// context. OpenTelemetry additionally rejects all-zero identifiers, so
// conversion can fail even for metadata this module accepts.
func (t *EventTraceMetadata) SpanContext() (trace.SpanContext, error) {
	tid, err := trace.TraceIDFromHex(t.traceID)
	if err != nil {
		return trace.SpanContext{}, fmt.Errorf("%w: %q", errspkg.ErrInvalidTraceID, t.traceID)
	}
	sid, err := trace.SpanIDFromHex(t.spanID)
	if err != nil {
		return trace.SpanContext{}, fmt.Errorf("%w: %q", errspkg.ErrInvalidSpanID, t.spanID)
	}
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    tid,
		SpanID:     sid,
		TraceFlags: trace.TraceFlags(t.traceFlagsByte()),
		Remote:     true,
	}), nil
}

// TraceMetadataFromSpanContext builds trace metadata for a service from
// an OpenTelemetry span context, carrying over ids and the sampled bit.
func TraceMetadataFromSpanContext(service string, sc trace.SpanContext, opts ...TraceOption) (*EventTraceMetadata, error) {
	sampled := 0
	if sc.IsSampled() {
		sampled = 1
	}
	merged := append([]TraceOption{
		WithSampled(sampled),
		WithFlags(int(sc.TraceFlags())),
	}, opts...)
	return NewTraceMetadata(service, sc.TraceID().String(), sc.SpanID().String(), merged...)
}

// Traceparent renders the span as a W3C traceparent header value,
// version 00.
func (t *EventTraceMetadata) Traceparent() string {
	return fmt.Sprintf("00-%s-%s-%02x", t.traceID, t.spanID, t.traceFlagsByte())
}

// ParseTraceparent builds trace metadata for a service from a W3C
// traceparent header value.
func ParseTraceparent(service, header string) (*EventTraceMetadata, error) {
	parts := strings.Split(strings.TrimSpace(header), "-")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: %q", errspkg.ErrInvalidTraceparent, header)
	}
	version, traceID, spanID, flagsHex := parts[0], parts[1], parts[2], parts[3]
	if len(version) != 2 || version == "ff" || !isLowerHex(version) {
		return nil, fmt.Errorf("%w: bad version %q", errspkg.ErrInvalidTraceparent, version)
	}
	if len(flagsHex) != 2 || !isLowerHex(flagsHex) {
		return nil, fmt.Errorf("%w: bad flags %q", errspkg.ErrInvalidTraceparent, flagsHex)
	}

	parsedFlags, err := strconv.ParseUint(flagsHex, 16, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: bad flags %q", errspkg.ErrInvalidTraceparent, flagsHex)
	}
	flags := int(parsedFlags)
	sampled := flags & int(trace.FlagsSampled)

	return NewTraceMetadata(service, traceID, spanID,
		WithFlags(flags),
		WithSampled(sampled),
	)
}

func isLowerHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

type traceMetadataWire struct {
	Service         string    `json:"service"`
	TraceID         string    `json:"traceId"`
	SpanID          string    `json:"spanId"`
	ParentSpanID    string    `json:"parentSpanId,omitempty"`
	Sampled         *int      `json:"sampled,omitempty"`
	Flags           *int      `json:"flags,omitempty"`
	StartTimestamp  Timestamp `json:"startTimestamp"`
	FinishTimestamp string    `json:"finishTimestamp,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (t EventTraceMetadata) MarshalJSON() ([]byte, error) {
	return marshalWire(traceMetadataWire{
		Service:         t.service,
		TraceID:         t.traceID,
		SpanID:          t.spanID,
		ParentSpanID:    t.parentSpanID,
		Sampled:         t.sampled,
		Flags:           t.flags,
		StartTimestamp:  t.startTimestamp,
		FinishTimestamp: t.finishTimestamp.String(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. Identifiers go through the
// same validation as NewTraceMetadata.
func (t *EventTraceMetadata) UnmarshalJSON(data []byte) error {
	var w traceMetadataWire
	if err := unmarshalWire(data, &w); err != nil {
		return err
	}

	opts := []TraceOption{WithStartTimestamp(w.StartTimestamp)}
	if w.ParentSpanID != "" {
		opts = append(opts, WithParentSpanID(w.ParentSpanID))
	}
	if w.Sampled != nil {
		opts = append(opts, WithSampled(*w.Sampled))
	}
	if w.Flags != nil {
		opts = append(opts, WithFlags(*w.Flags))
	}

	decoded, err := NewTraceMetadata(w.Service, w.TraceID, w.SpanID, opts...)
	if err != nil {
		return err
	}
	if w.FinishTimestamp != "" {
		finish, err := ParseTimestamp(w.FinishTimestamp)
		if err != nil {
			return err
		}
		decoded.finishTimestamp = finish
	}

	*t = *decoded
	return nil
}
