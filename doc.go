// Package eventframe is a validated, strongly-typed envelope for the
// telemetry events (log, audit, error, trace) exchanged between services,
// together with the distributed-tracing metadata attached to each event.
//
// The core of the package is the type/action compatibility table: every
// event type admits a fixed, disjoint set of actions, and the pairing is
// enforced when an event is constructed rather than checked ad hoc at the
// consumers. Typed call sites use the per-type variants (LogTypeAction,
// AuditTypeAction, ErrorTypeAction, TraceTypeAction) and get the pairing
// checked by the compiler; dynamic input goes through NewTypeAction and is
// rejected at construction time.
//
// Trace context follows the W3C shape: a 32-character lowercase hex trace
// id and 16-character span ids, validated whenever trace metadata is built
// or decoded. EventTraceMetadata interoperates with OpenTelemetry span
// contexts and W3C traceparent headers, and records the span lifecycle
// through its start and finish timestamps.
//
// A typical producer builds the pieces bottom-up and wraps them into an
// EventMessage:
//
//	tm, err := eventframe.StartTrace("quoting-service")
//	if err != nil { ... }
//
//	evt, err := eventframe.NewAuditEvent("", eventframe.AuditActionDefault,
//		eventframe.Now(), eventframe.SuccessState())
//	if err != nil { ... }
//
//	msg := eventframe.NewEventMessage("application/json", payload).
//		WithFrom("quoting-service").
//		WithTo("central-logger").
//		WithMetadata(eventframe.NewMessageMetadata(evt, *tm))
//
// Transport, persistence, and log sinks are collaborators: the package
// defines only the in-memory shape, its validation, and the JSON form the
// collaborators consume. Nothing here performs I/O besides reading the
// cryptographic random source for identifier generation.
package eventframe
