// Package model defines the telemetry event envelope exchanged between
// services: the closed set of event type/action pairs, event and trace
// metadata with their construction-time validation, and the EventMessage
// container. Transport, persistence, and log sinks are collaborators;
// nothing in this package performs I/O beyond reading the random source
// for identifier generation.
package model

import (
	"fmt"

	errspkg "github.com/fluxrelay/eventframe/internal/errors"
)

// EventType classifies a telemetry event at the top level.
type EventType string

const (
	EventTypeUndefined EventType = "undefined"
	EventTypeLog       EventType = "log"
	EventTypeAudit     EventType = "audit"
	EventTypeError     EventType = "error"
	EventTypeTrace     EventType = "trace"
)

// ActionUndefined is the universal fallback action, valid for every
// event type. Each per-type action enum carries its own constant with
// this value so typed call sites stay within their own enum.
const ActionUndefined = "undefined"

// LogAction is the action set of log events.
type LogAction string

const (
	LogActionInfo      LogAction = "info"
	LogActionDebug     LogAction = "debug"
	LogActionVerbose   LogAction = "verbose"
	LogActionPerf      LogAction = "perf"
	LogActionUndefined LogAction = ActionUndefined
)

// AuditAction is the action set of audit events.
type AuditAction string

const (
	AuditActionDefault   AuditAction = "default"
	AuditActionUndefined AuditAction = ActionUndefined
)

// ErrorAction is the action set of error events.
type ErrorAction string

const (
	ErrorActionInternal  ErrorAction = "internal"
	ErrorActionExternal  ErrorAction = "external"
	ErrorActionUndefined ErrorAction = ActionUndefined
)

// TraceAction is the action set of trace events.
type TraceAction string

const (
	TraceActionSpan      TraceAction = "span"
	TraceActionUndefined TraceAction = ActionUndefined
)

// TypeAction binds an event type to one of the actions legal for it.
// The set of implementations is closed: exactly one variant exists per
// event type, and each variant only accepts its own action enum, so a
// mismatched pair is a compile error at typed call sites. The dynamic
// entry point NewTypeAction covers untyped input and rejects pairs
// outside the table at construction time.
type TypeAction interface {
	// Type returns the fixed event type of this variant.
	Type() EventType

	// Action returns the bound action value.
	Action() string

	sealed()
}

// ActionsFor returns the legal action set for an event type, excluding
// the universal "undefined" fallback. Unknown types return nil.
func ActionsFor(t EventType) []string {
	switch t {
	case EventTypeLog:
		return []string{string(LogActionInfo), string(LogActionDebug), string(LogActionVerbose), string(LogActionPerf)}
	case EventTypeAudit:
		return []string{string(AuditActionDefault)}
	case EventTypeError:
		return []string{string(ErrorActionInternal), string(ErrorActionExternal)}
	case EventTypeTrace:
		return []string{string(TraceActionSpan)}
	case EventTypeUndefined:
		return []string{}
	default:
		return nil
	}
}

// ParseEventType validates a raw event type string.
func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventTypeUndefined, EventTypeLog, EventTypeAudit, EventTypeError, EventTypeTrace:
		return EventType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", errspkg.ErrInvalidEventType, s)
	}
}

// validateAction checks membership of action in t's legal set. The empty
// string and "undefined" are accepted for every type.
func validateAction(t EventType, action string) error {
	if action == "" || action == ActionUndefined {
		return nil
	}
	for _, legal := range ActionsFor(t) {
		if action == legal {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (type %q)", errspkg.ErrInvalidAction, action, t)
}

// normalizeAction maps the empty string to the undefined fallback.
func normalizeAction(action string) string {
	if action == "" {
		return ActionUndefined
	}
	return action
}

// LogTypeAction pairs the log event type with a LogAction.
type LogTypeAction struct {
	action LogAction
}

// NewLogTypeAction builds the log variant. The empty action normalizes
// to undefined. Values forged by string conversion outside the LogAction
// constants are rejected.
func NewLogTypeAction(action LogAction) (LogTypeAction, error) {
	if err := validateAction(EventTypeLog, string(action)); err != nil {
		return LogTypeAction{}, err
	}
	return LogTypeAction{action: LogAction(normalizeAction(string(action)))}, nil
}

func (LogTypeAction) Type() EventType { return EventTypeLog }

func (a LogTypeAction) Action() string { return string(a.action) }

func (LogTypeAction) sealed() {}

// AuditTypeAction pairs the audit event type with an AuditAction.
type AuditTypeAction struct {
	action AuditAction
}

// NewAuditTypeAction builds the audit variant.
func NewAuditTypeAction(action AuditAction) (AuditTypeAction, error) {
	if err := validateAction(EventTypeAudit, string(action)); err != nil {
		return AuditTypeAction{}, err
	}
	return AuditTypeAction{action: AuditAction(normalizeAction(string(action)))}, nil
}

func (AuditTypeAction) Type() EventType { return EventTypeAudit }

func (a AuditTypeAction) Action() string { return string(a.action) }

func (AuditTypeAction) sealed() {}

// ErrorTypeAction pairs the error event type with an ErrorAction.
type ErrorTypeAction struct {
	action ErrorAction
}

// NewErrorTypeAction builds the error variant.
func NewErrorTypeAction(action ErrorAction) (ErrorTypeAction, error) {
	if err := validateAction(EventTypeError, string(action)); err != nil {
		return ErrorTypeAction{}, err
	}
	return ErrorTypeAction{action: ErrorAction(normalizeAction(string(action)))}, nil
}

func (ErrorTypeAction) Type() EventType { return EventTypeError }

func (a ErrorTypeAction) Action() string { return string(a.action) }

func (ErrorTypeAction) sealed() {}

// TraceTypeAction pairs the trace event type with a TraceAction.
type TraceTypeAction struct {
	action TraceAction
}

// NewTraceTypeAction builds the trace variant.
func NewTraceTypeAction(action TraceAction) (TraceTypeAction, error) {
	if err := validateAction(EventTypeTrace, string(action)); err != nil {
		return TraceTypeAction{}, err
	}
	return TraceTypeAction{action: TraceAction(normalizeAction(string(action)))}, nil
}

func (TraceTypeAction) Type() EventType { return EventTypeTrace }

func (a TraceTypeAction) Action() string { return string(a.action) }

func (TraceTypeAction) sealed() {}

// UndefinedTypeAction is the variant for events with no classification.
// Its only legal action is the undefined fallback.
type UndefinedTypeAction struct{}

func (UndefinedTypeAction) Type() EventType { return EventTypeUndefined }

func (UndefinedTypeAction) Action() string { return ActionUndefined }

func (UndefinedTypeAction) sealed() {}

// NewTypeAction is the dynamic entry point into the compatibility table.
// It validates both the type and the type/action membership, returning
// the matching variant or a construction error. Typed callers should
// prefer the per-variant constructors.
func NewTypeAction(t EventType, action string) (TypeAction, error) {
	switch t {
	case EventTypeLog:
		return NewLogTypeAction(LogAction(action))
	case EventTypeAudit:
		return NewAuditTypeAction(AuditAction(action))
	case EventTypeError:
		return NewErrorTypeAction(ErrorAction(action))
	case EventTypeTrace:
		return NewTraceTypeAction(TraceAction(action))
	case EventTypeUndefined:
		if err := validateAction(EventTypeUndefined, action); err != nil {
			return nil, err
		}
		return UndefinedTypeAction{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errspkg.ErrInvalidEventType, t)
	}
}
