package model

import (
	"github.com/fluxrelay/eventframe/internal/ids"
)

// EventMetadata describes one telemetry event: its identity, its place
// in the type/action table, when it was created, and the outcome it
// reports. Type and action are fixed at construction from a TypeAction
// and cannot be changed afterwards.
type EventMetadata struct {
	id         string
	eventType  EventType
	action     string
	createdAt  Timestamp
	state      EventStateMetadata
	responseTo string
}

// EventOption customises optional EventMetadata fields.
type EventOption func(*EventMetadata)

// WithResponseTo marks the event as an answer to a prior event.
func WithResponseTo(id string) EventOption {
	return func(m *EventMetadata) {
		m.responseTo = id
	}
}

// NewEvent builds event metadata from any TypeAction variant. An empty
// id gets a fresh one from the default id source; a zero createdAt is
// set to the current time; a nil TypeAction yields the undefined pair.
func NewEvent(id string, ta TypeAction, createdAt Timestamp, state EventStateMetadata, opts ...EventOption) EventMetadata {
	if id == "" {
		id = ids.NewEventID()
	}
	if createdAt.IsZero() {
		createdAt = Now()
	}
	if ta == nil {
		ta = UndefinedTypeAction{}
	}

	m := EventMetadata{
		id:        id,
		eventType: ta.Type(),
		action:    ta.Action(),
		createdAt: createdAt,
		state:     state,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewLogEvent builds metadata for a log event. The action must belong
// to the log action set.
func NewLogEvent(id string, action LogAction, createdAt Timestamp, state EventStateMetadata, opts ...EventOption) (EventMetadata, error) {
	ta, err := NewLogTypeAction(action)
	if err != nil {
		return EventMetadata{}, err
	}
	return NewEvent(id, ta, createdAt, state, opts...), nil
}

// NewAuditEvent builds metadata for an audit event.
func NewAuditEvent(id string, action AuditAction, createdAt Timestamp, state EventStateMetadata, opts ...EventOption) (EventMetadata, error) {
	ta, err := NewAuditTypeAction(action)
	if err != nil {
		return EventMetadata{}, err
	}
	return NewEvent(id, ta, createdAt, state, opts...), nil
}

// NewErrorEvent builds metadata for an error event.
func NewErrorEvent(id string, action ErrorAction, createdAt Timestamp, state EventStateMetadata, opts ...EventOption) (EventMetadata, error) {
	ta, err := NewErrorTypeAction(action)
	if err != nil {
		return EventMetadata{}, err
	}
	return NewEvent(id, ta, createdAt, state, opts...), nil
}

// NewTraceEvent builds metadata for a trace event.
func NewTraceEvent(id string, action TraceAction, createdAt Timestamp, state EventStateMetadata, opts ...EventOption) (EventMetadata, error) {
	ta, err := NewTraceTypeAction(action)
	if err != nil {
		return EventMetadata{}, err
	}
	return NewEvent(id, ta, createdAt, state, opts...), nil
}

// ID returns the event identifier.
func (m EventMetadata) ID() string { return m.id }

// Type returns the event type fixed at construction.
func (m EventMetadata) Type() EventType { return m.eventType }

// Action returns the action fixed at construction.
func (m EventMetadata) Action() string { return m.action }

// CreatedAt returns the creation timestamp.
func (m EventMetadata) CreatedAt() Timestamp { return m.createdAt }

// State returns the outcome metadata.
func (m EventMetadata) State() EventStateMetadata { return m.state }

// ResponseTo returns the id of the event this one answers, empty if the
// event is not a response.
func (m EventMetadata) ResponseTo() string { return m.responseTo }

type eventMetadataWire struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Action     string             `json:"action"`
	CreatedAt  Timestamp          `json:"createdAt"`
	State      EventStateMetadata `json:"state"`
	ResponseTo string             `json:"responseTo,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (m EventMetadata) MarshalJSON() ([]byte, error) {
	return marshalWire(eventMetadataWire{
		ID:         m.id,
		Type:       string(m.eventType),
		Action:     m.action,
		CreatedAt:  m.createdAt,
		State:      m.state,
		ResponseTo: m.responseTo,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The type/action pair is
// pushed back through the compatibility table so decoded metadata obeys
// the same invariant as constructed metadata.
func (m *EventMetadata) UnmarshalJSON(data []byte) error {
	var w eventMetadataWire
	if err := unmarshalWire(data, &w); err != nil {
		return err
	}
	t, err := ParseEventType(w.Type)
	if err != nil {
		return err
	}
	ta, err := NewTypeAction(t, w.Action)
	if err != nil {
		return err
	}

	m.id = w.ID
	m.eventType = ta.Type()
	m.action = ta.Action()
	m.createdAt = w.CreatedAt
	m.state = w.State
	m.responseTo = w.ResponseTo
	return nil
}
