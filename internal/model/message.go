package model

import (
	"github.com/fluxrelay/eventframe/internal/ids"
)

// MessageMetadata pairs the event description with its trace context.
// Both halves are owned exclusively by the envelope that carries them.
type MessageMetadata struct {
	Event EventMetadata      `json:"event"`
	Trace EventTraceMetadata `json:"trace"`
}

// NewMessageMetadata assembles message metadata from an event and its
// trace context.
func NewMessageMetadata(event EventMetadata, traceMeta EventTraceMetadata) MessageMetadata {
	return MessageMetadata{Event: event, Trace: traceMeta}
}

// EventMessage is the outer envelope exchanged between services. Content
// is opaque to this module; no schema is inferred or enforced. Routing
// fields and metadata are attached by the caller after construction and
// validated only by the metadata types themselves.
type EventMessage struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Content  any              `json:"content"`
	From     string           `json:"from,omitempty"`
	To       string           `json:"to,omitempty"`
	PP       string           `json:"pp,omitempty"`
	Metadata *MessageMetadata `json:"metadata,omitempty"`
}

// NewEventMessage creates an envelope with a fresh message id.
func NewEventMessage(msgType string, content any) EventMessage {
	return EventMessage{
		ID:      ids.NewMessageID(),
		Type:    msgType,
		Content: content,
	}
}

// NewEventMessageWithID creates an envelope with a caller-supplied id.
func NewEventMessageWithID(id, msgType string, content any) EventMessage {
	msg := NewEventMessage(msgType, content)
	msg.ID = id
	return msg
}

// WithMetadata attaches message metadata and returns the envelope.
func (m EventMessage) WithMetadata(md MessageMetadata) EventMessage {
	m.Metadata = &md
	return m
}

// WithFrom sets the sender routing field and returns the envelope.
func (m EventMessage) WithFrom(from string) EventMessage {
	m.From = from
	return m
}

// WithTo sets the recipient routing field and returns the envelope.
func (m EventMessage) WithTo(to string) EventMessage {
	m.To = to
	return m
}

// WithPP sets the proxy/pass-through routing field and returns the envelope.
func (m EventMessage) WithPP(pp string) EventMessage {
	m.PP = pp
	return m
}

// LogResponseStatus is the acknowledgement state reported back by a
// telemetry sink.
type LogResponseStatus string

const (
	LogResponseStatusUndefined LogResponseStatus = "undefined"
	LogResponseStatusPending   LogResponseStatus = "pending"
	LogResponseStatusAccepted  LogResponseStatus = "accepted"
	LogResponseStatusError     LogResponseStatus = "error"
)

// LogResponse is a bare acknowledgement marker produced by the response
// channel. It carries no behavior.
type LogResponse struct {
	Status LogResponseStatus `json:"status"`
}

// NewLogResponse wraps a status in a LogResponse.
func NewLogResponse(status LogResponseStatus) LogResponse {
	return LogResponse{Status: status}
}
