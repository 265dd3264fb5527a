package model

import (
	"fmt"

	errspkg "github.com/fluxrelay/eventframe/internal/errors"
)

// EventStatus describes the outcome an event reports.
type EventStatus string

const (
	EventStatusSuccess EventStatus = "success"
	EventStatusFailed  EventStatus = "failed"
)

// ParseEventStatus validates a raw status string.
func ParseEventStatus(s string) (EventStatus, error) {
	switch EventStatus(s) {
	case EventStatusSuccess, EventStatusFailed:
		return EventStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", errspkg.ErrInvalidStatus, s)
	}
}

// EventStateMetadata records the outcome of the operation an event
// describes. Immutable after construction.
type EventStateMetadata struct {
	status      EventStatus
	code        *int64
	description string
}

// StateOption customises optional EventStateMetadata fields.
type StateOption func(*EventStateMetadata)

// WithCode attaches a numeric outcome code.
func WithCode(code int64) StateOption {
	return func(s *EventStateMetadata) {
		c := code
		s.code = &c
	}
}

// WithDescription attaches a human-readable outcome description.
func WithDescription(description string) StateOption {
	return func(s *EventStateMetadata) {
		s.description = description
	}
}

// NewEventStateMetadata builds state metadata for the given status.
func NewEventStateMetadata(status EventStatus, opts ...StateOption) (EventStateMetadata, error) {
	if _, err := ParseEventStatus(string(status)); err != nil {
		return EventStateMetadata{}, err
	}
	state := EventStateMetadata{status: status}
	for _, opt := range opts {
		opt(&state)
	}
	return state, nil
}

// SuccessState returns state metadata reporting success with no code or
// description.
func SuccessState() EventStateMetadata {
	return EventStateMetadata{status: EventStatusSuccess}
}

// FailedState returns state metadata reporting failure with the given
// code and description.
func FailedState(code int64, description string) EventStateMetadata {
	c := code
	return EventStateMetadata{status: EventStatusFailed, code: &c, description: description}
}

// Status returns the recorded outcome.
func (s EventStateMetadata) Status() EventStatus {
	return s.status
}

// Code returns the numeric outcome code and whether one was set.
func (s EventStateMetadata) Code() (int64, bool) {
	if s.code == nil {
		return 0, false
	}
	return *s.code, true
}

// Description returns the outcome description, empty if unset.
func (s EventStateMetadata) Description() string {
	return s.description
}

type stateMetadataWire struct {
	Status      string `json:"status"`
	Code        *int64 `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (s EventStateMetadata) MarshalJSON() ([]byte, error) {
	return marshalWire(stateMetadataWire{
		Status:      string(s.status),
		Code:        s.code,
		Description: s.description,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The status value is
// validated so decoded data cannot carry an unknown outcome.
func (s *EventStateMetadata) UnmarshalJSON(data []byte) error {
	var w stateMetadataWire
	if err := unmarshalWire(data, &w); err != nil {
		return err
	}
	status, err := ParseEventStatus(w.Status)
	if err != nil {
		return err
	}
	s.status = status
	s.code = w.Code
	s.description = w.Description
	return nil
}
