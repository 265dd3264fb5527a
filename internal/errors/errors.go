package errors

import sterrors "errors"

var (
	ErrInvalidTraceID      = sterrors.New("eventframe: trace id must be 32 lowercase hex characters")
	ErrInvalidSpanID       = sterrors.New("eventframe: span id must be 16 lowercase hex characters")
	ErrInvalidParentSpanID = sterrors.New("eventframe: parent span id must be 16 lowercase hex characters")
	ErrServiceRequired     = sterrors.New("eventframe: trace metadata service is required")
	ErrInvalidAction       = sterrors.New("eventframe: action is not valid for event type")
	ErrInvalidEventType    = sterrors.New("eventframe: unknown event type")
	ErrInvalidStatus       = sterrors.New("eventframe: unknown event status")
	ErrInvalidTimestamp    = sterrors.New("eventframe: timestamp is not a valid ISO-8601 value")
	ErrInvalidTraceparent  = sterrors.New("eventframe: malformed traceparent header")
)
