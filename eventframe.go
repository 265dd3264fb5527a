package eventframe

import (
	errspkg "github.com/fluxrelay/eventframe/internal/errors"
	idspkg "github.com/fluxrelay/eventframe/internal/ids"
	"github.com/fluxrelay/eventframe/internal/jsoncodec"
	loggingpkg "github.com/fluxrelay/eventframe/internal/logging"
	"github.com/fluxrelay/eventframe/internal/model"
)

type (
	// Event classification
	EventType   = model.EventType
	LogAction   = model.LogAction
	AuditAction = model.AuditAction
	ErrorAction = model.ErrorAction
	TraceAction = model.TraceAction

	// Type/action variants
	TypeAction          = model.TypeAction
	LogTypeAction       = model.LogTypeAction
	AuditTypeAction     = model.AuditTypeAction
	ErrorTypeAction     = model.ErrorTypeAction
	TraceTypeAction     = model.TraceTypeAction
	UndefinedTypeAction = model.UndefinedTypeAction

	// Metadata records
	Timestamp          = model.Timestamp
	EventStatus        = model.EventStatus
	EventStateMetadata = model.EventStateMetadata
	StateOption        = model.StateOption
	EventMetadata      = model.EventMetadata
	EventOption        = model.EventOption
	EventTraceMetadata = model.EventTraceMetadata
	TraceOption        = model.TraceOption

	// Envelope
	MessageMetadata   = model.MessageMetadata
	EventMessage      = model.EventMessage
	LogResponse       = model.LogResponse
	LogResponseStatus = model.LogResponseStatus

	// Identifier generation
	IDSource     = idspkg.Source
	CryptoSource = idspkg.CryptoSource
)

const (
	EventTypeUndefined = model.EventTypeUndefined
	EventTypeLog       = model.EventTypeLog
	EventTypeAudit     = model.EventTypeAudit
	EventTypeError     = model.EventTypeError
	EventTypeTrace     = model.EventTypeTrace

	ActionUndefined = model.ActionUndefined

	LogActionInfo      = model.LogActionInfo
	LogActionDebug     = model.LogActionDebug
	LogActionVerbose   = model.LogActionVerbose
	LogActionPerf      = model.LogActionPerf
	LogActionUndefined = model.LogActionUndefined

	AuditActionDefault   = model.AuditActionDefault
	AuditActionUndefined = model.AuditActionUndefined

	ErrorActionInternal  = model.ErrorActionInternal
	ErrorActionExternal  = model.ErrorActionExternal
	ErrorActionUndefined = model.ErrorActionUndefined

	TraceActionSpan      = model.TraceActionSpan
	TraceActionUndefined = model.TraceActionUndefined

	EventStatusSuccess = model.EventStatusSuccess
	EventStatusFailed  = model.EventStatusFailed

	LogResponseStatusUndefined = model.LogResponseStatusUndefined
	LogResponseStatusPending   = model.LogResponseStatusPending
	LogResponseStatusAccepted  = model.LogResponseStatusAccepted
	LogResponseStatusError     = model.LogResponseStatusError

	TimestampFormat = model.TimestampFormat
)

var (
	// Type/action constructors
	NewTypeAction      = model.NewTypeAction
	NewLogTypeAction   = model.NewLogTypeAction
	NewAuditTypeAction = model.NewAuditTypeAction
	NewErrorTypeAction = model.NewErrorTypeAction
	NewTraceTypeAction = model.NewTraceTypeAction
	ActionsFor         = model.ActionsFor
	ParseEventType     = model.ParseEventType

	// Timestamps
	Now            = model.Now
	NewTimestamp   = model.NewTimestamp
	ParseTimestamp = model.ParseTimestamp

	// State metadata
	NewEventStateMetadata = model.NewEventStateMetadata
	SuccessState          = model.SuccessState
	FailedState           = model.FailedState
	WithCode              = model.WithCode
	WithDescription       = model.WithDescription
	ParseEventStatus      = model.ParseEventStatus

	// Event metadata factories
	NewEvent       = model.NewEvent
	NewLogEvent    = model.NewLogEvent
	NewAuditEvent  = model.NewAuditEvent
	NewErrorEvent  = model.NewErrorEvent
	NewTraceEvent  = model.NewTraceEvent
	WithResponseTo = model.WithResponseTo

	// Trace metadata
	NewTraceMetadata             = model.NewTraceMetadata
	StartTrace                   = model.StartTrace
	StartChildSpan               = model.StartChildSpan
	TraceMetadataFromSpanContext = model.TraceMetadataFromSpanContext
	ParseTraceparent             = model.ParseTraceparent
	WithParentSpanID             = model.WithParentSpanID
	WithSampled                  = model.WithSampled
	WithFlags                    = model.WithFlags
	WithStartTimestamp           = model.WithStartTimestamp

	// Envelope
	NewEventMessage       = model.NewEventMessage
	NewEventMessageWithID = model.NewEventMessageWithID
	NewMessageMetadata    = model.NewMessageMetadata
	NewLogResponse        = model.NewLogResponse

	// Identifier validation and generation
	IsValidTraceID  = idspkg.IsValidTraceID
	IsValidSpanID   = idspkg.IsValidSpanID
	NewTraceID      = idspkg.NewTraceID
	NewSpanID       = idspkg.NewSpanID
	NewEventID      = idspkg.NewEventID
	NewMessageID    = idspkg.NewMessageID
	DefaultIDSource = idspkg.Default
	SetIDSource     = idspkg.SetDefault

	// JSON codec
	Marshal       = jsoncodec.Marshal
	MarshalIndent = jsoncodec.MarshalIndent
	Unmarshal     = jsoncodec.Unmarshal
	Encode        = jsoncodec.Encode
	Decode        = jsoncodec.Decode

	// Structured logging bridge
	EventAttrs   = loggingpkg.EventAttrs
	TraceAttrs   = loggingpkg.TraceAttrs
	MessageAttrs = loggingpkg.MessageAttrs

	// Validation sentinels
	ErrInvalidTraceID      = errspkg.ErrInvalidTraceID
	ErrInvalidSpanID       = errspkg.ErrInvalidSpanID
	ErrInvalidParentSpanID = errspkg.ErrInvalidParentSpanID
	ErrServiceRequired     = errspkg.ErrServiceRequired
	ErrInvalidAction       = errspkg.ErrInvalidAction
	ErrInvalidEventType    = errspkg.ErrInvalidEventType
	ErrInvalidStatus       = errspkg.ErrInvalidStatus
	ErrInvalidTimestamp    = errspkg.ErrInvalidTimestamp
	ErrInvalidTraceparent  = errspkg.ErrInvalidTraceparent
)
