package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errspkg "github.com/fluxrelay/eventframe/internal/errors"
)

func TestTypedConstructorsAcceptOwnActions(t *testing.T) {
	tests := []struct {
		name string
		make func() (TypeAction, error)
		typ  EventType
		act  string
	}{
		{"log info", func() (TypeAction, error) { return NewLogTypeAction(LogActionInfo) }, EventTypeLog, "info"},
		{"log debug", func() (TypeAction, error) { return NewLogTypeAction(LogActionDebug) }, EventTypeLog, "debug"},
		{"log verbose", func() (TypeAction, error) { return NewLogTypeAction(LogActionVerbose) }, EventTypeLog, "verbose"},
		{"log perf", func() (TypeAction, error) { return NewLogTypeAction(LogActionPerf) }, EventTypeLog, "perf"},
		{"log undefined", func() (TypeAction, error) { return NewLogTypeAction(LogActionUndefined) }, EventTypeLog, "undefined"},
		{"audit default", func() (TypeAction, error) { return NewAuditTypeAction(AuditActionDefault) }, EventTypeAudit, "default"},
		{"audit undefined", func() (TypeAction, error) { return NewAuditTypeAction(AuditActionUndefined) }, EventTypeAudit, "undefined"},
		{"error internal", func() (TypeAction, error) { return NewErrorTypeAction(ErrorActionInternal) }, EventTypeError, "internal"},
		{"error external", func() (TypeAction, error) { return NewErrorTypeAction(ErrorActionExternal) }, EventTypeError, "external"},
		{"error undefined", func() (TypeAction, error) { return NewErrorTypeAction(ErrorActionUndefined) }, EventTypeError, "undefined"},
		{"trace span", func() (TypeAction, error) { return NewTraceTypeAction(TraceActionSpan) }, EventTypeTrace, "span"},
		{"trace undefined", func() (TypeAction, error) { return NewTraceTypeAction(TraceActionUndefined) }, EventTypeTrace, "undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta, err := tt.make()
			require.NoError(t, err)
			assert.Equal(t, tt.typ, ta.Type())
			assert.Equal(t, tt.act, ta.Action())
		})
	}
}

func TestTypedConstructorsRejectForgedActions(t *testing.T) {
	// String conversion can smuggle foreign values into an action enum;
	// the membership check still rejects them.
	_, err := NewLogTypeAction(LogAction("default"))
	assert.ErrorIs(t, err, errspkg.ErrInvalidAction)

	_, err = NewAuditTypeAction(AuditAction("debug"))
	assert.ErrorIs(t, err, errspkg.ErrInvalidAction)

	_, err = NewErrorTypeAction(ErrorAction("span"))
	assert.ErrorIs(t, err, errspkg.ErrInvalidAction)

	_, err = NewTraceTypeAction(TraceAction("info"))
	assert.ErrorIs(t, err, errspkg.ErrInvalidAction)
}

func TestTypedConstructorsNormalizeEmptyAction(t *testing.T) {
	ta, err := NewLogTypeAction("")
	require.NoError(t, err)
	assert.Equal(t, ActionUndefined, ta.Action())
}

func TestNewTypeActionFullTable(t *testing.T) {
	for _, typ := range []EventType{EventTypeLog, EventTypeAudit, EventTypeError, EventTypeTrace} {
		for _, action := range ActionsFor(typ) {
			ta, err := NewTypeAction(typ, action)
			require.NoError(t, err, "type %s action %s", typ, action)
			assert.Equal(t, typ, ta.Type())
			assert.Equal(t, action, ta.Action())
		}

		// The universal fallback is legal for every type.
		ta, err := NewTypeAction(typ, ActionUndefined)
		require.NoError(t, err)
		assert.Equal(t, ActionUndefined, ta.Action())
	}
}

func TestNewTypeActionRejectsCrossTypeActions(t *testing.T) {
	types := []EventType{EventTypeLog, EventTypeAudit, EventTypeError, EventTypeTrace}
	for _, typ := range types {
		legal := map[string]bool{ActionUndefined: true}
		for _, a := range ActionsFor(typ) {
			legal[a] = true
		}
		for _, other := range types {
			for _, action := range ActionsFor(other) {
				if legal[action] {
					continue
				}
				_, err := NewTypeAction(typ, action)
				assert.ErrorIs(t, err, errspkg.ErrInvalidAction, "type %s should reject action %s", typ, action)
			}
		}
	}
}

func TestNewTypeActionRejectsUnknownAction(t *testing.T) {
	_, err := NewTypeAction(EventTypeLog, "bogus")
	assert.ErrorIs(t, err, errspkg.ErrInvalidAction)
}

func TestNewTypeActionRejectsUnknownType(t *testing.T) {
	_, err := NewTypeAction(EventType("metric"), "info")
	assert.ErrorIs(t, err, errspkg.ErrInvalidEventType)
}

func TestNewTypeActionUndefinedType(t *testing.T) {
	ta, err := NewTypeAction(EventTypeUndefined, "")
	require.NoError(t, err)
	assert.Equal(t, EventTypeUndefined, ta.Type())
	assert.Equal(t, ActionUndefined, ta.Action())

	_, err = NewTypeAction(EventTypeUndefined, "info")
	assert.ErrorIs(t, err, errspkg.ErrInvalidAction)
}

func TestParseEventType(t *testing.T) {
	for _, s := range []string{"undefined", "log", "audit", "error", "trace"} {
		typ, err := ParseEventType(s)
		require.NoError(t, err)
		assert.Equal(t, EventType(s), typ)
	}

	_, err := ParseEventType("metric")
	assert.ErrorIs(t, err, errspkg.ErrInvalidEventType)
}

func TestActionsForUnknownType(t *testing.T) {
	assert.Nil(t, ActionsFor(EventType("metric")))
	assert.Empty(t, ActionsFor(EventTypeUndefined))
}
