package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	errspkg "github.com/fluxrelay/eventframe/internal/errors"
	"github.com/fluxrelay/eventframe/internal/jsoncodec"
)

const (
	testTraceID  = "4bf92f3577b34da6a3ce929d0e0e4736"
	testSpanID   = "00f067aa0ba902b7"
	testParentID = "53995c3f42cd8ad8"
)

func TestNewTraceMetadata(t *testing.T) {
	tm, err := NewTraceMetadata("svc-a", testTraceID, testSpanID)
	require.NoError(t, err)

	assert.Equal(t, "svc-a", tm.Service())
	assert.Equal(t, testTraceID, tm.TraceID())
	assert.Equal(t, testSpanID, tm.SpanID())
	assert.Empty(t, tm.ParentSpanID())
	assert.False(t, tm.Finished())

	_, hasSampled := tm.Sampled()
	assert.False(t, hasSampled)
}

func TestNewTraceMetadataStartDefaultsToNow(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Millisecond)
	tm, err := NewTraceMetadata("svc-a", testTraceID, testSpanID)
	require.NoError(t, err)
	after := time.Now().UTC().Add(time.Millisecond)

	start := tm.StartTimestamp().Time()
	assert.False(t, start.Before(before))
	assert.False(t, start.After(after))
}

func TestNewTraceMetadataExplicitStart(t *testing.T) {
	start := NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	tm, err := NewTraceMetadata("svc-a", testTraceID, testSpanID, WithStartTimestamp(start))
	require.NoError(t, err)
	assert.True(t, tm.StartTimestamp().Equal(start))
}

func TestNewTraceMetadataValidation(t *testing.T) {
	tests := []struct {
		name    string
		service string
		traceID string
		spanID  string
		opts    []TraceOption
		wantErr error
	}{
		{"empty service", "", testTraceID, testSpanID, nil, errspkg.ErrServiceRequired},
		{"bad trace id", "svc", "zz" + strings.Repeat("0", 30), testSpanID, nil, errspkg.ErrInvalidTraceID},
		{"short trace id", "svc", testTraceID[:31], testSpanID, nil, errspkg.ErrInvalidTraceID},
		{"long trace id", "svc", testTraceID + "0", testSpanID, nil, errspkg.ErrInvalidTraceID},
		{"bad span id", "svc", testTraceID, "not-hex!", nil, errspkg.ErrInvalidSpanID},
		{"short span id", "svc", testTraceID, testSpanID[:15], nil, errspkg.ErrInvalidSpanID},
		{"bad parent", "svc", testTraceID, testSpanID, []TraceOption{WithParentSpanID("xyz")}, errspkg.ErrInvalidParentSpanID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := NewTraceMetadata(tt.service, tt.traceID, tt.spanID, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, tm)
		})
	}
}

func TestStartTraceGeneratesValidIDs(t *testing.T) {
	tm, err := StartTrace("svc-a")
	require.NoError(t, err)
	assert.Len(t, tm.TraceID(), 32)
	assert.Len(t, tm.SpanID(), 16)
	assert.Empty(t, tm.ParentSpanID())
}

func TestStartChildSpan(t *testing.T) {
	parent, err := StartTrace("svc-a")
	require.NoError(t, err)

	child, err := StartChildSpan(parent)
	require.NoError(t, err)

	assert.Equal(t, parent.TraceID(), child.TraceID())
	assert.Equal(t, parent.SpanID(), child.ParentSpanID())
	assert.NotEqual(t, parent.SpanID(), child.SpanID())
	assert.Equal(t, "svc-a", child.Service())
}

func TestFinishDefaultsToNow(t *testing.T) {
	tm, err := NewTraceMetadata("svc-a", testTraceID, testSpanID)
	require.NoError(t, err)

	before := time.Now().UTC().Truncate(time.Millisecond)
	tm.Finish()
	after := time.Now().UTC().Add(time.Millisecond)

	finish, ok := tm.FinishTimestamp()
	require.True(t, ok)
	assert.False(t, finish.Time().Before(before))
	assert.False(t, finish.Time().After(after))
	assert.True(t, tm.Finished())
}

func TestFinishAtExact(t *testing.T) {
	tm, err := NewTraceMetadata("svc-a", testTraceID, testSpanID)
	require.NoError(t, err)

	at := NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	tm.FinishAt(at)

	finish, ok := tm.FinishTimestamp()
	require.True(t, ok)
	assert.True(t, finish.Equal(at))
	assert.Equal(t, "2024-01-01T00:00:00.000Z", finish.String())
}

func TestFinishOverwrites(t *testing.T) {
	tm, err := NewTraceMetadata("svc-a", testTraceID, testSpanID)
	require.NoError(t, err)

	first := NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	second := NewTimestamp(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	tm.FinishAt(first)
	tm.FinishAt(second)

	finish, ok := tm.FinishTimestamp()
	require.True(t, ok)
	assert.True(t, finish.Equal(second))
}

func TestSpanContextConversion(t *testing.T) {
	tm, err := NewTraceMetadata("svc-a", testTraceID, testSpanID, WithSampled(1))
	require.NoError(t, err)

	sc, err := tm.SpanContext()
	require.NoError(t, err)

	assert.Equal(t, testTraceID, sc.TraceID().String())
	assert.Equal(t, testSpanID, sc.SpanID().String())
	assert.True(t, sc.IsSampled())
	assert.True(t, sc.IsRemote())
}

func TestSpanContextRejectsZeroIDs(t *testing.T) {
	// The model accepts all-zero ids; OpenTelemetry does not.
	tm, err := NewTraceMetadata("svc-a", strings.Repeat("0", 32), testSpanID)
	require.NoError(t, err)

	_, err = tm.SpanContext()
	assert.ErrorIs(t, err, errspkg.ErrInvalidTraceID)
}

func TestTraceMetadataFromSpanContext(t *testing.T) {
	tid, err := trace.TraceIDFromHex(testTraceID)
	require.NoError(t, err)
	sid, err := trace.SpanIDFromHex(testSpanID)
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    tid,
		SpanID:     sid,
		TraceFlags: trace.FlagsSampled,
	})

	tm, err := TraceMetadataFromSpanContext("svc-b", sc)
	require.NoError(t, err)

	assert.Equal(t, "svc-b", tm.Service())
	assert.Equal(t, testTraceID, tm.TraceID())
	assert.Equal(t, testSpanID, tm.SpanID())

	sampled, ok := tm.Sampled()
	require.True(t, ok)
	assert.Equal(t, 1, sampled)
}

func TestTraceparentRoundTrip(t *testing.T) {
	tm, err := NewTraceMetadata("svc-a", testTraceID, testSpanID, WithSampled(1))
	require.NoError(t, err)

	header := tm.Traceparent()
	assert.Equal(t, "00-"+testTraceID+"-"+testSpanID+"-01", header)

	parsed, err := ParseTraceparent("svc-b", header)
	require.NoError(t, err)
	assert.Equal(t, testTraceID, parsed.TraceID())
	assert.Equal(t, testSpanID, parsed.SpanID())

	sampled, ok := parsed.Sampled()
	require.True(t, ok)
	assert.Equal(t, 1, sampled)
}

func TestParseTraceparentRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"00-" + testTraceID + "-" + testSpanID,
		"ff-" + testTraceID + "-" + testSpanID + "-01",
		"00-short-" + testSpanID + "-01",
		"00-" + testTraceID + "-" + testSpanID + "-zz",
	}

	for _, header := range cases {
		_, err := ParseTraceparent("svc", header)
		assert.Error(t, err, "header %q", header)
	}
}

func TestTraceMetadataJSONRoundTrip(t *testing.T) {
	start := NewTimestamp(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	in, err := NewTraceMetadata("svc-a", testTraceID, testSpanID,
		WithParentSpanID(testParentID),
		WithSampled(1),
		WithFlags(1),
		WithStartTimestamp(start),
	)
	require.NoError(t, err)
	in.FinishAt(NewTimestamp(time.Date(2024, 5, 1, 9, 0, 1, 0, time.UTC)))

	data, err := jsoncodec.Marshal(in)
	require.NoError(t, err)

	var out EventTraceMetadata
	require.NoError(t, jsoncodec.Unmarshal(data, &out))

	assert.Equal(t, in.Service(), out.Service())
	assert.Equal(t, in.TraceID(), out.TraceID())
	assert.Equal(t, in.SpanID(), out.SpanID())
	assert.Equal(t, in.ParentSpanID(), out.ParentSpanID())
	assert.True(t, out.StartTimestamp().Equal(start))

	finish, ok := out.FinishTimestamp()
	require.True(t, ok)
	assert.Equal(t, "2024-05-01T09:00:01.000Z", finish.String())

	sampled, ok := out.Sampled()
	require.True(t, ok)
	assert.Equal(t, 1, sampled)
}

func TestTraceMetadataUnmarshalValidatesIDs(t *testing.T) {
	payload := `{"service":"svc","traceId":"nope","spanId":"` + testSpanID + `","startTimestamp":"2024-01-01T00:00:00.000Z"}`

	var out EventTraceMetadata
	err := jsoncodec.Unmarshal([]byte(payload), &out)
	require.Error(t, err)
	assert.ErrorContains(t, err, "trace id must be 32 lowercase hex characters")
}
