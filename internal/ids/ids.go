// Package ids generates and validates the identifiers used throughout
// eventframe: UUID event ids, ULID message ids, and the fixed-length
// hexadecimal trace and span ids defined by the W3C trace context format.
package ids

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Byte lengths of the binary trace context identifiers.
const (
	TraceIDByteLen = 16
	SpanIDByteLen  = 8
)

var (
	traceIDPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)
	spanIDPattern  = regexp.MustCompile(`^[0-9a-f]{16}$`)
)

// IsValidTraceID reports whether s is a 32-character lowercase hex string.
func IsValidTraceID(s string) bool {
	return traceIDPattern.MatchString(s)
}

// IsValidSpanID reports whether s is a 16-character lowercase hex string.
func IsValidSpanID(s string) bool {
	return spanIDPattern.MatchString(s)
}

// Source produces the identifiers needed to assemble events and traces.
// Production code uses CryptoSource; tests can install a deterministic
// implementation via SetDefault.
type Source interface {
	// EventID returns a unique identifier for an EventMetadata record.
	EventID() string

	// MessageID returns a unique identifier for an EventMessage envelope.
	MessageID() string

	// TraceID returns a fresh 32-character lowercase hex trace id.
	TraceID() string

	// SpanID returns a fresh 16-character lowercase hex span id.
	SpanID() string
}

// CryptoSource is the production Source. Event ids are random UUIDs,
// message ids are time-sortable ULIDs, and trace/span ids are read
// directly from the cryptographic random source so they stay
// unpredictable across trust boundaries.
type CryptoSource struct{}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

func (CryptoSource) EventID() string {
	return uuid.NewString()
}

func (CryptoSource) MessageID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return id.String()
}

func (CryptoSource) TraceID() string {
	return randomHex(TraceIDByteLen)
}

func (CryptoSource) SpanID() string {
	return randomHex(SpanIDByteLen)
}

func randomHex(n int) string {
	buf := make([]byte, n)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

var (
	defaultMu     sync.RWMutex
	defaultSource Source = CryptoSource{}
)

// Default returns the Source used by the package-level generator functions.
func Default() Source {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSource
}

// SetDefault replaces the default Source. Intended for tests that need
// deterministic identifiers; panics if src is nil.
func SetDefault(src Source) {
	if src == nil {
		panic("eventframe: id source cannot be nil")
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSource = src
}

// NewEventID returns a fresh event id from the default Source.
func NewEventID() string { return Default().EventID() }

// NewMessageID returns a fresh message id from the default Source.
func NewMessageID() string { return Default().MessageID() }

// NewTraceID returns a fresh trace id from the default Source. The result
// always satisfies IsValidTraceID.
func NewTraceID() string { return Default().TraceID() }

// NewSpanID returns a fresh span id from the default Source. The result
// always satisfies IsValidSpanID.
func NewSpanID() string { return Default().SpanID() }
