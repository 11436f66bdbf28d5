// Package idx generates request-correlation IDs for outbound supervisor
// calls. IDs are ULIDs: lexicographically sortable, with an embedded
// millisecond timestamp that makes the log lines of a single run easy to
// order and grep.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// Zero represents the zero value ID, don't use this unless its a placeholder.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	globalOnce sync.Once
	global     *generator
)

// generator is a tool to safely generate ULIDs concurrently using a monotonic
// source.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) New() ID {
	return g.NewAt(time.Now().UTC())
}

func (g *generator) NewAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := ulid.MustNew(ulid.Timestamp(t), g.entropy)
	return ID(u.String())
}

func initGlobal() {
	src := ulid.Monotonic(rand.Reader, 0) // Max Monotonic Window
	global = &generator{entropy: src}
}

// New returns a new lexicographically sortable ULID-based ID using the
// current time in UTC and a monotonic entropy source.
func New() ID {
	globalOnce.Do(initGlobal)
	return global.New()
}

// NewAt generates an ID at the provided time (UTC), useful for tests or
// for reproducing the ordering of a past run.
func NewAt(t time.Time) ID {
	globalOnce.Do(initGlobal)
	return global.NewAt(t)
}

// Parse parses a ULID string into an ID and validates its form.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}

	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}

	return ID(s), nil
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == Zero }

// String returns the canonical string form.
func (id ID) String() string { return string(id) }

// Time extracts the embedded UTC timestamp from the ID.
// If the ID is invalid or zero, it returns the zero time.
func (id ID) Time() time.Time {
	if id.IsZero() {
		return time.Time{}
	}

	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}

	// ULID time component is in ms since epoch.
	return ulid.Time(u.Time())
}
