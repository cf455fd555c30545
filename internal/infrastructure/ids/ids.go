// Package ids provides the identifier generators placed questions, sections
// and sessions are keyed by.
package ids

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/formsmith/internal/ports"
)

var defaultPrefixes = map[ports.IDKind]string{
	ports.IDKindQuestion: "p",
	ports.IDKindSection:  "s",
	ports.IDKindSession:  "session",
}

func prefixFor(prefixes map[ports.IDKind]string, kind ports.IDKind) string {
	if p, ok := prefixes[kind]; ok {
		return p
	}
	return string(kind)
}

// UUIDGenerator issues "<prefix>-<uuid>" identifiers backed by random UUIDv4
// values.
type UUIDGenerator struct {
	prefixes map[ports.IDKind]string
}

// NewUUIDGenerator returns a generator using the default prefixes.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{prefixes: defaultPrefixes}
}

// NewID implements ports.IDGenerator.
func (g *UUIDGenerator) NewID(kind ports.IDKind) string {
	return prefixFor(g.prefixes, kind) + "-" + uuid.NewString()
}

// SequenceGenerator issues "<prefix><n>" identifiers from a per-kind
// monotonic counter starting at 1. Recipes and tests use it for readable,
// deterministic ids.
type SequenceGenerator struct {
	mu       sync.Mutex
	prefixes map[ports.IDKind]string
	next     map[ports.IDKind]int
}

// NewSequenceGenerator returns a generator using the default prefixes.
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{
		prefixes: defaultPrefixes,
		next:     make(map[ports.IDKind]int),
	}
}

// NewID implements ports.IDGenerator.
func (g *SequenceGenerator) NewID(kind ports.IDKind) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next[kind]++
	return prefixFor(g.prefixes, kind) + strconv.Itoa(g.next[kind])
}

// Short trims a generated id for display: UUID-backed ids keep their prefix
// and the first eight hex digits, anything else is returned unchanged.
func Short(id string) string {
	i := strings.Index(id, "-")
	if i < 0 {
		return id
	}
	if _, err := uuid.Parse(id[i+1:]); err != nil {
		return id
	}
	return id[:i+1+8]
}

var (
	_ ports.IDGenerator = (*UUIDGenerator)(nil)
	_ ports.IDGenerator = (*SequenceGenerator)(nil)
)
