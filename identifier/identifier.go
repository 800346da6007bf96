// identifier/identifier.go
/* Package identifier mints the identifiers written into MDM payloads. UUIDGenerator is the default;
Sequence yields predictable ids so tests can compare whole payload trees. */
package identifier

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique identifiers for payload UUIDs, group ids and PPPC row ids.
type Generator interface {
	NewID() string
}

// UUIDGenerator generates random (version 4) UUIDs. It is stateless and safe for concurrent use.
type UUIDGenerator struct{}

// NewID returns a new random UUID in its canonical string form.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Default is the Generator used when none is supplied.
var Default Generator = UUIDGenerator{}

// Sequence hands out predictable identifiers (prefix-1, prefix-2, ...) for tests.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence returns a Sequence whose identifiers start with prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}

// Issued reports how many identifiers have been handed out.
func (s *Sequence) Issued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
