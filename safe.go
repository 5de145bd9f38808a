package firstfit

import (
	"math/big"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// The lock is held for the whole of each call, so the partition invariants
// hold whenever another goroutine can observe the arena.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena of the given capacity.
func NewSafeArena(capacity int, opts ...Option) (*SafeArena, error) {
	a, err := NewArena(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// Place thread-safely admits t following the first-fit policy.
func (s *SafeArena) Place(t Tenant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Place(t)
}

// Fits thread-safely reports whether a tenant of the given length would be placed.
func (s *SafeArena) Fits(length int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Fits(length)
}

// Tick thread-safely advances time by one unit.
func (s *SafeArena) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Tick()
}

// Reset thread-safely drops every tenant.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Segments thread-safely returns a copy of the segment sequence.
func (s *SafeArena) Segments() []Segment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Segments()
}

// Validate thread-safely checks the partition invariants.
func (s *SafeArena) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Validate()
}

// String thread-safely renders the arena.
func (s *SafeArena) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.String()
}

// Thread-safe metrics for SafeArena

// Utilisation thread-safely returns the share of capacity held by tenants.
func (s *SafeArena) Utilisation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilisation()
}

// UtilisationRat thread-safely returns Utilisation as an exact rational.
func (s *SafeArena) UtilisationRat() *big.Rat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.UtilisationRat()
}

// Capacity returns the fixed length managed by the arena.
func (s *SafeArena) Capacity() int {
	// capacity never changes after construction.
	return s.a.capacity
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
