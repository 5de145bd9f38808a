package firstfit

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Arena partitions a fixed capacity into an ordered sequence of segments.
// Not goroutine-safe; use SafeArena for concurrent access.
type Arena struct {
	capacity int
	segments []Segment // physical order, left to right

	log      *zap.Logger
	observer Observer
	stats    counters
}

// counters are lifetime event totals reported by Metrics.
type counters struct {
	ticks    uint64
	placed   uint64
	rejected uint64
	departed uint64
}

// NewArena creates an Arena of the given capacity, starting as a single free
// segment spanning the whole of it.
func NewArena(capacity int, opts ...Option) (*Arena, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Arena{
		capacity: capacity,
		segments: []Segment{Free{Length: capacity}},
		log:      o.log,
		observer: o.observer,
	}, nil
}

// MustNewArena is like NewArena but panics on an invalid capacity.
func MustNewArena(capacity int, opts ...Option) *Arena {
	a, err := NewArena(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Tick advances time by one unit. Every tenant ages by one tick at once;
// tenants reaching zero depart, and each run of adjacent free segments is
// then merged into one.
func (a *Arena) Tick() {
	a.stats.ticks++

	off := 0
	for i, seg := range a.segments {
		if occ, ok := seg.(Occupied); ok {
			t := occ.Tenant
			if t.Remaining > 0 {
				t.Remaining--
			}
			if t.Remaining == 0 {
				a.segments[i] = Free{Length: t.Length}
				a.departed(t, off)
			} else {
				a.segments[i] = Occupied{Tenant: t}
			}
		}
		off += seg.Len()
	}

	a.segments = coalesce(a.segments)
}

func (a *Arena) departed(t Tenant, off int) {
	a.stats.departed++
	a.log.Debug("tenant departed",
		zap.String("tenant", t.ID),
		zap.Int("length", t.Length),
		zap.Int("offset", off))
	a.observer.Departed(t, off)
}

// coalesce returns a new sequence in which every maximal run of free
// segments in segs is replaced by a single free segment.
func coalesce(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, seg := range segs {
		if f, ok := seg.(Free); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(Free); ok {
				out[len(out)-1] = Free{Length: prev.Length + f.Length}
				continue
			}
		}
		out = append(out, seg)
	}
	return out
}

// Reset drops every tenant without notifying the observer and restores the
// arena to a single free segment. Lifetime counters are kept.
func (a *Arena) Reset() {
	a.segments = []Segment{Free{Length: a.capacity}}
}

// Segments returns a copy of the segment sequence in physical order.
func (a *Arena) Segments() []Segment {
	out := make([]Segment, len(a.segments))
	copy(out, a.segments)
	return out
}

// Validate checks the partition invariants: lengths are positive and sum to
// the capacity, and no two adjacent segments are both free.
func (a *Arena) Validate() error {
	sum := 0
	for i, seg := range a.segments {
		if seg.Len() <= 0 {
			return fmt.Errorf("%w: segment %d has length %d", ErrCorrupt, i, seg.Len())
		}
		if i > 0 && isFree(seg) && isFree(a.segments[i-1]) {
			return fmt.Errorf("%w: segments %d and %d are both free", ErrCorrupt, i-1, i)
		}
		sum += seg.Len()
	}
	if sum != a.capacity {
		return fmt.Errorf("%w: lengths sum to %d, capacity is %d", ErrCorrupt, sum, a.capacity)
	}
	return nil
}

// String renders the arena as Arena(Segment(...), ...).
func (a *Arena) String() string {
	var b strings.Builder
	b.WriteString("Arena(")
	for i, seg := range a.segments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(seg.String())
	}
	b.WriteString(")")
	return b.String()
}
