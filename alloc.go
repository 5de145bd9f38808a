package firstfit

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Place admits t into the first free segment large enough to hold it.
// An exact fit replaces the free segment; a larger one is split into the
// tenant's segment followed by the free remainder. Place returns false and
// leaves the arena untouched when no free segment is large enough.
//
// Place panics if t is invalid (see Tenant.Validate).
func (a *Arena) Place(t Tenant) bool {
	if err := t.Validate(); err != nil {
		panic(fmt.Errorf("firstfit: place: %w", err))
	}

	off := 0
	for i, seg := range a.segments {
		free, ok := seg.(Free)
		if !ok || free.Length < t.Length {
			off += seg.Len()
			continue
		}
		if free.Length > t.Length {
			var rest Segment = Free{Length: free.Length - t.Length}
			a.segments = slices.Insert(a.segments, i+1, rest)
		}
		a.segments[i] = Occupied{Tenant: t}

		a.stats.placed++
		a.log.Debug("tenant placed",
			zap.String("tenant", t.ID),
			zap.Int("length", t.Length),
			zap.Int("remaining", t.Remaining),
			zap.Int("offset", off))
		a.observer.Placed(t, off)
		return true
	}

	a.stats.rejected++
	a.log.Debug("tenant rejected",
		zap.String("tenant", t.ID),
		zap.Int("length", t.Length),
		zap.Int("largest_free", a.LargestFree()))
	a.observer.Rejected(t)
	return false
}

// Fits reports whether a tenant of the given length would be placed now.
func (a *Arena) Fits(length int) bool {
	return length > 0 && a.LargestFree() >= length
}
