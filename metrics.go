package firstfit

import "math/big"

// Capacity returns the fixed length managed by the arena.
func (a *Arena) Capacity() int {
	return a.capacity
}

// FreeLength returns the total length of all free segments.
func (a *Arena) FreeLength() int {
	sum := 0
	for _, seg := range a.segments {
		if isFree(seg) {
			sum += seg.Len()
		}
	}
	return sum
}

// SizeInUse returns the total length held by tenants.
func (a *Arena) SizeInUse() int {
	return a.capacity - a.FreeLength()
}

// LargestFree returns the length of the largest free segment, or 0 if the
// arena is full.
func (a *Arena) LargestFree() int {
	largest := 0
	for _, seg := range a.segments {
		if isFree(seg) && seg.Len() > largest {
			largest = seg.Len()
		}
	}
	return largest
}

// NumSegments returns the number of segments in the sequence.
func (a *Arena) NumSegments() int {
	return len(a.segments)
}

// NumTenants returns the number of occupied segments.
func (a *Arena) NumTenants() int {
	n := 0
	for _, seg := range a.segments {
		if !isFree(seg) {
			n++
		}
	}
	return n
}

// Utilisation returns the share of the capacity held by tenants, in [0, 1].
// An arena that is one free segment reports exactly 0.
func (a *Arena) Utilisation() float64 {
	if a.empty() {
		return 0
	}
	return float64(a.SizeInUse()) / float64(a.capacity)
}

// UtilisationRat is Utilisation as an exact rational.
func (a *Arena) UtilisationRat() *big.Rat {
	if a.empty() {
		return new(big.Rat)
	}
	return big.NewRat(int64(a.SizeInUse()), int64(a.capacity))
}

func (a *Arena) empty() bool {
	return len(a.segments) == 1 && isFree(a.segments[0])
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Capacity:    a.capacity,
		SizeInUse:   a.SizeInUse(),
		FreeLength:  a.FreeLength(),
		LargestFree: a.LargestFree(),
		NumSegments: a.NumSegments(),
		NumTenants:  a.NumTenants(),
		Utilisation: a.Utilisation(),
		Ticks:       a.stats.ticks,
		Placed:      a.stats.placed,
		Rejected:    a.stats.rejected,
		Departed:    a.stats.departed,
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Capacity    int     // Fixed total length
	SizeInUse   int     // Length held by tenants
	FreeLength  int     // Length of all free segments
	LargestFree int     // Largest single free segment
	NumSegments int     // Segments in the sequence
	NumTenants  int     // Occupied segments
	Utilisation float64 // SizeInUse / Capacity (0.0-1.0)

	Ticks    uint64 // Tick calls since creation
	Placed   uint64 // Successful Place calls
	Rejected uint64 // Place calls that found no room
	Departed uint64 // Tenants evicted by Tick
}
