// Package firstfit implements a first-fit linear allocator over a single
// fixed-size arena, with time-driven eviction and free-space coalescing.
//
// # Overview
//
// An Arena models a bounded linear resource, such as a parking strip of
// fixed length, as an ordered sequence of contiguous segments. Each segment
// is either Free or Occupied by a Tenant that holds it for a finite number of
// ticks. The sequence always partitions the whole capacity:
//
//   - segment lengths are positive and sum to the capacity
//   - no two adjacent segments are both free
//   - order is physical position, left to right
//
// # Basic Usage
//
//	a, err := firstfit.NewArena(10)
//	if err != nil {
//		return err
//	}
//
//	t, _ := firstfit.NewTenant("car-1", 2, 2) // length 2, stays 2 ticks
//	if !a.Place(t) {
//		// no free segment is long enough
//	}
//
//	a.Tick()                     // every tenant ages by one
//	fmt.Println(a)               // Arena(Segment(Tenant(2, 1), 2), Segment(None, 8))
//	fmt.Println(a.Utilisation()) // 0.2
//
// # Placement
//
// Place scans left to right and takes the first free segment whose length is
// at least the tenant's. An exact fit is replaced in place; a larger segment
// is split into the tenant's segment followed by the free remainder. When
// nothing fits, Place returns false and the arena is unchanged. A tenant is
// never split across segments and never displaces another.
//
// # Time
//
// Tick decrements every tenant's remaining time by one. Tenants that reach
// zero depart within the same call, and one left-to-right pass then merges
// every run of adjacent free segments.
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use SafeArena:
//
//	s, _ := firstfit.NewSafeArena(100)
//	ok := s.Place(t)
//
// # Metrics and Monitoring
//
// The arena reports utilisation and lifetime counters:
//
//	m := a.Metrics()
//	fmt.Printf("Utilisation: %.2f%%\n", m.Utilisation*100)
//	fmt.Printf("Departed: %d\n", m.Departed)
//
// A Collector exports the same snapshot to Prometheus:
//
//	prometheus.MustRegister(firstfit.NewCollector("lot-a", s))
//
// Debug events go to an optional zap logger (WithLogger) and to an optional
// Observer (WithObserver).
package firstfit
