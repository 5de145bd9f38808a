package firstfit

import "fmt"

// Segment is one contiguous range of an arena. It is either Free or
// Occupied; no other implementations exist.
type Segment interface {
	// Len returns the number of units the segment spans. Always > 0 for
	// segments held by an Arena.
	Len() int
	String() string

	segment()
}

// Free is an unoccupied range.
type Free struct {
	Length int
}

func (f Free) Len() int { return f.Length }

// String renders f as Segment(None, length).
func (f Free) String() string {
	return fmt.Sprintf("Segment(None, %d)", f.Length)
}

func (Free) segment() {}

// Occupied is a range held by a tenant. Its length is the tenant's length.
type Occupied struct {
	Tenant Tenant
}

func (o Occupied) Len() int { return o.Tenant.Length }

// String renders o as Segment(Tenant(length, remaining), length).
func (o Occupied) String() string {
	return fmt.Sprintf("Segment(%s, %d)", o.Tenant, o.Tenant.Length)
}

func (Occupied) segment() {}

func isFree(s Segment) bool {
	_, ok := s.(Free)
	return ok
}
