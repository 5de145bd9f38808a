package firstfit

import "fmt"

// Tenant is a request for Length units of space, held for Remaining ticks.
type Tenant struct {
	ID        string // optional label, carried through logs and observers
	Length    int    // space required, > 0
	Remaining int    // ticks left before departure, >= 0
}

// NewTenant returns a validated Tenant.
func NewTenant(id string, length, duration int) (Tenant, error) {
	t := Tenant{ID: id, Length: length, Remaining: duration}
	if err := t.Validate(); err != nil {
		return Tenant{}, err
	}
	return t, nil
}

// Validate reports whether t can be placed in an arena.
func (t Tenant) Validate() error {
	if t.Length <= 0 {
		return fmt.Errorf("%w: length %d", ErrInvalidTenant, t.Length)
	}
	if t.Remaining < 0 {
		return fmt.Errorf("%w: remaining time %d", ErrInvalidTenant, t.Remaining)
	}
	return nil
}

// String renders t as Tenant(length, remaining).
func (t Tenant) String() string {
	return fmt.Sprintf("Tenant(%d, %d)", t.Length, t.Remaining)
}
