package firstfit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTenant(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		duration int
		wantErr  bool
	}{
		{"valid", 2, 3, false},
		{"zero duration", 2, 0, false},
		{"zero length", 0, 3, true},
		{"negative length", -1, 3, true},
		{"negative duration", 2, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn, err := NewTenant("t", tt.length, tt.duration)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTenant) {
					t.Errorf("NewTenant(%d, %d) error = %v, want ErrInvalidTenant", tt.length, tt.duration, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTenant(%d, %d): %v", tt.length, tt.duration, err)
			}
			want := Tenant{ID: "t", Length: tt.length, Remaining: tt.duration}
			if tn != want {
				t.Errorf("NewTenant = %+v, want %+v", tn, want)
			}
		})
	}
}

func TestPlaceSplitsFreeSegment(t *testing.T) {
	a := MustNewArena(10)
	mustPlace(t, a, 2, 2)
	checkSegments(t, a, []Segment{occ(2, 2), free(8)})
	if a.Utilisation() != 0.2 {
		t.Errorf("Utilisation() = %v, want 0.2", a.Utilisation())
	}
}

func TestPlaceExactFit(t *testing.T) {
	a := MustNewArena(5)
	mustPlace(t, a, 5, 1)
	checkSegments(t, a, []Segment{occ(5, 1)})
	if a.Utilisation() != 1 {
		t.Errorf("Utilisation() = %v, want 1", a.Utilisation())
	}
}

func TestPlaceExactFitInHole(t *testing.T) {
	a := MustNewArena(10)
	mustPlace(t, a, 3, 1)
	mustPlace(t, a, 7, 4)
	a.Tick()
	checkSegments(t, a, []Segment{free(3), occ(7, 3)})

	mustPlace(t, a, 3, 2)
	checkSegments(t, a, []Segment{occ(3, 2), occ(7, 3)})
}

// TestPlaceFirstFit checks the first large-enough hole wins, even when a
// later hole fits more tightly.
func TestPlaceFirstFit(t *testing.T) {
	a := MustNewArena(10)
	mustPlace(t, a, 3, 1)
	mustPlace(t, a, 2, 5)
	mustPlace(t, a, 1, 1)
	mustPlace(t, a, 3, 5)
	a.Tick()
	checkSegments(t, a, []Segment{free(3), occ(2, 4), free(1), occ(3, 4), free(1)})

	mustPlace(t, a, 1, 9)
	checkSegments(t, a, []Segment{occ(1, 9), free(2), occ(2, 4), free(1), occ(3, 4), free(1)})
}

func TestPlaceSkipsSmallHoles(t *testing.T) {
	a := MustNewArena(10)
	mustPlace(t, a, 1, 1)
	mustPlace(t, a, 2, 5)
	mustPlace(t, a, 7, 1)
	a.Tick()
	checkSegments(t, a, []Segment{free(1), occ(2, 4), free(7)})

	mustPlace(t, a, 3, 3)
	checkSegments(t, a, []Segment{free(1), occ(2, 4), occ(3, 3), free(4)})
}

func TestPlaceFailureLeavesArenaUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		setup   []Tenant
		reject  Tenant
		wantSeg []Segment
	}{
		{
			name:    "full arena",
			setup:   []Tenant{{Length: 10, Remaining: 1}},
			reject:  Tenant{Length: 1, Remaining: 1},
			wantSeg: []Segment{occ(10, 1)},
		},
		{
			name:    "larger than capacity",
			reject:  Tenant{Length: 11, Remaining: 1},
			wantSeg: []Segment{free(10)},
		},
		{
			name:    "larger than remaining space",
			setup:   []Tenant{{Length: 2, Remaining: 2}, {Length: 4, Remaining: 3}, {Length: 1, Remaining: 5}},
			reject:  Tenant{Length: 4, Remaining: 1},
			wantSeg: []Segment{occ(2, 2), occ(4, 3), occ(1, 5), free(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustNewArena(10)
			for _, tn := range tt.setup {
				mustPlace(t, a, tn.Length, tn.Remaining)
			}
			before := a.Segments()
			if a.Place(tt.reject) {
				t.Fatalf("Place(%v) = true, want false", tt.reject)
			}
			if diff := cmp.Diff(before, a.Segments()); diff != "" {
				t.Errorf("segments changed (-before +after):\n%s", diff)
			}
			checkSegments(t, a, tt.wantSeg)
			if got := a.Metrics().Rejected; got != 1 {
				t.Errorf("Rejected = %d, want 1", got)
			}
		})
	}
}

func TestPlaceInvalidTenantPanics(t *testing.T) {
	tests := []Tenant{
		{Length: 0, Remaining: 1},
		{Length: -2, Remaining: 1},
		{Length: 1, Remaining: -1},
	}

	for _, tn := range tests {
		t.Run(tn.String(), func(t *testing.T) {
			a := MustNewArena(10)
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if err, ok := r.(error); !ok || !errors.Is(err, ErrInvalidTenant) {
					t.Errorf("panic value = %v, want ErrInvalidTenant", r)
				}
				checkSegments(t, a, []Segment{free(10)})
			}()
			a.Place(tn)
		})
	}
}

func TestFits(t *testing.T) {
	a := MustNewArena(10)
	mustPlace(t, a, 3, 1)
	mustPlace(t, a, 2, 5)
	a.Tick()
	// [Free(3), Occupied(2), Free(5)]

	tests := []struct {
		length int
		want   bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{5, true},
		{6, false},
		{10, false},
	}
	for _, tt := range tests {
		if got := a.Fits(tt.length); got != tt.want {
			t.Errorf("Fits(%d) = %v, want %v", tt.length, got, tt.want)
		}
	}
}
