package regiongraph_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/serpentine/regiongraph"
)

//----------------------------------------------------------------------------//
// Lattice construction
//----------------------------------------------------------------------------//

// TestNewLattice_Errors verifies that non-positive dimensions are rejected.
func TestNewLattice_Errors(t *testing.T) {
	if _, err := regiongraph.NewFullLattice(0, 3); !errors.Is(err, regiongraph.ErrEmptyLattice) {
		t.Errorf("NewFullLattice(0,3) error = %v; want ErrEmptyLattice", err)
	}
	if _, err := regiongraph.NewFullLattice(3, 0); !errors.Is(err, regiongraph.ErrEmptyLattice) {
		t.Errorf("NewFullLattice(3,0) error = %v; want ErrEmptyLattice", err)
	}
	if _, err := regiongraph.NewTriLattice(0); !errors.Is(err, regiongraph.ErrEmptyLattice) {
		t.Errorf("NewTriLattice(0) error = %v; want ErrEmptyLattice", err)
	}
}

// neighborsOf collects and sorts the adjacency of ordinal p.
func neighborsOf(l regiongraph.Lattice, p int) []int {
	nb := l.AppendNeighbors(p, nil)
	sort.Ints(nb)
	return nb
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

//----------------------------------------------------------------------------//
// FullLattice
//----------------------------------------------------------------------------//

// TestFullLattice_Neighbors checks 4-connectivity on a 2×3 grid.
func TestFullLattice_Neighbors(t *testing.T) {
	l, err := regiongraph.NewFullLattice(2, 3)
	if err != nil {
		t.Fatalf("NewFullLattice error: %v", err)
	}
	if l.Size() != 6 {
		t.Fatalf("Size = %d; want 6", l.Size())
	}
	cases := []struct {
		p    int
		want []int
	}{
		{0, []int{1, 3}},       // corner (0,0)
		{1, []int{0, 2, 4}},    // edge (0,1)
		{4, []int{1, 3, 5}},    // edge (1,1)
		{5, []int{2, 4}},       // corner (1,2)
	}
	for _, tc := range cases {
		if got := neighborsOf(l, tc.p); !equalInts(got, tc.want) {
			t.Errorf("neighbors(%d) = %v; want %v", tc.p, got, tc.want)
		}
	}
	if off := l.Offset(4); off != 4 {
		t.Errorf("Offset(4) = %d; want 4 (identity)", off)
	}
}

//----------------------------------------------------------------------------//
// TriLattice
//----------------------------------------------------------------------------//

// TestTriLattice_OrdinalsAndOffsets checks the triangular numbering on n=3.
func TestTriLattice_OrdinalsAndOffsets(t *testing.T) {
	l, err := regiongraph.NewTriLattice(3)
	if err != nil {
		t.Fatalf("NewTriLattice error: %v", err)
	}
	if l.Size() != 6 {
		t.Fatalf("Size = %d; want 6 (3·4/2)", l.Size())
	}
	// ordinal → row-major offset for (r,c) with r ≥ c
	wantOffsets := []int{0, 3, 4, 6, 7, 8}
	for p, want := range wantOffsets {
		if got := l.Offset(p); got != want {
			t.Errorf("Offset(%d) = %d; want %d", p, got, want)
		}
	}
}

// TestTriLattice_Neighbors verifies that adjacency never leaves the lower triangle.
func TestTriLattice_Neighbors(t *testing.T) {
	l, err := regiongraph.NewTriLattice(3)
	if err != nil {
		t.Fatalf("NewTriLattice error: %v", err)
	}
	cases := []struct {
		p    int
		want []int
	}{
		{0, []int{1}},       // (0,0): only (1,0); (0,1) is above the diagonal
		{2, []int{1, 4}},    // (1,1): (1,0) and (2,1); (0,1) excluded
		{3, []int{1, 4}},    // (2,0): (1,0) and (2,1)
		{5, []int{4}},       // (2,2): only (2,1)
	}
	for _, tc := range cases {
		if got := neighborsOf(l, tc.p); !equalInts(got, tc.want) {
			t.Errorf("neighbors(%d) = %v; want %v", tc.p, got, tc.want)
		}
	}
}

// TestTriLattice_SymmetricAdjacency checks the neighbor relation is mutual.
func TestTriLattice_SymmetricAdjacency(t *testing.T) {
	l, err := regiongraph.NewTriLattice(5)
	if err != nil {
		t.Fatalf("NewTriLattice error: %v", err)
	}
	for p := 0; p < l.Size(); p++ {
		for _, q := range neighborsOf(l, p) {
			back := neighborsOf(l, q)
			found := false
			for _, r := range back {
				if r == p {
					found = true
				}
			}
			if !found {
				t.Errorf("adjacency not symmetric: %d lists %d but not vice versa", p, q)
			}
		}
	}
}
