package regiongraph

import "sort"

// New builds the initial region graph for lat: one singleton region per
// pixel, with neighbor sets taken from the lattice adjacency. Region ids
// are the pixel ordinals and stay stable across merges.
// Complexity: O(P·d) time and memory.
func New(lat Lattice) *Graph {
	n := lat.Size()
	g := &Graph{regions: make([]region, n), alive: n}
	buf := make([]int, 0, 4)
	for p := 0; p < n; p++ {
		buf = lat.AppendNeighbors(p, buf[:0])
		nb := make([]int, len(buf))
		copy(nb, buf)
		sort.Ints(nb)
		g.regions[p] = region{members: []int{lat.Offset(p)}, neigh: nb}
	}
	return g
}

// Len returns the arena size: the total number of regions ever created.
func (g *Graph) Len() int { return len(g.regions) }

// Alive returns the number of regions not yet merged away.
func (g *Graph) Alive() int { return g.alive }

// IsAlive reports whether id addresses a live region.
func (g *Graph) IsAlive(id int) bool {
	return id >= 0 && id < len(g.regions) && !g.regions[id].dead
}

// Members returns the row-major pixel offsets owned by id.
// The slice is internal state: callers must not modify it.
// Returns nil for dead or out-of-range ids.
func (g *Graph) Members(id int) []int {
	if !g.IsAlive(id) {
		return nil
	}
	return g.regions[id].members
}

// Degree returns the number of alive neighbors of id (0 for dead ids).
func (g *Graph) Degree(id int) int {
	if !g.IsAlive(id) {
		return 0
	}
	return len(g.regions[id].neigh)
}

// Neighbor returns the k-th neighbor of id in ascending-id order.
// The stable ordering lets callers draw a uniformly random neighbor with
// a single Intn draw. The caller must keep 0 ≤ k < Degree(id).
func (g *Graph) Neighbor(id, k int) int {
	return g.regions[id].neigh[k]
}

// Aggregate sums the working arrays u and v over the current members of
// id. The result reflects every merge performed so far. The caller must
// keep id alive and len(u), len(v) at least rows×cols of the lattice.
// Complexity: O(|members|).
func (g *Graph) Aggregate(id int, u, v []float64) (a, b float64) {
	for _, off := range g.regions[id].members {
		a += u[off]
		b += v[off]
	}
	return a, b
}

// Merge absorbs src into dst: src's members move to dst, the mutual edge
// disappears, every other neighbor z of src is rewired from src to dst,
// and dst's neighbor set absorbs src's. src becomes permanently dead.
// Rewiring is idempotent when z already neighbors dst.
//
// Errors: ErrRegionID, ErrSelfMerge, ErrDeadRegion, ErrNotNeighbors.
// These are contract violations; the binning merger never triggers them.
// Complexity: O((deg(src)+deg(dst))·log deg).
func (g *Graph) Merge(dst, src int) error {
	if dst < 0 || dst >= len(g.regions) || src < 0 || src >= len(g.regions) {
		return ErrRegionID
	}
	if dst == src {
		return ErrSelfMerge
	}
	d, s := &g.regions[dst], &g.regions[src]
	if d.dead || s.dead {
		return ErrDeadRegion
	}
	if !containsID(d.neigh, src) {
		return ErrNotNeighbors
	}

	// Drop the mutual edge before rewiring.
	d.neigh = removeID(d.neigh, src)
	s.neigh = removeID(s.neigh, dst)

	// Rewire the remaining neighbors of src onto dst.
	for _, z := range s.neigh {
		zr := &g.regions[z]
		zr.neigh = removeID(zr.neigh, src)
		zr.neigh = insertID(zr.neigh, dst)
		d.neigh = insertID(d.neigh, z)
	}

	d.members = append(d.members, s.members...)
	s.members = nil
	s.neigh = nil
	s.dead = true
	g.alive--
	return nil
}

// containsID reports membership in a sorted id slice.
func containsID(s []int, id int) bool {
	i := sort.SearchInts(s, id)
	return i < len(s) && s[i] == id
}

// insertID adds id into a sorted slice, keeping order; no-op if present.
func insertID(s []int, id int) []int {
	i := sort.SearchInts(s, id)
	if i < len(s) && s[i] == id {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = id
	return s
}

// removeID deletes id from a sorted slice; no-op if absent.
func removeID(s []int, id int) []int {
	i := sort.SearchInts(s, id)
	if i == len(s) || s[i] != id {
		return s
	}
	return append(s[:i], s[i+1:]...)
}
