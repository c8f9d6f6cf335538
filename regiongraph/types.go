package regiongraph

import "errors"

// Sentinel errors for lattice construction and region-graph operations.
var (
	// ErrEmptyLattice indicates non-positive lattice dimensions.
	ErrEmptyLattice = errors.New("regiongraph: lattice must have at least one row and one column")
	// ErrRegionID indicates a region id outside the arena range.
	ErrRegionID = errors.New("regiongraph: region id out of range")
	// ErrDeadRegion indicates an operation on a region that was already merged away.
	ErrDeadRegion = errors.New("regiongraph: region is dead")
	// ErrNotNeighbors indicates a merge between regions that share no edge.
	ErrNotNeighbors = errors.New("regiongraph: regions are not neighbors")
	// ErrSelfMerge indicates a merge of a region into itself.
	ErrSelfMerge = errors.New("regiongraph: cannot merge a region into itself")
)

// Lattice enumerates the pixels of a 2D matrix and their adjacency.
// Pixel ordinals are dense in [0, Size()); Offset maps an ordinal to the
// row-major position of that pixel in a flat rows×cols working array.
type Lattice interface {
	// Size returns the number of pixels (and initial regions).
	Size() int
	// Dim returns the underlying matrix dimensions.
	Dim() (rows, cols int)
	// Offset returns the row-major offset of pixel ordinal p.
	Offset(p int) int
	// AppendNeighbors appends the ordinals adjacent to p onto buf and
	// returns the extended slice. Adjacency is 4-connected (up, down,
	// left, right), restricted to pixels that exist in the lattice.
	AppendNeighbors(p int, buf []int) []int
}

// region is one arena entry. Dead entries are tombstoned: members and
// neigh are released, and the id is never reused.
type region struct {
	members []int // row-major offsets of owned pixels
	neigh   []int // sorted ids of adjacent alive regions
	dead    bool
}

// Graph is a mutable collection of regions over a fixed pixel universe.
// It is not safe for concurrent use; serpentine trials each own one Graph.
type Graph struct {
	regions []region
	alive   int
}
