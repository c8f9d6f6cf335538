package regiongraph

// FullLattice enumerates every cell of a rows×cols matrix.
// Ordinals coincide with row-major offsets: p = row*cols + col.
type FullLattice struct {
	rows, cols int
}

// NewFullLattice constructs a FullLattice over a rows×cols matrix.
// Returns ErrEmptyLattice when either dimension is not positive.
// Complexity: O(1).
func NewFullLattice(rows, cols int) (*FullLattice, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyLattice
	}
	return &FullLattice{rows: rows, cols: cols}, nil
}

// Size returns rows×cols.
func (l *FullLattice) Size() int { return l.rows * l.cols }

// Dim returns the matrix dimensions.
func (l *FullLattice) Dim() (rows, cols int) { return l.rows, l.cols }

// Offset is the identity mapping for a full lattice.
func (l *FullLattice) Offset(p int) int { return p }

// AppendNeighbors appends the in-bounds orthogonal neighbors of p.
// Complexity: O(1).
func (l *FullLattice) AppendNeighbors(p int, buf []int) []int {
	r, c := p/l.cols, p%l.cols
	if r > 0 {
		buf = append(buf, p-l.cols)
	}
	if r < l.rows-1 {
		buf = append(buf, p+l.cols)
	}
	if c > 0 {
		buf = append(buf, p-1)
	}
	if c < l.cols-1 {
		buf = append(buf, p+1)
	}
	return buf
}

// TriLattice enumerates only the lower triangle (row ≥ col, diagonal
// included) of an n×n matrix. Ordinals use the triangular numbering
// p = row*(row+1)/2 + col; Offset still maps into a full n×n row-major
// array so triangular and full trials share the same working storage.
type TriLattice struct {
	n      int
	coords [][2]int // ordinal → (row, col)
}

// NewTriLattice constructs a TriLattice over an n×n matrix.
// Returns ErrEmptyLattice when n is not positive.
// Complexity: O(n²) time and memory for the coordinate table.
func NewTriLattice(n int) (*TriLattice, error) {
	if n <= 0 {
		return nil, ErrEmptyLattice
	}
	coords := make([][2]int, 0, n*(n+1)/2)
	for r := 0; r < n; r++ {
		for c := 0; c <= r; c++ {
			coords = append(coords, [2]int{r, c})
		}
	}
	return &TriLattice{n: n, coords: coords}, nil
}

// Size returns n(n+1)/2, the number of lower-triangle cells.
func (l *TriLattice) Size() int { return len(l.coords) }

// Dim returns the square matrix dimensions.
func (l *TriLattice) Dim() (rows, cols int) { return l.n, l.n }

// Offset maps a triangular ordinal to its row-major position in an n×n array.
func (l *TriLattice) Offset(p int) int {
	rc := l.coords[p]
	return rc[0]*l.n + rc[1]
}

// ordinal returns the triangular numbering of (r, c) with r ≥ c.
func (l *TriLattice) ordinal(r, c int) int {
	return r*(r+1)/2 + c
}

// AppendNeighbors appends the orthogonal neighbors of p that remain in
// the lower triangle (neighbor coordinates with r < c are excluded).
// Complexity: O(1).
func (l *TriLattice) AppendNeighbors(p int, buf []int) []int {
	rc := l.coords[p]
	r, c := rc[0], rc[1]
	if r > 0 && r-1 >= c {
		buf = append(buf, l.ordinal(r-1, c))
	}
	if r < l.n-1 {
		buf = append(buf, l.ordinal(r+1, c))
	}
	if c > 0 {
		buf = append(buf, l.ordinal(r, c-1))
	}
	if c < l.n-1 && r >= c+1 {
		buf = append(buf, l.ordinal(r, c+1))
	}
	return buf
}
