package board

// NewBitmap constructs a fully available size×size Bitmap.
// Returns ErrBoardSize if size < 1.
// Complexity: O(size²) time and memory.
func NewBitmap(size int) (*Bitmap, error) {
	if size < 1 {
		return nil, ErrBoardSize
	}
	cells := make([]bool, size*size)
	for i := range cells {
		cells[i] = true
	}

	return &Bitmap{Size: size, cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the board boundaries.
// Complexity: O(1).
func (bm *Bitmap) InBounds(x, y int) bool {
	return x >= 0 && x < bm.Size && y >= 0 && y < bm.Size
}

// Available reports whether the cell at (x,y) is still open for queen
// placement. Out-of-bounds positions are never available.
// Complexity: O(1).
func (bm *Bitmap) Available(x, y int) bool {
	return bm.InBounds(x, y) && bm.cells[bm.index(x, y)]
}

// Interdict marks the cell at (x,y) as unavailable and returns true.
// If (x,y) lies outside the board, nothing is marked and false is
// returned — the termination condition for InterdictRay.
// Complexity: O(1).
func (bm *Bitmap) Interdict(x, y int) bool {
	if !bm.InBounds(x, y) {
		return false // Walked off the board.
	}
	bm.cells[bm.index(x, y)] = false

	return true
}

// InterdictRay marches from (x,y) by the direction vector (dx,dy),
// interdicting each visited cell until an edge of the board is crossed.
// The starting cell itself is skipped. (dx,dy) must not be (0,0);
// with any nonzero vector the march terminates in at most Size steps.
// Complexity: O(Size).
func (bm *Bitmap) InterdictRay(x, y, dx, dy int) {
	do := true
	for do {
		// Skip the initial position, then mark until off-board.
		x += dx
		y += dy
		do = bm.Interdict(x, y)
	}
}

// Clone returns an independent deep copy of the bitmap. Mutating the
// clone never affects the original; recursion branches each own their
// copy. Complexity: O(Size²) time and memory.
func (bm *Bitmap) Clone() *Bitmap {
	cells := make([]bool, len(bm.cells))
	copy(cells, bm.cells)

	return &Bitmap{Size: bm.Size, cells: cells}
}

// index maps (x,y) to a row-major index: x + Size*y.
// Complexity: O(1).
func (bm *Bitmap) index(x, y int) int {
	return x + bm.Size*y
}
