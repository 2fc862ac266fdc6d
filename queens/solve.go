package queens

import (
	"github.com/katalvlaran/nqueens/board"
)

// New constructs a Board for an N-Queens puzzle of the given size.
// Returns ErrBoardSize if size < 1.
// Complexity: O(size) time and memory.
func New(size int, opts ...Option) (*Board, error) {
	if size < 1 {
		return nil, ErrBoardSize
	}

	// Apply options over defaults.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return &Board{
		size:           size,
		lineConstraint: o.LineConstraint,
		queenCol:       make([]int, size),
	}, nil
}

// Size returns the board width (and height, and queen count).
func (b *Board) Size() int { return b.size }

// LineConstrained reports whether the no-three-in-line rule is active.
func (b *Board) LineConstrained() bool { return b.lineConstraint }

// Attempted reports whether Solve has been called on this board.
func (b *Board) Attempted() bool { return b.attempted }

// Solved reports whether the latest Solve call found a solution.
func (b *Board) Solved() bool { return b.solved }

// Solve searches for the first queen placement satisfying every active
// rule and reports whether one exists. A false result is a normal
// outcome, not an error. Calling Solve again restarts the search from a
// fresh bitmap, resetting the lifecycle flags first.
//
// Complexity: exponential in size worst case (exhaustive backtracking);
// each search node clones an O(size²) bitmap.
func (b *Board) Solve() bool {
	// 1. Fresh, fully available bitmap. Size was validated in New, so
	//    construction cannot fail here.
	bm, err := board.NewBitmap(b.size)
	if err != nil {
		return false
	}

	// 2. Mark the attempt before searching so result accessors can tell
	//    "never tried" from "tried and failed".
	b.attempted = true
	b.solved = b.solveFrom(0, bm)

	return b.solved
}

// solveFrom places a queen in row and recurses to the rows below.
// It tries each still-available column in ascending order, cloning the
// bitmap per branch so backtracking is a simple discard.
func (b *Board) solveFrom(row int, bm *board.Bitmap) bool {
	// 1. Terminal success: walked past the last row with every queen
	//    placed consistently.
	if row >= b.size {
		return true
	}

	// 2. Try each open column left to right. Ascending order is a
	//    deliberate simplicity-over-performance choice; a randomized or
	//    wrap-around order would merely shuffle which solution is found
	//    first.
	for x := 0; x < b.size; x++ {
		if !bm.Available(x, row) {
			continue
		}

		// Clone-per-branch: siblings reuse the unmarked bitmap, so no
		// explicit unmark is ever needed.
		branch := bm.Clone()
		b.queenCol[row] = x
		b.interdictFrom(branch, row)

		if b.solveFrom(row+1, branch) {
			return true // First solution wins; stop searching.
		}
	}

	// 3. No column fit this row: fail so the caller backtracks.
	return false
}

// interdictFrom marks every cell the queen in row rules out for the
// rows below it. Rows already passed are never read again, so only
// downward rays are marched; the bitmap stays accurate for rows ≥ row.
func (b *Board) interdictFrom(bm *board.Bitmap, row int) {
	x, y := b.queenCol[row], row

	// 1. Standard attacks: march the column and both diagonals downward.
	bm.InterdictRay(x, y, 0, 1)  // Down
	bm.InterdictRay(x, y, -1, 1) // Down & Left Diagonal
	bm.InterdictRay(x, y, 1, 1)  // Down & Right Diagonal

	if !b.lineConstraint {
		return
	}

	// 2. Line rule: for each queen already placed, reduce the
	//    displacement between the pair to its primitive lattice step and
	//    march it onward from the new queen. Every future row on that
	//    line is thereby blocked before any third queen can land on it.
	var q, dx, dy int
	for q = 0; q < row; q++ {
		dx, dy = board.ReduceVector(b.queenCol[row]-b.queenCol[q], row-q)
		bm.InterdictRay(x, y, dx, dy)
	}
}

// QueenPositions returns the column chosen for each row's queen, as a
// defensive copy. Returns ErrNotAttempted if Solve was never called and
// ErrNoSolution if the latest Solve failed.
// Complexity: O(size).
func (b *Board) QueenPositions() ([]int, error) {
	if !b.attempted {
		return nil, ErrNotAttempted
	}
	if !b.solved {
		return nil, ErrNoSolution
	}

	out := make([]int, b.size)
	copy(out, b.queenCol)

	return out, nil
}
