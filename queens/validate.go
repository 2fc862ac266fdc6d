package queens

import (
	"github.com/katalvlaran/nqueens/board"
)

// attackDirections lists the 8 unit vectors a queen attacks along.
// The validator marches all of them, unlike the solver, which only
// needs the downward three.
var attackDirections = [][2]int{
	{1, 0},   // Right
	{1, -1},  // Right & Up
	{0, -1},  // Up
	{-1, -1}, // Left & Up
	{-1, 0},  // Left
	{-1, 1},  // Left & Down
	{0, 1},   // Down
	{1, 1},   // Right & Down
}

// Validate independently re-derives every active rule from the finished
// assignment and reports whether the solution holds up. It rebuilds a
// fresh bitmap, marches full 8-direction attack rays for every queen,
// and — under the line rule — outward rays for every queen pair; a
// queen whose own cell ends up interdicted exposes a solver bug.
//
// Returns false (not an error) when called before a successful Solve.
// Validate never mutates the board, so repeated calls agree.
//
// Complexity: O(size²) rays of O(size) cells each; memory O(size²).
func (b *Board) Validate() bool {
	// 1. Only a solved board can validate.
	if !b.attempted || !b.solved {
		return false
	}

	// 2. Every chosen column must lie on the board.
	var q int
	for q = 0; q < b.size; q++ {
		if b.queenCol[q] < 0 || b.queenCol[q] >= b.size {
			return false
		}
	}

	// 3. Fresh, fully available bitmap: nothing the solver marked is
	//    trusted here. Size was validated in New.
	bm, err := board.NewBitmap(b.size)
	if err != nil {
		return false
	}

	// 4. March every queen's full attack rays. InterdictRay skips its
	//    starting cell, so each queen's own square is left untouched by
	//    its own rays.
	var x, y int
	for q = 0; q < b.size; q++ {
		x, y = b.queenCol[q], q
		for _, d := range attackDirections {
			bm.InterdictRay(x, y, d[0], d[1])
		}
	}

	// 5. Under the line rule, march the reduced displacement of every
	//    queen pair outward in both directions. Marching away from each
	//    end covers the whole line except the segment between the pair,
	//    which the pair's own cells anchor.
	if b.lineConstraint {
		var qa, qb, xa, ya, xb, yb, dx, dy int
		for qa = 0; qa < b.size; qa++ {
			xa, ya = b.queenCol[qa], qa
			for qb = qa + 1; qb < b.size; qb++ {
				xb, yb = b.queenCol[qb], qb
				dx, dy = board.ReduceVector(xa-xb, ya-yb)
				bm.InterdictRay(xa, ya, dx, dy)
				bm.InterdictRay(xb, yb, -dx, -dy)
			}
		}
	}

	// 6. Every queen must have survived everyone else's markup.
	for q = 0; q < b.size; q++ {
		if !bm.Available(b.queenCol[q], q) {
			return false
		}
	}

	return true
}
