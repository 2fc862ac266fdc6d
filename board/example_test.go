// File: board/example_test.go
package board_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nqueens/board"
)

////////////////////////////////////////////////////////////////////////////////
// Example: InterdictRay
////////////////////////////////////////////////////////////////////////////////

// ExampleBitmap_InterdictRay demonstrates marching a queen's downward
// attack rays across a small bitmap.
// Scenario:
//
//   - 4×4 bitmap, queen standing at (1,0)
//   - March down (0,1), down-left (-1,1) and down-right (1,1)
//   - The queen's own cell is skipped; every attacked cell below is marked
//
// Complexity: O(Size) per ray.
func ExampleBitmap_InterdictRay() {
	bm, _ := board.NewBitmap(4)

	bm.InterdictRay(1, 0, 0, 1)
	bm.InterdictRay(1, 0, -1, 1)
	bm.InterdictRay(1, 0, 1, 1)

	for y := 0; y < bm.Size; y++ {
		row := make([]string, bm.Size)
		for x := 0; x < bm.Size; x++ {
			row[x] = "x"
			if bm.Available(x, y) {
				row[x] = "."
			}
		}
		fmt.Println(strings.Join(row, " "))
	}

	// Output:
	// . . . .
	// x x x .
	// . x . x
	// . x . .
}

////////////////////////////////////////////////////////////////////////////////
// Example: ReduceVector
////////////////////////////////////////////////////////////////////////////////

// ExampleReduceVector shows the primitive-step reduction used by the
// no-three-in-line rule.
func ExampleReduceVector() {
	dx, dy := board.ReduceVector(4, 6)
	fmt.Println(dx, dy)

	dx, dy = board.ReduceVector(0, 4)
	fmt.Println(dx, dy)

	// Output:
	// 2 3
	// 0 1
}
