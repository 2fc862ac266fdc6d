// Package board defines the core types and sentinel errors for the
// board subpackage of github.com/katalvlaran/nqueens.
package board

import "errors"

// Sentinel errors for board operations.
var (
	// ErrBoardSize indicates a requested bitmap size below 1.
	ErrBoardSize = errors.New("board: size must be at least 1")
)

// Bitmap is a Size×Size grid of availability cells stored row-major:
// cells[x + Size*y] is true while a queen may still be placed at (x,y)
// and false once the cell has been interdicted. A fresh Bitmap is fully
// available. Bitmaps are exclusively owned; share across recursion
// branches via Clone, never by aliasing.
type Bitmap struct {
	// Size is the board width (and height), fixed at construction.
	Size int

	cells []bool
}
