package queens

import (
	"fmt"
	"strings"
)

// Diagram renders the solved board as one line per row: the queen's
// column index, then an "@" in the queen's cell and "." everywhere
// else. Guarded by the same lifecycle sentinels as QueenPositions.
//
//	  1 . @ . .
//	  3 . . . @
//	  0 @ . . .
//	  2 . . @ .
//
// Complexity: O(size²).
func (b *Board) Diagram() (string, error) {
	cols, err := b.QueenPositions()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var y, x int
	for y = 0; y < b.size; y++ {
		fmt.Fprintf(&sb, "%3d ", cols[y])
		for x = 0; x < b.size; x++ {
			if cols[y] == x {
				sb.WriteString("@ ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
