// Package board provides the availability-bitmap and lattice-vector
// primitives underneath the N-Queens solver.
//
// What:
//
//   - Bitmap wraps a Size×Size grid of boolean cells; true means a queen
//     may still be placed there, false means the cell is interdicted.
//   - Interdict marks a single cell and doubles as the bounds check:
//     it reports whether the position was on the board at all.
//   - InterdictRay marches a direction vector from a starting cell,
//     interdicting every cell it visits until it walks off the board.
//     The starting cell itself is never marked.
//   - ReduceVector divides a displacement by the GCD of its components,
//     yielding the smallest integer step that still visits every lattice
//     point on the original segment.
//
// Why:
//
//   - Queen attack lines (column and diagonals) are just rays with unit
//     direction vectors.
//   - The no-three-in-line rule is the same march with a reduced
//     queen-to-queen displacement as the direction.
//   - Clone-per-branch bitmaps make backtracking trivial: discard the
//     copy instead of unwinding markup.
//
// Complexity:
//
//   - Interdict, Available, InBounds: O(1).
//   - InterdictRay: O(Size) steps (each step advances ≥1 in a coordinate).
//   - Clone: O(Size²) time and memory.
//   - GCD, ReduceVector: O(log max(|dx|,|dy|)).
//
// Errors:
//
//   - ErrBoardSize: requested bitmap size is below 1.
package board
