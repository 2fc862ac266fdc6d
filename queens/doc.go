// Package queens solves the N-Queens placement puzzle by exhaustive
// backtracking, optionally enforcing the extended rule that no three
// queens may lie on a common straight line.
//
// What:
//
//   - Board holds the puzzle size, the constraint mode, the queen-per-row
//     assignment, and the attempted/solved lifecycle flags.
//   - Solve recurses row by row: each level clones the availability
//     bitmap, places a queen in a still-open column, marches the
//     interdiction rays, and backtracks by discarding the clone.
//   - Validate independently re-derives every constraint from the
//     finished assignment on a fresh bitmap — an oracle that trusts no
//     solver state.
//   - QueenPositions and Diagram expose the result, guarded by the
//     lifecycle sentinels.
//
// Why:
//
//   - Since exactly one queen sits in each row, recursing over rows keeps
//     the search tree narrow and the assignment a flat []int.
//   - Only downward rays are marched during the search: rows already
//     passed are never read again, so interdicting them buys nothing.
//   - The no-three-in-line rule reuses the same ray march with a
//     GCD-reduced queen-to-queen displacement as the direction; pairing
//     the new queen with each earlier one at every level covers all
//     triples exactly once.
//
// Complexity:
//
//   - Solve: exponential worst case (exhaustive search); each node costs
//     O(N²) for the clone plus O(N·rays) markup. Memory O(depth·N²).
//   - Validate: O(N²·rays) time, O(N²) memory.
//   - QueenPositions, Diagram: O(N), O(N²).
//
// Options:
//
//   - WithLineConstraint() enables the no-three-in-line rule.
//
// Errors:
//
//   - ErrBoardSize: requested board size is below 1.
//   - ErrNotAttempted: results requested before any Solve call.
//   - ErrNoSolution: results requested after a failed Solve.
//
// "No solution exists" is a normal boolean outcome of Solve, never an
// error; the sentinels cover result-access ordering only.
package queens
