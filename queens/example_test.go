// File: queens/example_test.go
package queens_test

import (
	"fmt"

	"github.com/katalvlaran/nqueens/queens"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleBoard_Solve demonstrates solving a 4-queens board and reading
// the column-per-row assignment.
// Scenario:
//
//   - 4×4 board, standard attack rules only
//   - Ascending column order makes the first solution deterministic
//
// Complexity: exponential worst case; trivial at this size.
func ExampleBoard_Solve() {
	b, _ := queens.New(4)

	if b.Solve() {
		cols, _ := b.QueenPositions()
		fmt.Println("columns:", cols)
		fmt.Println("valid:", b.Validate())
	}

	// Output:
	// columns: [1 3 0 2]
	// valid: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: line constraint
////////////////////////////////////////////////////////////////////////////////

// ExampleWithLineConstraint demonstrates the no-three-in-line rule:
// 6 queens place fine under the standard rules but cannot avoid a
// collinear triple.
func ExampleWithLineConstraint() {
	plain, _ := queens.New(6)
	lined, _ := queens.New(6, queens.WithLineConstraint())

	fmt.Println("standard rules:", plain.Solve())
	fmt.Println("line rule:", lined.Solve())

	// Output:
	// standard rules: true
	// line rule: false
}
