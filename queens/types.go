// Package queens defines the Board type, functional options, and
// sentinel errors for the queens subpackage of
// github.com/katalvlaran/nqueens.
package queens

import "errors"

// Sentinel errors for queens operations.
var (
	// ErrBoardSize indicates a requested board size below 1.
	ErrBoardSize = errors.New("queens: size must be at least 1")

	// ErrNotAttempted indicates a result was requested before any
	// Solve call on the board.
	ErrNotAttempted = errors.New("queens: board not solved yet")

	// ErrNoSolution indicates a result was requested after a Solve
	// call that found no solution.
	ErrNoSolution = errors.New("queens: no solution found for board")
)

// Option configures optional behavior of a Board.
// Use with New(size, opts...).
type Option func(*Options)

// Options holds configurable parameters for a Board. All fields are
// fixed at construction; a Board never changes constraint mode later.
type Options struct {
	// LineConstraint, if true, additionally forbids any three queens
	// from lying on a common straight line. Default is false
	// (standard row/column/diagonal attack rules only).
	LineConstraint bool
}

// DefaultOptions returns an Options struct with:
//   - Standard attack rules only (LineConstraint = false)
func DefaultOptions() Options {
	return Options{
		LineConstraint: false,
	}
}

// WithLineConstraint returns an Option that enables the
// no-three-in-line rule alongside the standard attack rules.
func WithLineConstraint() Option {
	return func(o *Options) {
		o.LineConstraint = true
	}
}

// Board is one N-Queens puzzle instance. It owns its assignment and
// lifecycle exclusively; nothing is shared across Board values and no
// concurrent mutation occurs. Construct with New.
type Board struct {
	size           int   // board width, height, and queen count
	lineConstraint bool  // enforce the no-three-in-line rule
	queenCol       []int // chosen column for each row's queen
	attempted      bool  // has Solve been called?
	solved         bool  // did the latest Solve find a solution?
}
