// Command nqueens solves the N-Queens puzzle from the command line and
// prints the first solution found as a row-by-row diagram.
//
// Usage:
//
//	nqueens [no-line-constraint] [queens]
//
// The no-three-in-line rule is enforced by default; pass
// "no-line-constraint" to disable it. The queen count defaults to 8.
// All solving logic lives in the queens and board packages; this
// wrapper only parses arguments, prints, and maps outcomes to exit
// codes.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/nqueens/queens"
)

const (
	defaultQueens = 8

	noLineConstraintArg = "no-line-constraint"

	usageText = "Usage: nqueens [args] queens\n" +
		"  args:\n" +
		"    no-line-constraint - Don't enforce 3-queens line constraint.\n"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, solves, and returns the process exit code. It is
// split from main so the argument grammar and exit-code mapping are
// testable without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	size := defaultQueens
	lineConstraint := true // The line rule defaults on.

	// 1. Parse. Two positional arguments at most; anything else is a
	//    usage error.
	switch len(args) {
	case 0:
		fmt.Fprintf(stdout, "Assuming %d Queens -- rerun with an integer argument to specify.\n", size)

	case 1:
		if args[0] == noLineConstraintArg {
			lineConstraint = false
		} else {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(stderr, "Unable to convert argument '%s' to a number.\n", args[0])

				return 1
			}
			size = n
		}

	case 2:
		if args[0] != noLineConstraintArg {
			fmt.Fprint(stderr, usageText)

			return 1
		}
		lineConstraint = false

		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(stderr, "Unable to convert argument '%s' to a number.\n", args[1])

			return 1
		}
		size = n

	default:
		fmt.Fprint(stderr, usageText)

		return 1
	}

	// 2. Construct. Non-positive queen counts are an input error, not a
	//    solver outcome.
	opts := []queens.Option{}
	if lineConstraint {
		opts = append(opts, queens.WithLineConstraint())
	}
	b, err := queens.New(size, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)

		return 1
	}

	// 3. Solve and print. An unsolvable board is a normal outcome and
	//    exits cleanly.
	if !b.Solve() {
		fmt.Fprintf(stdout, "No solution found for %d queens.\n", size)

		return 0
	}

	diagram, err := b.Diagram()
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)

		return 1
	}
	fmt.Fprint(stdout, diagram)

	return 0
}
