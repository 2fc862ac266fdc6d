// Package nqueens is an in-memory playground for the N-Queens placement
// puzzle — from interdiction-bitmap primitives to an exhaustive
// backtracking solver with an extended no-three-in-line rule.
//
// 🚀 What is nqueens?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Board primitives: availability bitmaps, ray marching, lattice vectors
//		• Solver: row-by-row backtracking with clone-per-branch bitmaps
//		• Line constraint: no three queens on any common straight line
//		• Validator: full independent re-derivation of every rule
//		• Rendering: simple row-by-row board diagrams
//
// ✨ Why choose nqueens?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – an oracle validator that trusts no solver state
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – first solution found, same answer every run
//
// Under the hood, everything is organized under two subpackages:
//
//	board/  — availability Bitmap, ray interdiction, GCD vector reduction
//	queens/ — Board lifecycle, Solve, Validate, QueenPositions, Diagram
//
// Quick ASCII example (a solved 4×4 board):
//
//	  1 . @ . .
//	  3 . . . @
//	  0 @ . . .
//	  2 . . @ .
//
//	each row holds exactly one queen; no two share a column or diagonal.
//
// Dive into README-style doc comments in each subpackage for contracts,
// complexity notes, and runnable examples.
//
//	go get github.com/katalvlaran/nqueens
package nqueens
