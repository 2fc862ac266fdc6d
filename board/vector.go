package board

// GCD returns the greatest common divisor of a and b via Euclid's
// algorithm, taking absolute values first so either argument may be
// negative. GCD(0,0) is 0 and must not be used as a divisor.
// Complexity: O(log max(|a|,|b|)).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ReduceVector divides both components of the displacement (dx,dy) by
// GCD(|dx|,|dy|), producing the primitive lattice step along the same
// line: (4,6) reduces to (2,3), (0,4) to (0,1). The input must be
// nonzero in at least one coordinate (a displacement between two
// distinct queens always is). Complexity: O(log max(|dx|,|dy|)).
func ReduceVector(dx, dy int) (int, int) {
	d := GCD(dx, dy)

	return dx / d, dy / d
}
