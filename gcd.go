package ratcalc

// GCD computes the greatest common divisor by Euclid's algorithm with the
// arguments swapped on every step: GCD(a, b) = GCD(b%a, a).
// GCD(0, 0) is 0 and the result takes its sign from the last nonzero remainder,
// so it may be negative for negative inputs.
func GCD(a int64, b int64) int64 {
	for a != 0 && b != 0 {
		a, b = b%a, a
	}
	if a == 0 {
		return b
	}
	return a
}

// LCM ...
func LCM(a int64, b int64) int64 {
	if a == b {
		return a
	}
	if a == 0 || b == 0 {
		return 0
	}
	result := a * b / GCD(a, b)
	if result < 0 {
		return -result
	}
	return result
}
