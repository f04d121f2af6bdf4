package num

// Abs returns the absolute value of v. For unsigned types it is the
// identity. Abs of a negative floating-point zero is positive zero.
func Abs[T Scalar](v T) T {
	if v <= 0 {
		return 0 - v
	}
	return v
}

// Max returns a if it is strictly greater than b and b otherwise.
//
// Unlike the builtin max, equal operands, including 0 and -0, always
// yield b.
func Max[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns a if it is strictly less than b and b otherwise.
func Min[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Lerp linearly interpolates between a and b. t is not clamped, so
// values outside of [0, 1] extrapolate.
func Lerp[T Float](a, b, t T) T {
	return (One[T]()-t)*a + t*b
}

// IsZero reports whether v is strictly within Epsilon of zero.
func IsZero[T Float](v T) bool {
	return Abs(v) < Epsilon[T]()
}
