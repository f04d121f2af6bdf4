package num

import "math"

// Pow returns x raised to the real power p. Negative bases with
// fractional powers produce NaN, as with math.Pow.
func Pow[T Float, P Scalar](x T, p P) T {
	return T(math.Pow(float64(x), float64(p)))
}

// Sqrt returns the square root of x. It is equivalent to Pow(x, 0.5).
func Sqrt[T Float](x T) T {
	return Pow(x, One[T]()/Two[T]())
}
