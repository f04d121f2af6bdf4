package num

import "math"

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	return T(math.Cos(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	return T(math.Sin(float64(x)))
}

// Tan returns Sin(x) / Cos(x). Near odd multiples of π/2 the result
// grows without bound.
func Tan[T Float](x T) T {
	return Sin(x) / Cos(x)
}

// Atan2 returns the four-quadrant arc tangent of y/x in (-π, π].
func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}
