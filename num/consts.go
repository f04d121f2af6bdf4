package num

import (
	"math"
	"unsafe"
)

// Zero returns 0 as a T.
func Zero[T Scalar]() T { return 0 }

// One returns 1 as a T.
func One[T Scalar]() T { return 1 }

// Two returns 2 as a T.
func Two[T Scalar]() T { return 2 }

// Pi returns the closest representable value to π for T.
func Pi[T Float]() T {
	return T(math.Pi)
}

// Epsilon returns the machine epsilon of T, the difference between 1
// and the next representable value.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

// Tau returns 2π as a T.
func Tau[T Float]() T {
	return Pi[T]() * Two[T]()
}

func is32[T Float]() bool {
	var v T
	return unsafe.Sizeof(v) == 4
}
