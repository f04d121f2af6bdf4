package vec

import (
	"deedles.dev/vecmath/num"
	"deedles.dev/vecmath/pair"
)

// Map converts v into a W, converting each component to W's scalar
// type with a Go numeric conversion.
//
//	f := vec.Map[pair.Array2[float64]](pair.Tuple2[int]{1, 2})
func Map[W Vec[W, T], V Vector[S], S, T num.Scalar](v V) W {
	return New[W](T(v.X()), T(v.Y()))
}

// MapWith converts v into a W by passing each component through f.
func MapWith[W Vec[W, T], V Vector[S], S, T num.Scalar](v V, f func(S) T) W {
	return New[W](f(v.X()), f(v.Y()))
}

// MapF32 is shorthand for Map[pair.Array2[float32]](v).
func MapF32[V Vector[S], S num.Scalar](v V) pair.Array2[float32] {
	return Map[pair.Array2[float32]](v)
}

// MapF64 is shorthand for Map[pair.Array2[float64]](v).
func MapF64[V Vector[S], S num.Scalar](v V) pair.Array2[float64] {
	return Map[pair.Array2[float64]](v)
}
