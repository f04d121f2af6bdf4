// Package vec implements 2D vector math for any type that can
// present itself as a vector.
//
// A type is a vector if it has X and Y accessors and a New method
// that builds a value of the type from two components, as described
// by [Vec]. Every function in this package is written once against
// that contract and works for arrays, structs and any user-defined
// type alike.
//
// Functions that take two vectors accept any two vector types as long
// as their scalar types are identical. The result always has the type
// of the first argument:
//
//	a := pair.Array2[int]{2, 6}
//	b := pair.Tuple2[int]{4, -1}
//	vec.Add(a, b) // pair.Array2[int]{6, 5}
//	vec.Add(b, a) // pair.Tuple2[int]{6, 5}
//
// Converting between scalar types is never implicit and has to go
// through [Map] or [MapWith].
package vec

import "deedles.dev/vecmath/num"

// Vector is a constraint for types that have the components of a 2D
// vector.
type Vector[S num.Scalar] interface {
	X() S
	Y() S
}

// Vec is a constraint for vector types that can also construct new
// values of themselves. The receiver of New is ignored.
type Vec[V any, S num.Scalar] interface {
	Vector[S]
	New(x, y S) V
}

// New returns a new V with the given components.
func New[V Vec[V, S], S num.Scalar](x, y S) V {
	var v V
	return v.New(x, y)
}

// Square returns a new V with both components set to s.
func Square[V Vec[V, S], S num.Scalar](s S) V {
	return New[V](s, s)
}

// SetX replaces the X component of the vector pointed to by v.
func SetX[V Vec[V, S], S num.Scalar](v *V, x S) {
	*v = WithX(*v, x)
}

// SetY replaces the Y component of the vector pointed to by v.
func SetY[V Vec[V, S], S num.Scalar](v *V, y S) {
	*v = WithY(*v, y)
}

// WithX returns v with its X component replaced by x.
func WithX[V Vec[V, S], S num.Scalar](v V, x S) V {
	return v.New(x, v.Y())
}

// WithY returns v with its Y component replaced by y.
func WithY[V Vec[V, S], S num.Scalar](v V, y S) V {
	return v.New(v.X(), y)
}

// Equal reports whether v and u have identical components. They do
// not need to be the same type.
func Equal[V, U Vector[S], S num.Scalar](v V, u U) bool {
	return v.X() == u.X() && v.Y() == u.Y()
}

// MaxDim returns the component with the larger magnitude. If the
// magnitudes are equal, Y is returned.
func MaxDim[V Vector[S], S num.Scalar](v V) S {
	if num.Abs(v.X()) > num.Abs(v.Y()) {
		return v.X()
	}
	return v.Y()
}

// MinDim returns the component with the smaller magnitude. If the
// magnitudes are equal, Y is returned.
func MinDim[V Vector[S], S num.Scalar](v V) S {
	if num.Abs(v.X()) < num.Abs(v.Y()) {
		return v.X()
	}
	return v.Y()
}
