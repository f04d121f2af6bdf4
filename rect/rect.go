// Package rect implements axis-aligned rectangle geometry for any type
// that can present itself as a rectangle.
//
// A rectangle is represented by the position of its top-left corner
// and its size, both vectors, as described by [Rect]. A coordinate
// system in which positive Y points down is assumed.
//
// The size of a rectangle may be negative, in which case its nominal
// right or bottom edge lies left of or above its top-left corner.
// Functions prefixed with Abs account for this and always describe
// the normalized rectangle, so that AbsLeft <= AbsRight and
// AbsTop <= AbsBottom. For rectangles with a non-negative size they
// are identical to their unprefixed counterparts.
package rect

import (
	"iter"

	"deedles.dev/vecmath/num"
	"deedles.dev/vecmath/pair"
	"deedles.dev/vecmath/vec"
)

// Rectangle is a constraint for types that have the components of a
// rectangle.
type Rectangle[V vec.Vector[S], S num.Scalar] interface {
	TopLeft() V
	Size() V
}

// Rect is a constraint for rectangle types that can also construct
// new values of themselves. The receiver of New is ignored.
type Rect[R any, V vec.Vec[V, S], S num.Scalar] interface {
	Rectangle[V, S]
	New(topLeft, size V) R
}

// New returns a new R with the given top-left corner and size.
func New[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](topLeft, size V) R {
	var r R
	return r.New(topLeft, size)
}

// Square returns a square with the given top-left corner and side
// length.
func Square[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](topLeft V, side S) R {
	return New[R](topLeft, vec.Square[V](side))
}

// Centered returns a rectangle of the given size centered at center.
func Centered[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](center, size V) R {
	return New[R](vec.Sub(center, vec.Div(size, num.Two[S]())), size)
}

// SquareCentered returns a square with the given side length centered
// at center.
func SquareCentered[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](center V, side S) R {
	return Centered[R](center, vec.Square[V](side))
}

// Bounding returns the smallest rectangle that contains every point
// yielded by points. The returned rectangle's size is never negative.
// If points yields nothing, the second return value is false.
//
// Bounding consumes points entirely, so it must be finite.
func Bounding[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](points iter.Seq[V]) (r R, ok bool) {
	var tl, br V
	for p := range points {
		if !ok {
			tl, br, ok = p, p, true
			continue
		}
		tl = tl.New(num.Min(tl.X(), p.X()), num.Min(tl.Y(), p.Y()))
		br = br.New(num.Max(br.X(), p.X()), num.Max(br.Y(), p.Y()))
	}
	if !ok {
		return r, false
	}
	return New[R](tl, vec.Sub(br, tl)), true
}

// Map converts r into a Q, converting each of its scalars to Q's
// scalar type with a Go numeric conversion. The raw, possibly
// negative, size is preserved.
//
//	f := rect.Map[pair.Array4[float32]](pair.Array2[pair.Tuple2[float64]]{{0, 1}, {2, 5}})
func Map[Q Rect[Q, W, T], R Rectangle[V, S], W vec.Vec[W, T], V vec.Vector[S], S, T num.Scalar](r R) Q {
	return New[Q](
		vec.New[W](T(Left(r)), T(Top(r))),
		vec.New[W](T(Width(r)), T(Height(r))),
	)
}

// MapWith converts r into a Q by passing each of its scalars through f.
func MapWith[Q Rect[Q, W, T], R Rectangle[V, S], W vec.Vec[W, T], V vec.Vector[S], S, T num.Scalar](r R, f func(S) T) Q {
	return New[Q](
		vec.New[W](f(Left(r)), f(Top(r))),
		vec.New[W](f(Width(r)), f(Height(r))),
	)
}

// MapF32 is shorthand for Map[pair.Array4[float32]](r).
func MapF32[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) pair.Array4[float32] {
	return Map[pair.Array4[float32]](r)
}

// MapF64 is shorthand for Map[pair.Array4[float64]](r).
func MapF64[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) pair.Array4[float64] {
	return Map[pair.Array4[float64]](r)
}
