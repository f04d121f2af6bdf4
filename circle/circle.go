// Package circle implements circle geometry for any type that can
// present itself as a circle, a center vector paired with a radius.
//
// Circles require a floating-point scalar type. The radius may be
// negative: it is used as is for arithmetic such as Scaled and
// Diameter, but only its magnitude matters for containment.
package circle

import (
	"iter"

	"deedles.dev/vecmath/num"
	"deedles.dev/vecmath/rect"
	"deedles.dev/vecmath/vec"
)

// Circle is a constraint for types that have the components of a
// circle.
type Circle[V vec.Vector[S], S num.Float] interface {
	Center() V
	Radius() S
}

// Circ is a constraint for circle types that can also construct new
// values of themselves. The receiver of New is ignored.
type Circ[C any, V vec.Vec[V, S], S num.Float] interface {
	Circle[V, S]
	New(center V, radius S) C
}

// Tuple is a circle made of a center vector and a radius.
type Tuple[V any, S num.Float] struct {
	A V
	B S
}

func (c Tuple[V, S]) Center() V { return c.A }
func (c Tuple[V, S]) Radius() S { return c.B }

func (Tuple[V, S]) New(center V, radius S) Tuple[V, S] {
	return Tuple[V, S]{A: center, B: radius}
}

// New returns a new C with the given center and radius.
func New[C Circ[C, V, S], V vec.Vec[V, S], S num.Float](center V, radius S) C {
	var c C
	return c.New(center, radius)
}

// Map converts c into a D, converting each of its scalars to D's
// scalar type with a Go numeric conversion.
func Map[D Circ[D, W, T], C Circle[V, S], W vec.Vec[W, T], V vec.Vector[S], S, T num.Float](c C) D {
	center := c.Center()
	return New[D](vec.New[W](T(center.X()), T(center.Y())), T(c.Radius()))
}

// MapWith converts c into a D by passing each of its scalars through
// f.
func MapWith[D Circ[D, W, T], C Circle[V, S], W vec.Vec[W, T], V vec.Vector[S], S, T num.Float](c C, f func(S) T) D {
	center := c.Center()
	return New[D](vec.New[W](f(center.X()), f(center.Y())), f(c.Radius()))
}

// WithCenter returns c moved so that its center is at center.
func WithCenter[C Circ[C, V, S], V vec.Vec[V, S], S num.Float](c C, center V) C {
	return New[C](center, c.Radius())
}

// WithRadius returns c with its radius replaced.
func WithRadius[C Circ[C, V, S], V vec.Vec[V, S], S num.Float](c C, radius S) C {
	return New[C](c.Center(), radius)
}

// Diameter returns twice the radius of c.
func Diameter[C Circle[V, S], V vec.Vector[S], S num.Float](c C) S {
	return c.Radius() * num.Two[S]()
}

// Circumference returns 2πr.
func Circumference[C Circle[V, S], V vec.Vector[S], S num.Float](c C) S {
	return Diameter(c) * num.Pi[S]()
}

// Area returns πr².
func Area[C Circle[V, S], V vec.Vector[S], S num.Float](c C) S {
	return num.Pow(c.Radius(), num.Two[S]()) * num.Pi[S]()
}

// Translated returns c moved by offset.
func Translated[C Circ[C, V, S], V vec.Vec[V, S], S num.Float](c C, offset V) C {
	return WithCenter(c, vec.Add(c.Center(), offset))
}

// Scaled returns c with its radius multiplied by scale.
func Scaled[C Circ[C, V, S], V vec.Vec[V, S], S num.Float](c C, scale S) C {
	return WithRadius(c, c.Radius()*scale)
}

// ToSquare returns the smallest square that c fits inside of.
//
//	sq := circle.ToSquare[pair.Array4[float64]](c)
func ToSquare[R rect.Rect[R, V, S], C Circle[V, S], V vec.Vec[V, S], S num.Float](c C) R {
	r := c.Radius()
	return rect.New[R](
		vec.Sub(c.Center(), vec.Square[V](r)),
		vec.Square[V](r*num.Two[S]()),
	)
}

// Contains reports whether p is inside of c, including its edge.
func Contains[C Circle[V, S], V vec.Vector[S], S num.Float](c C, p V) bool {
	return vec.Dist(c.Center(), p) <= num.Abs(c.Radius())
}

// ContainsAll reports whether c contains every point yielded by
// points.
func ContainsAll[C Circle[V, S], V vec.Vector[S], S num.Float](c C, points iter.Seq[V]) bool {
	for p := range points {
		if !Contains(c, p) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether c contains at least one of the points
// yielded by points.
func ContainsAny[C Circle[V, S], V vec.Vector[S], S num.Float](c C, points iter.Seq[V]) bool {
	for p := range points {
		if Contains(c, p) {
			return true
		}
	}
	return false
}
