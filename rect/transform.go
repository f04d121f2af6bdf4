package rect

import (
	"deedles.dev/vecmath/num"
	"deedles.dev/vecmath/vec"
)

// WithTopLeft returns r moved so that its top-left corner is at
// topLeft.
func WithTopLeft[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, topLeft V) R {
	return New[R](topLeft, r.Size())
}

// WithCenter returns r moved so that its center is at center.
func WithCenter[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, center V) R {
	return Centered[R](center, r.Size())
}

// WithSize returns r with its size replaced and its top-left corner
// unchanged.
func WithSize[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, size V) R {
	return New[R](r.TopLeft(), size)
}

// Translated returns r moved by offset.
func Translated[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, offset V) R {
	return WithTopLeft(r, vec.Add(r.TopLeft(), offset))
}

// Scaled returns r with its size multiplied by scale.
func Scaled[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, scale S) R {
	return WithSize(r, vec.Mul(r.Size(), scale))
}

// Scaled2 returns r with its size multiplied component-wise by scale.
func Scaled2[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, scale V) R {
	return WithSize(r, vec.Mul2(r.Size(), scale))
}

// Canon returns the normalized form of r, which covers the same area
// but has a non-negative size.
func Canon[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R) R {
	return New[R](AbsTopLeft(r), AbsSize(r))
}

// Margins holds a distance for each edge of a rectangle.
type Margins[S num.Scalar] struct {
	Left, Right, Top, Bottom S
}

// Uniform returns Margins with every edge set to m.
func Uniform[S num.Scalar](m S) Margins[S] {
	return Margins[S]{Left: m, Right: m, Top: m, Bottom: m}
}

// InnerMargin is shorthand for InnerMargins(r, Uniform(margin)).
func InnerMargin[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, margin S) R {
	return InnerMargins(r, Uniform(margin))
}

// InnerMargins returns the rectangle inside of r that is separated
// from each of r's edges by the corresponding margin. It operates on
// the normalized geometry of r. Margins larger than r are not
// clamped and result in a negative size.
func InnerMargins[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, m Margins[S]) R {
	return New[R](
		vec.Add(AbsTopLeft(r), vec.New[V](m.Left, m.Top)),
		vec.Sub(AbsSize(r), vec.New[V](m.Left+m.Right, m.Top+m.Bottom)),
	)
}

// OuterMargin is shorthand for OuterMargins(r, Uniform(margin)).
func OuterMargin[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, margin S) R {
	return OuterMargins(r, Uniform(margin))
}

// OuterMargins returns the rectangle outside of r whose edges are
// separated from r's by the corresponding margin. Like InnerMargins,
// it operates on the normalized geometry of r.
func OuterMargins[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, m Margins[S]) R {
	return New[R](
		vec.Sub(AbsTopLeft(r), vec.New[V](m.Left, m.Top)),
		vec.Add(AbsSize(r), vec.New[V](m.Left+m.Right, m.Top+m.Bottom)),
	)
}
