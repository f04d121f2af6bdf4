// Package interop converts between vecmath geometry and the point and
// rectangle types of the image and golang.org/x/image/math/fixed
// packages.
//
// Those types store rectangles as a pair of corners rather than as a
// corner and a size, and their rectangles are expected to be
// well-formed, so conversions to them always use the normalized
// geometry of the source rectangle.
package interop

import (
	"image"

	"deedles.dev/vecmath/num"
	"deedles.dev/vecmath/rect"
	"deedles.dev/vecmath/vec"
)

// Point returns v as an image.Point. Non-integer components are
// truncated.
func Point[V vec.Vector[S], S num.Scalar](v V) image.Point {
	return image.Pt(int(v.X()), int(v.Y()))
}

// FromPoint returns p as a V.
func FromPoint[V vec.Vec[V, S], S num.Scalar](p image.Point) V {
	return vec.New[V](S(p.X), S(p.Y))
}

// Rectangle returns r as an image.Rectangle.
func Rectangle[R rect.Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) image.Rectangle {
	return image.Rect(
		int(rect.AbsLeft(r)),
		int(rect.AbsTop(r)),
		int(rect.AbsRight(r)),
		int(rect.AbsBottom(r)),
	)
}

// FromRectangle returns r as an R whose top-left corner is r.Min and
// whose size is r.Size().
func FromRectangle[R rect.Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r image.Rectangle) R {
	return rect.New[R](FromPoint[V](r.Min), FromPoint[V](r.Size()))
}
