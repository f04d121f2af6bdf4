package rect

import (
	"iter"

	"deedles.dev/vecmath/num"
	"deedles.dev/vecmath/vec"
)

// Left returns the X coordinate of r's top-left corner.
func Left[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return r.TopLeft().X()
}

// Top returns the Y coordinate of r's top-left corner.
func Top[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return r.TopLeft().Y()
}

// Right returns Left(r) + Width(r).
func Right[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return r.TopLeft().X() + r.Size().X()
}

// Bottom returns Top(r) + Height(r).
func Bottom[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return r.TopLeft().Y() + r.Size().Y()
}

// Width returns the X component of r's size.
func Width[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return r.Size().X()
}

// Height returns the Y component of r's size.
func Height[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return r.Size().Y()
}

// AbsLeft returns the smaller of Left(r) and Right(r).
func AbsLeft[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return num.Min(Left(r), Right(r))
}

// AbsTop returns the smaller of Top(r) and Bottom(r).
func AbsTop[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return num.Min(Top(r), Bottom(r))
}

// AbsRight returns the larger X coordinate of r's edges.
func AbsRight[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return AbsLeft(r) + AbsWidth(r)
}

// AbsBottom returns the larger Y coordinate of r's edges.
func AbsBottom[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return AbsTop(r) + AbsHeight(r)
}

// AbsWidth returns the absolute value of Width(r).
func AbsWidth[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return num.Abs(Width(r))
}

// AbsHeight returns the absolute value of Height(r).
func AbsHeight[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return num.Abs(Height(r))
}

// Perimeter returns 2*Width(r) + 2*Height(r). A negative size
// component contributes negatively.
func Perimeter[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return Width(r)*num.Two[S]() + Height(r)*num.Two[S]()
}

// Area returns Width(r) * Height(r). It is negative if exactly one
// size component is.
func Area[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R) S {
	return Width(r) * Height(r)
}

// AbsSize returns the size of r with both components made
// non-negative.
func AbsSize[R Rectangle[V, S], V vec.Vec[V, S], S num.Scalar](r R) V {
	return vec.New[V](AbsWidth(r), AbsHeight(r))
}

// TopRight returns the position of r's top-right corner.
func TopRight[R Rectangle[V, S], V vec.Vec[V, S], S num.Scalar](r R) V {
	return vec.New[V](Right(r), Top(r))
}

// BottomLeft returns the position of r's bottom-left corner.
func BottomLeft[R Rectangle[V, S], V vec.Vec[V, S], S num.Scalar](r R) V {
	return vec.New[V](Left(r), Bottom(r))
}

// BottomRight returns the position of r's bottom-right corner.
func BottomRight[R Rectangle[V, S], V vec.Vec[V, S], S num.Scalar](r R) V {
	return vec.Add(r.TopLeft(), r.Size())
}

// AbsTopLeft returns the corner of r with the smallest coordinates.
func AbsTopLeft[R Rectangle[V, S], V vec.Vec[V, S], S num.Scalar](r R) V {
	return vec.New[V](AbsLeft(r), AbsTop(r))
}

// AbsTopRight returns the corner of r with the largest X and
// smallest Y coordinate.
func AbsTopRight[R Rectangle[V, S], V vec.Vec[V, S], S num.Scalar](r R) V {
	return vec.New[V](AbsRight(r), AbsTop(r))
}

// AbsBottomLeft returns the corner of r with the smallest X and
// largest Y coordinate.
func AbsBottomLeft[R Rectangle[V, S], V vec.Vec[V, S], S num.Scalar](r R) V {
	return vec.New[V](AbsLeft(r), AbsBottom(r))
}

// AbsBottomRight returns the corner of r with the largest coordinates.
func AbsBottomRight[R Rectangle[V, S], V vec.Vec[V, S], S num.Scalar](r R) V {
	return vec.Add(AbsTopLeft(r), AbsSize(r))
}

// Center returns the position of the center of r.
func Center[R Rectangle[V, S], V vec.Vec[V, S], S num.Scalar](r R) V {
	return vec.Add(r.TopLeft(), vec.Div(r.Size(), num.Two[S]()))
}

// Corners returns an iterator over the corners of r in the order
// top-left, top-right, bottom-right, bottom-left, which is clockwise
// on a Y-down screen.
func Corners[R Rectangle[V, S], V vec.Vec[V, S], S num.Scalar](r R) iter.Seq[V] {
	return func(yield func(V) bool) {
		corners := [...]V{r.TopLeft(), TopRight(r), BottomRight(r), BottomLeft(r)}
		for _, c := range corners {
			if !yield(c) {
				return
			}
		}
	}
}

// Contains reports whether p is inside of r, including its edges. The
// normalized geometry of r is used, so the sign of its size does not
// matter.
func Contains[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R, p V) bool {
	inX := AbsLeft(r) <= p.X() && p.X() <= AbsRight(r)
	return inX && AbsTop(r) <= p.Y() && p.Y() <= AbsBottom(r)
}

// ContainsAll reports whether r contains every point yielded by
// points. It stops at the first point that r does not contain.
func ContainsAll[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R, points iter.Seq[V]) bool {
	for p := range points {
		if !Contains(r, p) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether r contains at least one of the points
// yielded by points. It stops at the first point that r contains.
func ContainsAny[R Rectangle[V, S], V vec.Vector[S], S num.Scalar](r R, points iter.Seq[V]) bool {
	for p := range points {
		if Contains(r, p) {
			return true
		}
	}
	return false
}
