package interop

import (
	"math"

	"deedles.dev/vecmath/num"
	"deedles.dev/vecmath/rect"
	"deedles.dev/vecmath/vec"
	"golang.org/x/image/math/fixed"
)

// Fixed is the 26.6 fixed-point scalar type used by font rasterizers.
// It satisfies num.Scalar, so vectors and rectangles can be built
// directly from it.
type Fixed = fixed.Int26_6

// ToFixed converts f to the nearest 26.6 fixed-point value. It is
// suitable for use with vec.MapWith and rect.MapWith.
func ToFixed[T num.Float](f T) Fixed {
	return Fixed(math.Round(float64(f) * 64))
}

// FromFixed converts x to a floating-point value.
func FromFixed[T num.Float](x Fixed) T {
	return T(x) / 64
}

// Point26_6 returns v as a fixed.Point26_6.
func Point26_6[V vec.Vector[Fixed]](v V) fixed.Point26_6 {
	return fixed.Point26_6{X: v.X(), Y: v.Y()}
}

// FromPoint26_6 returns p as a V.
func FromPoint26_6[V vec.Vec[V, Fixed]](p fixed.Point26_6) V {
	return vec.New[V](p.X, p.Y)
}

// Rectangle26_6 returns r as a fixed.Rectangle26_6.
func Rectangle26_6[R rect.Rectangle[V, Fixed], V vec.Vector[Fixed]](r R) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: rect.AbsLeft(r), Y: rect.AbsTop(r)},
		Max: fixed.Point26_6{X: rect.AbsRight(r), Y: rect.AbsBottom(r)},
	}
}

// FromRectangle26_6 returns r as an R whose top-left corner is r.Min
// and whose size is the distance from r.Min to r.Max.
func FromRectangle26_6[R rect.Rect[R, V, Fixed], V vec.Vec[V, Fixed]](r fixed.Rectangle26_6) R {
	return rect.New[R](FromPoint26_6[V](r.Min), FromPoint26_6[V](r.Max.Sub(r.Min)))
}
