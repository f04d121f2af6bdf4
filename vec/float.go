package vec

import "deedles.dev/vecmath/num"

// The functions in this file require a floating-point scalar type.

// Dist returns the Euclidean distance between v and u.
func Dist[V, U Vector[S], S num.Float](v V, u U) S {
	dx, dy := v.X()-u.X(), v.Y()-u.Y()
	return num.Sqrt(num.Pow(dx, num.Two[S]()) + num.Pow(dy, num.Two[S]()))
}

// Mag returns the magnitude of v.
func Mag[V Vector[S], S num.Float](v V) S {
	return num.Sqrt(num.Pow(v.X(), num.Two[S]()) + num.Pow(v.Y(), num.Two[S]()))
}

// Unit returns the unit vector pointing in the same direction as v.
// If v's magnitude is less than num.Epsilon, the zero vector is
// returned instead.
func Unit[V Vec[V, S], S num.Float](v V) V {
	mag := Mag(v)
	if mag < num.Epsilon[S]() {
		return v.New(num.Zero[S](), num.Zero[S]())
	}
	return Div(v, mag)
}

// RotateAbout rotates v about pivot by the given angle in radians.
// The rotation is counter-clockwise in a Y-up coordinate system,
// which appears clockwise in the Y-down system that package rect
// assumes.
func RotateAbout[V Vec[V, S], U Vector[S], S num.Float](v V, pivot U, radians S) V {
	sin, cos := num.Sin(radians), num.Cos(radians)
	o := Sub(v, pivot)
	r := v.New(
		o.X()*cos-o.Y()*sin,
		o.X()*sin+o.Y()*cos,
	)
	return Add(r, pivot)
}

// Lerp linearly interpolates each component of v towards u. See
// num.Lerp.
func Lerp[V Vec[V, S], U Vector[S], S num.Float](v V, u U, t S) V {
	return v.New(num.Lerp(v.X(), u.X(), t), num.Lerp(v.Y(), u.Y(), t))
}

// Atan returns the angle of v in radians, in (-π, π].
func Atan[V Vector[S], S num.Float](v V) S {
	return num.Atan2(v.Y(), v.X())
}

// AngleAsVector returns the unit vector at the given angle.
func AngleAsVector[V Vec[V, S], S num.Float](radians S) V {
	return New[V](num.Cos(radians), num.Sin(radians))
}

// ApproxEqual reports whether each component of v is within
// num.Epsilon of the corresponding component of u.
func ApproxEqual[V, U Vector[S], S num.Float](v V, u U) bool {
	return num.IsZero(v.X()-u.X()) && num.IsZero(v.Y()-u.Y())
}
