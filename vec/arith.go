package vec

import "deedles.dev/vecmath/num"

// Neg returns -v.
func Neg[V Vec[V, S], S num.Signed](v V) V {
	return v.New(-v.X(), -v.Y())
}

// Add returns v+u.
func Add[V Vec[V, S], U Vector[S], S num.Scalar](v V, u U) V {
	return v.New(v.X()+u.X(), v.Y()+u.Y())
}

// Sub returns v-u.
func Sub[V Vec[V, S], U Vector[S], S num.Scalar](v V, u U) V {
	return v.New(v.X()-u.X(), v.Y()-u.Y())
}

// Mul returns v scaled by s.
func Mul[V Vec[V, S], S num.Scalar](v V, s S) V {
	return v.New(v.X()*s, v.Y()*s)
}

// Mul2 returns the component-wise product of v and u.
func Mul2[V Vec[V, S], U Vector[S], S num.Scalar](v V, u U) V {
	return v.New(v.X()*u.X(), v.Y()*u.Y())
}

// Div returns v with both components divided by s.
func Div[V Vec[V, S], S num.Scalar](v V, s S) V {
	return v.New(v.X()/s, v.Y()/s)
}

// Div2 returns the component-wise quotient of v and u.
func Div2[V Vec[V, S], U Vector[S], S num.Scalar](v V, u U) V {
	return v.New(v.X()/u.X(), v.Y()/u.Y())
}

// Dot returns the dot product of v and u.
func Dot[V, U Vector[S], S num.Scalar](v V, u U) S {
	return v.X()*u.X() + v.Y()*u.Y()
}
