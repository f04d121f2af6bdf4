// Package num provides the numeric capabilities that the rest of
// vecmath is built on.
//
// Capabilities are expressed as type-set constraints, so any type
// whose underlying type is one of Go's built-in integer or
// floating-point types satisfies them without declaring anything,
// including user-defined types such as fixed.Int26_6.
package num

import "golang.org/x/exp/constraints"

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Unsigned is a constraint for any unsigned integer type.
type Unsigned interface {
	constraints.Unsigned
}

// Float is a constraint for floating-point scalars. In addition to
// everything a Scalar can do, floats support Pow, the trigonometric
// functions, Pi and Epsilon.
type Float interface {
	constraints.Float
}

// Signed is a constraint for scalars that can be negated without
// wrapping around.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Scalar is a constraint for the types that vectors, rectangles and
// circles can be built from. Scalars support ordered arithmetic,
// Abs and the Zero, One and Two constants.
type Scalar interface {
	constraints.Integer | constraints.Float
}
