// Package pair provides the structural pairing that lets plain
// containers act as vectors and rectangles.
//
// A pair is anything that can be split into a first and a second
// half of the same type and rebuilt from two such halves. A pair
// whose halves are scalars is a vector. A pair whose halves are
// vectors is a rectangle, with the first half as its top-left corner
// and the second as its size.
//
// The types in this package derive their vector and rectangle
// methods from their pair methods, so, for example,
//
//	Array2[int]{2, 6}                   // vector (2, 6)
//	Tuple2[float64]{4, -1}              // vector (4, -1)
//	Array4[int]{1, 2, 4, 6}             // rectangle at (1, 2) of size (4, 6)
//	Array2[Tuple2[int]]{{1, 2}, {4, 6}} // the same rectangle
//
// User-defined types can do the same by implementing [Pair] and
// forwarding to it in the same way.
package pair

// Pair is a constraint for types that consist of two halves of type T.
type Pair[P, T any] interface {
	First() T
	Second() T
	FromItems(a, b T) P
}

// Array2 is a pair backed by an array. Its half type is T.
type Array2[T any] [2]T

func (p Array2[T]) First() T  { return p[0] }
func (p Array2[T]) Second() T { return p[1] }

func (Array2[T]) FromItems(a, b T) Array2[T] {
	return Array2[T]{a, b}
}

// Tuple2 is a pair backed by a struct. Its half type is T.
type Tuple2[T any] struct {
	A, B T
}

func (p Tuple2[T]) First() T  { return p.A }
func (p Tuple2[T]) Second() T { return p.B }

func (Tuple2[T]) FromItems(a, b T) Tuple2[T] {
	return Tuple2[T]{A: a, B: b}
}

// Array4 is a flat four element array interpreted as two
// Array2[T] halves.
type Array4[T any] [4]T

func (p Array4[T]) First() Array2[T]  { return Array2[T]{p[0], p[1]} }
func (p Array4[T]) Second() Array2[T] { return Array2[T]{p[2], p[3]} }

func (Array4[T]) FromItems(a, b Array2[T]) Array4[T] {
	return Array4[T]{a[0], a[1], b[0], b[1]}
}

// Tuple4 is a flat four field struct interpreted as two Tuple2[T]
// halves.
type Tuple4[T any] struct {
	A, B, C, D T
}

func (p Tuple4[T]) First() Tuple2[T]  { return Tuple2[T]{A: p.A, B: p.B} }
func (p Tuple4[T]) Second() Tuple2[T] { return Tuple2[T]{A: p.C, B: p.D} }

func (Tuple4[T]) FromItems(a, b Tuple2[T]) Tuple4[T] {
	return Tuple4[T]{A: a.A, B: a.B, C: b.A, D: b.B}
}
