// Package vecmath is the root of a set of packages for 2D vector,
// rectangle and circle geometry over plain Go values.
//
// Geometry is not tied to particular types. A vector is anything with
// X, Y and New methods, a rectangle is anything with TopLeft, Size and
// New methods, and a circle is anything with Center, Radius and New
// methods. The arrays and structs in package pair already qualify:
//
//	a := pair.Array2[int]{2, 6}
//	b := pair.Tuple2[int]{4, -1}
//	vec.Add(a, b) // pair.Array2[int]{6, 5}
//	vec.Dot(a, b) // 2
//
//	r := pair.Array4[int]{1, 2, 4, 6}
//	rect.Area(r)                             // 24
//	rect.Contains(r, pair.Array2[int]{3, 5}) // true
//
//	c := f64.Circ{A: f64.Vec2{2, 3}, B: 4}
//	circle.Contains(c, f64.Vec2{0, 1}) // true
//
// Every operation is a generic function that is resolved at compile
// time. Nothing allocates and nothing is dispatched through an
// interface value.
//
// The packages are layered:
//
//   - num: scalar constraints and numeric primitives
//   - pair: containers that split into two halves
//   - vec: vectors
//   - rect: axis-aligned rectangles and layouts
//   - circle: circles
//   - f32, f64: ready-made vector, rectangle and circle types
//   - interop: conversions to and from image and fixed-point types
package vecmath
