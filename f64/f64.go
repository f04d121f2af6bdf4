// Package f64 provides standard float64 geometry types.
//
// Import it if a project uses float64s for geometry and does not
// need its own vector, rectangle or circle types.
package f64

import (
	"deedles.dev/vecmath/circle"
	"deedles.dev/vecmath/pair"
)

type (
	// Dim is the scalar type used by this package.
	Dim = float64

	// Vec2 is a standard 2D vector.
	Vec2 = pair.Array2[Dim]

	// Rect is a standard rectangle.
	Rect = pair.Array4[Dim]

	// Circ is a standard circle.
	Circ = circle.Tuple[Vec2, Dim]
)
