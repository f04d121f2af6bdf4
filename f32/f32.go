// Package f32 provides standard float32 geometry types.
//
// Import it if a project uses float32s for geometry and does not
// need its own vector, rectangle or circle types.
package f32

import (
	"deedles.dev/vecmath/circle"
	"deedles.dev/vecmath/pair"
)

type (
	// Dim is the scalar type used by this package.
	Dim = float32

	// Vec2 is a standard 2D vector.
	Vec2 = pair.Array2[Dim]

	// Rect is a standard rectangle.
	Rect = pair.Array4[Dim]

	// Circ is a standard circle.
	Circ = circle.Tuple[Vec2, Dim]
)
