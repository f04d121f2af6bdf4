package f64_test

import (
	"math"
	"testing"

	"deedles.dev/vecmath/circle"
	"deedles.dev/vecmath/f32"
	"deedles.dev/vecmath/f64"
	"deedles.dev/vecmath/rect"
	"deedles.dev/vecmath/vec"
	"github.com/stretchr/testify/require"
)

func TestBundle(t *testing.T) {
	v := f64.Vec2{3, 4}
	require.Equal(t, f64.Dim(5), vec.Mag(v))

	r := f64.Rect{0, 0, 10, 10}
	c := f64.Circ{A: rect.Center(r), B: 5}
	require.Equal(t, r, circle.ToSquare[f64.Rect](c))
	require.InDelta(t, 25*math.Pi, circle.Area(c), 1e-12)

	narrow := rect.MapF32(r)
	require.Equal(t, f32.Rect{0, 0, 10, 10}, narrow)
	require.Equal(t, f32.Circ{A: f32.Vec2{5, 5}, B: 5}, circle.Map[f32.Circ](c))
}
