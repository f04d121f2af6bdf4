package rect_test

import (
	"slices"
	"testing"

	"deedles.dev/vecmath/pair"
	"deedles.dev/vecmath/rect"
	"github.com/stretchr/testify/require"
)

type point struct {
	x, y float64
}

func (p point) X() float64 { return p.x }
func (p point) Y() float64 { return p.y }
func (point) New(x, y float64) point { return point{x: x, y: y} }

type box struct {
	tl, size point
}

func (b box) TopLeft() point { return b.tl }
func (b box) Size() point { return b.size }
func (box) New(tl, size point) box { return box{tl: tl, size: size} }

func TestBasics(t *testing.T) {
	r := pair.Array4[int]{1, 2, 4, 6}
	require.Equal(t, pair.Array2[int]{1, 2}, r.TopLeft())
	require.Equal(t, pair.Array2[int]{4, 6}, r.Size())
	require.Equal(t, pair.Array2[int]{3, 5}, rect.Center(r))
	require.Equal(t, 20, rect.Perimeter(r))
	require.Equal(t, 24, rect.Area(r))
	require.True(t, rect.Contains(r, pair.Array2[int]{3, 5}))

	require.Equal(t, 1, rect.Left(r))
	require.Equal(t, 2, rect.Top(r))
	require.Equal(t, 5, rect.Right(r))
	require.Equal(t, 8, rect.Bottom(r))
	require.Equal(t, pair.Array2[int]{5, 2}, rect.TopRight(r))
	require.Equal(t, pair.Array2[int]{1, 8}, rect.BottomLeft(r))
	require.Equal(t, pair.Array2[int]{5, 8}, rect.BottomRight(r))
}

func TestNestedRepresentations(t *testing.T) {
	nested := pair.Array2[pair.Tuple2[int]]{{A: 1, B: 2}, {A: 4, B: 6}}
	require.Equal(t, 24, rect.Area(nested))
	require.Equal(t, pair.Tuple2[int]{A: 3, B: 5}, rect.Center(nested))

	tuple := pair.Tuple4[float64]{A: 1, B: 2, C: 4, D: 6}
	require.Equal(t, 24.0, rect.Area(tuple))
	require.True(t, rect.Contains(tuple, pair.Tuple2[float64]{A: 5, B: 8}))
	require.False(t, rect.Contains(tuple, pair.Tuple2[float64]{A: 5.5, B: 8}))
}

func TestAbs(t *testing.T) {
	pos := pair.Array4[int]{1, 2, 3, 4}
	require.Equal(t, rect.Right(pos), rect.AbsRight(pos))
	require.Equal(t, rect.BottomRight(pos), rect.AbsBottomRight(pos))

	neg := pair.Array4[int]{1, 2, -3, -4}
	require.NotEqual(t, rect.Right(neg), rect.AbsRight(neg))
	require.Equal(t, -2, rect.Right(neg))
	require.Equal(t, 1, rect.AbsRight(neg))
	require.Equal(t, -2, rect.AbsLeft(neg))
	require.Equal(t, -2, rect.AbsTop(neg))
	require.Equal(t, 2, rect.AbsBottom(neg))
	require.Equal(t, 3, rect.AbsWidth(neg))
	require.Equal(t, 4, rect.AbsHeight(neg))
	require.Equal(t, pair.Array2[int]{3, 4}, rect.AbsSize(neg))
	require.Equal(t, pair.Array2[int]{-2, -2}, rect.AbsTopLeft(neg))
	require.Equal(t, pair.Array2[int]{1, -2}, rect.AbsTopRight(neg))
	require.Equal(t, pair.Array2[int]{-2, 2}, rect.AbsBottomLeft(neg))
	require.Equal(t, pair.Array2[int]{1, 2}, rect.AbsBottomRight(neg))
	require.Equal(t, pair.Array4[int]{-2, -2, 3, 4}, rect.Canon(neg))

	require.Equal(t, 12, rect.Area(neg))
	require.Equal(t, -14, rect.Perimeter(neg))
	require.Equal(t, -12, rect.Area(pair.Array4[int]{0, 0, -3, 4}))

	require.True(t, rect.Contains(neg, pair.Array2[int]{0, 0}))
	require.True(t, rect.Contains(neg, pair.Array2[int]{-2, 2}))
	require.False(t, rect.Contains(neg, pair.Array2[int]{2, 0}))
}

func TestSignSafety(t *testing.T) {
	samples := []pair.Array4[float64]{
		{1, 2, 3, 4},
		{1, 2, -3, -4},
		{0, 0, -5, 7},
		{-2, -2, 0, -1},
		{10, -10, 0.5, -0.25},
	}
	for _, r := range samples {
		require.LessOrEqual(t, rect.AbsLeft(r), rect.AbsRight(r), "%v", r)
		require.LessOrEqual(t, rect.AbsTop(r), rect.AbsBottom(r), "%v", r)
		require.True(t, rect.Contains(r, r.TopLeft()), "%v", r)
		require.True(t, rect.Contains(r, rect.BottomRight(r)), "%v", r)
		require.True(t, rect.Contains(r, rect.Center(r)), "%v", r)
	}
}

func TestConstructors(t *testing.T) {
	require.Equal(t,
		pair.Array4[int]{1, 2, 3, 3},
		rect.Square[pair.Array4[int]](pair.Array2[int]{1, 2}, 3),
	)
	require.Equal(t,
		pair.Array4[float64]{-1, 1, 4, 2},
		rect.Centered[pair.Array4[float64]](pair.Array2[float64]{1, 2}, pair.Array2[float64]{4, 2}),
	)
	require.Equal(t,
		pair.Tuple4[float64]{A: 0, B: 1, C: 2, D: 2},
		rect.SquareCentered[pair.Tuple4[float64]](pair.Tuple2[float64]{A: 1, B: 2}, 2),
	)
	require.Equal(t,
		pair.Array4[int]{1, 2, 3, 4},
		rect.New[pair.Array4[int]](pair.Array2[int]{1, 2}, pair.Array2[int]{3, 4}),
	)
}

func TestTransforms(t *testing.T) {
	r := pair.Array4[float64]{1, 2, 4, 6}
	require.Equal(t, pair.Array4[float64]{0, 0, 4, 6}, rect.WithTopLeft(r, pair.Array2[float64]{0, 0}))
	require.Equal(t, pair.Array4[float64]{-2, -3, 4, 6}, rect.WithCenter(r, pair.Array2[float64]{0, 0}))
	require.Equal(t, pair.Array4[float64]{1, 2, 1, 1}, rect.WithSize(r, pair.Array2[float64]{1, 1}))
	require.Equal(t, pair.Array4[float64]{2, 1, 4, 6}, rect.Translated(r, pair.Array2[float64]{1, -1}))
	require.Equal(t, pair.Array4[float64]{1, 2, 2, 3}, rect.Scaled(r, 0.5))
	require.Equal(t, pair.Array4[float64]{1, 2, 8, -6}, rect.Scaled2(r, pair.Array2[float64]{2, -1}))
}

func TestCorners(t *testing.T) {
	r := pair.Array4[int]{1, 2, 4, 6}
	corners := slices.Collect(rect.Corners(r))
	require.Equal(t, []pair.Array2[int]{{1, 2}, {5, 2}, {5, 8}, {1, 8}}, corners)

	var first []pair.Array2[int]
	for c := range rect.Corners(r) {
		first = append(first, c)
		break
	}
	require.Equal(t, []pair.Array2[int]{{1, 2}}, first)
}

func TestContainsAllAny(t *testing.T) {
	r := pair.Array4[int]{0, 0, 10, 10}
	inside := []pair.Array2[int]{{0, 0}, {10, 10}, {5, 3}}
	mixed := []pair.Array2[int]{{5, 5}, {11, 0}}
	outside := []pair.Array2[int]{{-1, 5}, {5, 11}}

	require.True(t, rect.ContainsAll(r, slices.Values(inside)))
	require.False(t, rect.ContainsAll(r, slices.Values(mixed)))
	require.True(t, rect.ContainsAny(r, slices.Values(mixed)))
	require.False(t, rect.ContainsAny(r, slices.Values(outside)))
	require.True(t, rect.ContainsAll(r, slices.Values([]pair.Array2[int]{})))
	require.False(t, rect.ContainsAny(r, slices.Values([]pair.Array2[int]{})))
}

func TestBounding(t *testing.T) {
	points := []pair.Array2[int]{{-1, 0}, {1, 5}, {3, 2}}
	b, ok := rect.Bounding[pair.Array4[int]](slices.Values(points))
	require.True(t, ok)
	require.Equal(t, pair.Array4[int]{-1, 0, 4, 5}, b)
	require.True(t, rect.ContainsAll(b, slices.Values(points)))

	_, ok = rect.Bounding[pair.Array4[int]](slices.Values([]pair.Array2[int]{}))
	require.False(t, ok)

	single, ok := rect.Bounding[pair.Tuple4[float64]](slices.Values([]pair.Tuple2[float64]{{A: 2.5, B: -1}}))
	require.True(t, ok)
	require.Equal(t, pair.Tuple4[float64]{A: 2.5, B: -1}, single)
}

func TestMargins(t *testing.T) {
	r := pair.Array4[int]{0, 0, 8, 8}
	require.True(t, rect.Contains(r, pair.Array2[int]{1, 1}))
	require.False(t, rect.Contains(rect.InnerMargin(r, 2), pair.Array2[int]{1, 1}))
	require.Equal(t, pair.Array4[int]{2, 2, 4, 4}, rect.InnerMargin(r, 2))
	require.Equal(t, pair.Array4[int]{-2, -2, 12, 12}, rect.OuterMargin(r, 2))

	m := rect.Margins[int]{Left: 1, Right: 2, Top: 3, Bottom: 4}
	require.Equal(t, pair.Array4[int]{1, 3, 5, 1}, rect.InnerMargins(r, m))
	require.Equal(t, pair.Array4[int]{-1, -3, 11, 15}, rect.OuterMargins(r, m))

	// Margins use the normalized geometry.
	neg := pair.Array4[int]{8, 8, -8, -8}
	require.Equal(t, rect.InnerMargins(r, m), rect.InnerMargins(neg, m))

	// Oversized margins are not clamped.
	require.Equal(t, pair.Array4[int]{5, 5, -2, -2}, rect.InnerMargin(r, 5))
}

func TestMarginMonotonic(t *testing.T) {
	rects := []pair.Array4[int]{
		{0, 0, 8, 8},
		{-3, 4, 10, 12},
		{5, 5, -9, -8},
		{2, -6, 8, -10},
	}
	for _, r := range rects {
		for m := 1; m <= 3; m++ {
			inner := rect.InnerMargin(r, m)
			for x := -15; x <= 15; x++ {
				for y := -15; y <= 15; y++ {
					p := pair.Array2[int]{x, y}
					if rect.Contains(inner, p) {
						require.True(t, rect.Contains(r, p), "%v margin %v point %v", r, m, p)
					}
					if rect.Contains(r, p) {
						require.True(t, rect.Contains(rect.OuterMargin(r, m), p), "%v margin %v point %v", r, m, p)
					}
				}
			}
		}
	}
}

func TestMap(t *testing.T) {
	weird := pair.Array2[pair.Tuple2[float64]]{{A: 0, B: 1}, {A: 2, B: 5}}
	f32 := rect.Map[pair.Array4[float32]](weird)
	require.Equal(t, pair.Array4[float32]{0, 1, 2, 5}, f32)
	require.Equal(t, pair.Array4[float64]{0, 1, 2, 5}, rect.MapF64(f32))
	require.Equal(t, f32, rect.MapF32(weird))

	u8 := rect.MapWith[pair.Array4[uint8]](f32, func(f float32) uint8 { return uint8(f) })
	require.Equal(t, pair.Array4[uint8]{0, 1, 2, 5}, u8)

	signed := pair.Array4[int]{1, 2, -3, -4}
	mapped := rect.Map[pair.Tuple4[float64]](signed)
	require.Equal(t, pair.Tuple4[float64]{A: 1, B: 2, C: -3, D: -4}, mapped)
	require.Equal(t, signed, rect.Map[pair.Array4[int]](mapped))

	b := rect.Map[box](pair.Array4[int]{1, 2, 3, 4})
	require.Equal(t, 12.0, rect.Area(b))
	require.Equal(t, 6.0, rect.Bottom(b))
}
