package rect

import (
	"iter"

	"deedles.dev/vecmath/num"
	"deedles.dev/vecmath/vec"
	"deedles.dev/xiter"
)

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, w S) (left, right R) {
	h := Height(r)
	left = WithSize(r, vec.New[V](w, h))
	right = New[R](vec.Add(r.TopLeft(), vec.New[V](w, 0)), vec.New[V](Width(r)-w, h))
	return left, right
}

func hsplitHalf[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R) (left, right R) {
	return hsplit(r, Width(r)/num.Two[S]())
}

// vsplit splits a rectangle into two rectangles arranged vertically.
func vsplit[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R, h S) (top, bottom R) {
	w := Width(r)
	top = WithSize(r, vec.New[V](w, h))
	bottom = New[R](vec.Add(r.TopLeft(), vec.New[V](0, h)), vec.New[V](w, Height(r)-h))
	return top, bottom
}

func vsplitHalf[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](r R) (top, bottom R) {
	return vsplit(r, Height(r)/num.Two[S]())
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]f64.Rect, 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](tiles []R, r R) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an interator instead of inserting them
// into a slice.
func TiledRightThenDown[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](numtiles int, r R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if numtiles <= 0 {
			return
		}
		r := Canon(r)
		if numtiles == 1 {
			yield(r)
			return
		}

		split, next := hsplitHalf[R, V, S], vsplitHalf[R, V, S]

		c, n := split(r)
		for range numtiles - 2 {
			if !yield(c) {
				return
			}

			split, next = next, split
			c, n = split(n)
		}

		if yield(c) {
			yield(n)
		}
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](tiles []R, r R) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](numtiles int, r R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if numtiles <= 0 {
			return
		}
		r := Canon(r)
		if numtiles == 1 {
			yield(r)
			return
		}

		if _, ok := tileCount[S](numtiles - 1); !ok {
			return
		}

		w := Width(r)
		first, rem := hsplit(r, w-w/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]f64.Rect, 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](tiles []R, r R) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator. It yields nothing if numtiles
// cannot be represented exactly by S, as can happen with narrow integer
// scalars. The other tiling iterators share this behavior.
func TiledEvenVertically[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](numtiles int, r R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if numtiles <= 0 {
			return
		}
		n, ok := tileCount[S](numtiles)
		if !ok {
			return
		}
		r := Canon(r)

		shift := vec.New[V](0, Height(r)/n)
		c, _ := vsplit(r, shift.Y())
		for range numtiles {
			if !yield(c) {
				return
			}
			c = Translated(c, shift)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]f64.Rect, 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](tiles []R, r R) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](numtiles int, r R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if numtiles <= 0 {
			return
		}
		n, ok := tileCount[S](numtiles)
		if !ok {
			return
		}
		r := Canon(r)

		shift := vec.New[V](Width(r)/n, 0)
		c, _ := hsplit(r, shift.X())
		for range numtiles {
			if !yield(c) {
				return
			}
			c = Translated(c, shift)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](tiles []R, r R, cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](numtiles int, r R, cols int) iter.Seq[R] {
	return func(yield func(R) bool) {
		if numtiles <= 0 || cols <= 0 {
			return
		}

		remaining := numtiles
		numrows := remaining / cols
		if remaining%cols != 0 {
			numrows++
		}
		if _, ok := tileCount[S](numrows); !ok {
			return
		}
		if _, ok := tileCount[S](min(numtiles, cols)); !ok {
			return
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if remaining <= 0 {
				break
			}

			numcols := min(remaining, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			remaining -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](first R) iter.Seq[R] {
	return func(yield func(R) bool) {
		shift := vec.New[V](0, AbsHeight(first))
		for {
			if !yield(first) {
				return
			}
			first = Translated(first, shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
func ArrangeVerticalStack[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](rects []R) {
	if len(rects) <= 1 {
		return
	}

	prev := Canon(rects[0])
	for _, rect := range rects {
		if w := AbsWidth(rect); w > Width(prev) {
			prev = WithSize(prev, vec.WithX(prev.Size(), w))
		}
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = New[R](
			BottomLeft(prev),
			vec.New[V](Width(prev), AbsHeight(rects[i])),
		)
		prev = rects[i]
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Edges that are not
// specified are centered.
func Align[R Rect[R, V, S], V vec.Vec[V, S], S num.Scalar](outer, inner R, edges Edges) R {
	outer, inner = Canon(outer), Canon(inner)
	inner = WithCenter(inner, Center(outer))

	tl, size := inner.TopLeft(), inner.Size()
	switch {
	case edges&EdgeTop != 0:
		tl = vec.WithY(tl, Top(outer))
		if edges&EdgeBottom != 0 {
			size = vec.WithY(size, Height(outer))
		}
	case edges&EdgeBottom != 0:
		tl = vec.WithY(tl, Bottom(outer)-size.Y())
	}
	switch {
	case edges&EdgeLeft != 0:
		tl = vec.WithX(tl, Left(outer))
		if edges&EdgeRight != 0 {
			size = vec.WithX(size, Width(outer))
		}
	case edges&EdgeRight != 0:
		tl = vec.WithX(tl, Right(outer)-size.X())
	}

	return New[R](tl, size)
}

// tileCount converts a tile count to S, reporting false if S cannot
// represent it exactly.
func tileCount[S num.Scalar](n int) (S, bool) {
	s := S(n)
	return s, int(s) == n
}

func insertTilesFromSeq[R any](tiles []R, s iter.Seq[R]) {
	for i, t := range xiter.Enumerate(s) {
		if i >= len(tiles) {
			return
		}
		tiles[i] = t
	}
}
