package pair

// The methods below make every pair a vector when its half type is a
// scalar and a rectangle when its half type is a vector. Which of the
// two applies is decided by the constraints of the function a pair is
// passed to.

func (p Array2[T]) X() T { return p.First() }
func (p Array2[T]) Y() T { return p.Second() }
func (p Array2[T]) TopLeft() T { return p.First() }
func (p Array2[T]) Size() T { return p.Second() }
func (p Array2[T]) New(a, b T) Array2[T] { return p.FromItems(a, b) }

func (p Tuple2[T]) X() T { return p.First() }
func (p Tuple2[T]) Y() T { return p.Second() }
func (p Tuple2[T]) TopLeft() T { return p.First() }
func (p Tuple2[T]) Size() T { return p.Second() }
func (p Tuple2[T]) New(a, b T) Tuple2[T] { return p.FromItems(a, b) }

func (p Array4[T]) TopLeft() Array2[T] { return p.First() }
func (p Array4[T]) Size() Array2[T] { return p.Second() }

func (p Tuple4[T]) TopLeft() Tuple2[T] { return p.First() }
func (p Tuple4[T]) Size() Tuple2[T] { return p.Second() }

func (p Array4[T]) New(topLeft, size Array2[T]) Array4[T] {
	return p.FromItems(topLeft, size)
}

func (p Tuple4[T]) New(topLeft, size Tuple2[T]) Tuple4[T] {
	return p.FromItems(topLeft, size)
}
