package vector

// Structural operations: swap, range-swap, and rotation. All run at
// PriorityPrimitive: none of them changes size, so none needs to touch the
// capacity engine.

// Swap exchanges the elements at logical indices i and j.
func (v *Vector[T]) Swap(i, j int) error {
	return withLock(&v.lock, PriorityPrimitive, func() error {
		if err := v.checkAlive(); err != nil {
			return err
		}

		size := int(v.size())
		if i < 0 || j < 0 || i >= size || j >= size {
			return ErrIndexOutOfBounds
		}

		if i == j {
			return nil
		}

		pi := v.slotPtr(v.begin + uint64(i))
		pj := v.slotPtr(v.begin + uint64(j))
		*pi, *pj = *pj, *pi

		return nil
	})
}

// SwapRange exchanges n elements starting at logical index i with n elements
// starting at logical index j. The two ranges must not overlap.
func (v *Vector[T]) SwapRange(i, j, n int) error {
	return withLock(&v.lock, PriorityPrimitive, func() error {
		if err := v.checkAlive(); err != nil {
			return err
		}

		if n < 0 {
			return ErrIndexOutOfBounds
		}

		if n == 0 {
			return nil
		}

		size := int(v.size())
		if i < 0 || j < 0 || i+n > size || j+n > size {
			return ErrIndexOutOfBounds
		}

		if rangesOverlap(i, j, n) {
			return ErrIndexOutOfBounds
		}

		for k := 0; k < n; k++ {
			pi := v.slotPtr(v.begin + uint64(i+k))
			pj := v.slotPtr(v.begin + uint64(j+k))
			*pi, *pj = *pj, *pi
		}

		return nil
	})
}

func rangesOverlap(i, j, n int) bool {
	if i == j {
		return true
	}

	if i < j {
		return i+n > j
	}

	return j+n > i
}

// RotateLeft rotates the live range left by n positions (the first n
// elements move to the tail). n is reduced modulo size; a no-op when size
// is 0 or n is a multiple of size.
func (v *Vector[T]) RotateLeft(n int) error {
	return withLock(&v.lock, PriorityPrimitive, func() error {
		if err := v.checkAlive(); err != nil {
			return err
		}

		size := int(v.size())
		if size == 0 {
			return nil
		}

		n = ((n % size) + size) % size
		if n == 0 {
			return nil
		}

		return v.rotateLocked(n)
	})
}

// RotateRight rotates the live range right by n positions (the last n
// elements move to the head). Equivalent to RotateLeft(size - n).
func (v *Vector[T]) RotateRight(n int) error {
	return withLock(&v.lock, PriorityPrimitive, func() error {
		if err := v.checkAlive(); err != nil {
			return err
		}

		size := int(v.size())
		if size == 0 {
			return nil
		}

		n = ((n % size) + size) % size
		if n == 0 {
			return nil
		}

		return v.rotateLocked(size - n)
	})
}

// rotateLocked performs an in-place three-reversal rotation of the live
// range by n positions to the left (the classic reverse-reverse-reverse
// trick, grounded in the same "no auxiliary full-size buffer" discipline as
// the rest of the capacity engine).
func (v *Vector[T]) rotateLocked(n int) error {
	size := int(v.size())

	v.reverse(0, n)
	v.reverse(n, size)
	v.reverse(0, size)

	return nil
}

func (v *Vector[T]) reverse(lo, hi int) {
	for lo < hi-1 {
		pl := v.slotPtr(v.begin + uint64(lo))
		ph := v.slotPtr(v.begin + uint64(hi-1))
		*pl, *ph = *ph, *pl
		lo++
		hi--
	}
}
