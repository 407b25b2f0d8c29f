package vector

// Comparator reports the ordering of a relative to b: negative if a sorts
// before b, zero if they are equal, positive if a sorts after b.
type Comparator[T any] func(a, b T) int

const sortInsertionCutoff = 16

// Sort orders the live range in place using cmp. It is a three-way-partition
// quicksort (Dutch national flag, median-of-three pivot) that falls back to
// insertion sort on small ranges, so runs with many duplicate keys don't
// degrade to quadratic behavior.
func (v *Vector[T]) Sort(cmp Comparator[T]) error {
	return withLock(&v.lock, PriorityPrimitive, func() error {
		if err := v.checkAlive(); err != nil {
			return err
		}

		size := int(v.size())
		if size < 2 {
			return nil
		}

		v.quicksort(0, size-1, cmp)

		return nil
	})
}

func (v *Vector[T]) quicksort(lo, hi int, cmp Comparator[T]) {
	for lo < hi {
		if hi-lo < sortInsertionCutoff {
			v.insertionSort(lo, hi, cmp)
			return
		}

		lt, gt := v.partition3(lo, hi, cmp)

		// Recurse into the smaller side first and loop on the larger
		// one, bounding stack depth to O(log n).
		if lt-lo < hi-gt {
			v.quicksort(lo, lt-1, cmp)
			lo = gt + 1
		} else {
			v.quicksort(gt+1, hi, cmp)
			hi = lt - 1
		}
	}
}

func (v *Vector[T]) insertionSort(lo, hi int, cmp Comparator[T]) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo; j-- {
			pj := v.slotPtr(v.begin + uint64(j))
			pp := v.slotPtr(v.begin + uint64(j-1))

			if cmp(*pj, *pp) >= 0 {
				break
			}

			*pj, *pp = *pp, *pj
		}
	}
}

// partition3 partitions [lo, hi] around a median-of-three pivot into three
// regions (less than, equal to, greater than) and returns the bounds of the
// equal region, so the caller only recurses into the strictly-less and
// strictly-greater sides.
func (v *Vector[T]) partition3(lo, hi int, cmp Comparator[T]) (lt, gt int) {
	mid := lo + (hi-lo)/2
	v.medianOfThreeToFront(lo, mid, hi, cmp)

	pivot := *v.slotPtr(v.begin + uint64(lo))

	lt = lo
	i := lo + 1
	gt = hi

	for i <= gt {
		pi := v.slotPtr(v.begin + uint64(i))
		c := cmp(*pi, pivot)

		switch {
		case c < 0:
			pl := v.slotPtr(v.begin + uint64(lt))
			*pl, *pi = *pi, *pl
			lt++
			i++
		case c > 0:
			pg := v.slotPtr(v.begin + uint64(gt))
			*pg, *pi = *pi, *pg
			gt--
		default:
			i++
		}
	}

	return lt, gt
}

func (v *Vector[T]) medianOfThreeToFront(lo, mid, hi int, cmp Comparator[T]) {
	pl := v.slotPtr(v.begin + uint64(lo))
	pm := v.slotPtr(v.begin + uint64(mid))
	ph := v.slotPtr(v.begin + uint64(hi))

	if cmp(*pm, *pl) < 0 {
		*pm, *pl = *pl, *pm
	}

	if cmp(*ph, *pl) < 0 {
		*ph, *pl = *pl, *ph
	}

	if cmp(*ph, *pm) < 0 {
		*ph, *pm = *pm, *ph
	}

	*pl, *pm = *pm, *pl
}
