package vector

// gallopBalanceThreshold: once balance reaches this many slots of distance
// between consecutive hits, positional hysteresis is considered unreliable
// and Search falls back to a plain bisection over the whole range.
const gallopBalanceThreshold = 32

// gallopMinSize: at or below this size a full bisection is already cheap
// enough that galloping from bottom buys nothing.
const gallopMinSize = 64

// Search looks up target in the live range, which must already be sorted by
// cmp. It returns the index of a matching element and true, or -- when no
// element compares equal -- the index at which target would need to be
// inserted to keep the range sorted, and false.
//
// balance and bottom give the search positional hysteresis described for
// adaptive binary search: if balance >= gallopBalanceThreshold or the live
// range is no larger than gallopMinSize, Search falls back to a plain
// bisection over the whole range. Otherwise it gallops outward from bottom in
// geometric doubling steps (1, 2, 4, ...) until target is bracketed, then
// finalizes with a bounded search inside that bracket. After every call,
// balance is replaced with the absolute distance between the previous and
// new bottom -- a close pair of consecutive hits keeps galloping active; a
// wide jump disables it until the hit pattern tightens up again.
func (v *Vector[T]) Search(target T, cmp Comparator[T]) (int, bool, error) {
	var (
		idx   int
		found bool
	)

	err := withLock(&v.lock, PriorityPrimitive, func() error {
		var serr error

		idx, found, serr = v.searchLocked(target, cmp)

		return serr
	})

	return idx, found, err
}

// searchLocked is the unexported core of Search, for composite operations
// (AddOrdered) that already hold v's lock.
func (v *Vector[T]) searchLocked(target T, cmp Comparator[T]) (int, bool, error) {
	if err := v.checkAlive(); err != nil {
		return 0, false, err
	}

	size := int(v.size())
	if size == 0 {
		v.balance = 0
		v.bottom = 0

		return 0, false, nil
	}

	prevBottom := int(v.bottom)
	if prevBottom < 0 {
		prevBottom = 0
	}

	if prevBottom >= size {
		prevBottom = size - 1
	}

	var (
		idx   int
		found bool
	)

	if v.balance >= gallopBalanceThreshold || size <= gallopMinSize {
		idx, found = v.boundedSearch(0, size-1, target, cmp)
	} else {
		lo, hi := v.gallopBracket(prevBottom, size, target, cmp)
		idx, found = v.boundedSearch(lo, hi, target, cmp)
	}

	diff := idx - prevBottom
	if diff < 0 {
		diff = -diff
	}

	v.balance = diff
	v.bottom = uint64(idx)

	return idx, found, nil
}

// gallopBracket expands outward from start in geometric doubling steps
// until it finds a pair of indices [lo, hi] (inclusive, clamped to the live
// range) known to bracket target: v[lo] <= target <= v[hi] (or one bound
// clamped to the range edge because target lies beyond it).
func (v *Vector[T]) gallopBracket(start, size int, target T, cmp Comparator[T]) (int, int) {
	switch c := cmp(v.at(start), target); {
	case c == 0:
		return start, start
	case c < 0:
		prev := start
		step := 1
		next := start + step

		for next < size && cmp(v.at(next), target) < 0 {
			prev = next
			step *= 2
			next = start + step
		}

		if next >= size {
			next = size - 1
		}

		return prev, next
	default:
		prev := start
		step := 1
		next := start - step

		for next >= 0 && cmp(v.at(next), target) > 0 {
			prev = next
			step *= 2
			next = start - step
		}

		if next < 0 {
			next = 0
		}

		return next, prev
	}
}

// boundedSearch is a plain bisection (not a monobound search) over the
// inclusive range
// [lo, hi]: every element before lo is known < target and every element
// after hi is known > target (trivially true for the unbracketed full-range
// call). It returns the matching index and true, or the insertion index and
// false.
func (v *Vector[T]) boundedSearch(lo, hi int, target T, cmp Comparator[T]) (int, bool) {
	for lo <= hi {
		mid := lo + (hi-lo)/2

		switch c := cmp(v.at(mid), target); {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return lo, false
}

// at returns the element at logical index i without bounds checking; only
// used internally once a caller already holds the lock and has validated i.
func (v *Vector[T]) at(i int) T {
	return *v.slotPtr(v.begin + uint64(i))
}
