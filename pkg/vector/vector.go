package vector

import "fmt"

// Flags are construction-time properties.
type Flags uint8

const (
	// flagByReference: slots hold borrowed handles; the vector never
	// frees the pointee and does not copy elements on insert. Chosen by
	// instantiating Vector[T] with a pointer T, see WithByReference.
	flagByReference Flags = 1 << iota

	// flagSecureWipe: zero or custom-wipe an element's bytes before
	// freeing or overwriting it.
	flagSecureWipe

	// flagCircular: fixed capacity; inserts wrap and overwrite via
	// modulo indexing.
	flagCircular

	// flagSnapshotSafe: set by WithSnapshotSafety. No operation reads it;
	// mutations shift slots in place whether or not it is set.
	flagSnapshotSafe
)

// InsertMode controls how an out-of-range index is handled by insert-style
// operations.
type InsertMode uint8

const (
	// ModeStrict fails ErrIndexOutOfBounds when the index is out of range.
	ModeStrict InsertMode = iota

	// ModeAppendOnOverflow coerces an out-of-range index to the tail.
	ModeAppendOnOverflow
)

const defaultInitialCapacity = 8

// Vector is a bidirectionally-growable, optionally circular, optionally
// thread-safe dynamic array.
type Vector[T any] struct {
	lock priorityLock

	slots []T // backing arena, length always == capLeft+capRight

	capLeft, capRight uint64
	begin, end        uint64
	prevEnd           uint64
	initCapacity      uint64

	flags  Flags
	status uint8 // bit 0: custom wipe function installed

	wipeFn WipeFunc[T]

	// Adaptive binary search positional hysteresis.
	balance int
	bottom  uint64

	destroyed bool
}

// Option configures a Vector at construction time.
type Option[T any] func(*buildOpts[T])

type buildOpts[T any] struct {
	capacity uint64
	flags    Flags
	wipeFn   WipeFunc[T]
}

// WithCapacity sets the initial capacity (the shrink floor). Defaults to 8.
func WithCapacity[T any](n uint64) Option[T] {
	return func(o *buildOpts[T]) { o.capacity = n }
}

// WithByReference marks the vector as by-reference: it stores the handles
// T hands it (typically a pointer type) without copying or ever freeing
// the pointee.
func WithByReference[T any]() Option[T] {
	return func(o *buildOpts[T]) { o.flags |= flagByReference }
}

// WithSecureWipe enables zeroing of an element's storage before it is
// freed or overwritten, using the default zero-value wipe.
func WithSecureWipe[T any]() Option[T] {
	return func(o *buildOpts[T]) { o.flags |= flagSecureWipe }
}

// WithSecureWipeFunc enables secure wipe and installs a custom wipe
// callback in place of the default zero-value wipe.
func WithSecureWipeFunc[T any](fn WipeFunc[T]) Option[T] {
	return func(o *buildOpts[T]) {
		o.flags |= flagSecureWipe
		o.wipeFn = fn
	}
}

// WithCircular fixes the vector's capacity at the requested value; size is
// pinned at capacity-1 for the vector's entire lifetime and inserts
// overwrite the oldest element.
func WithCircular[T any]() Option[T] {
	return func(o *buildOpts[T]) { o.flags |= flagCircular }
}

// WithSnapshotSafety records the full-reentrancy flag on the vector. The flag
// changes no behavior: mutations still shift slots in place, no fresh buffer
// is built and swapped in, and the package has no Snapshot method.
func WithSnapshotSafety[T any]() Option[T] {
	return func(o *buildOpts[T]) { o.flags |= flagSnapshotSafe }
}

// New creates a vector with the given options.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	cfg := buildOpts[T]{capacity: defaultInitialCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.capacity < 1 {
		return nil, fmt.Errorf("initial capacity must be >= 1: %w", ErrIndexOutOfBounds)
	}

	v := &Vector[T]{
		flags:        cfg.flags,
		wipeFn:       cfg.wipeFn,
		initCapacity: cfg.capacity,
	}

	if cfg.wipeFn != nil {
		v.status |= 1
	}

	if v.flags&flagCircular != 0 {
		v.slots = make([]T, cfg.capacity)
		v.capLeft = 0
		v.capRight = cfg.capacity
		v.begin = 0
		v.end = cfg.capacity - 1

		return v, nil
	}

	// Minimal one-slot left headroom, requested capacity reserved on the
	// right; begin == end == 1 per invariant 5. The first front-insert
	// always observes capLeft == 1 and grows.
	v.capLeft = 1
	v.capRight = cfg.capacity
	v.slots = make([]T, v.capLeft+v.capRight)
	v.begin = 1
	v.end = 1

	return v, nil
}

// IsByReference reports whether the vector was constructed WithByReference.
func (v *Vector[T]) IsByReference() bool { return v.flags&flagByReference != 0 }

// IsSecureWipe reports whether the vector was constructed WithSecureWipe or
// WithSecureWipeFunc.
func (v *Vector[T]) IsSecureWipe() bool { return v.flags&flagSecureWipe != 0 }

// IsCircular reports whether the vector was constructed WithCircular.
func (v *Vector[T]) IsCircular() bool { return v.flags&flagCircular != 0 }

// Len returns the logical size, end - begin.
func (v *Vector[T]) Len() int { return int(v.end - v.begin) }

// Cap returns the logical capacity, capLeft + capRight.
func (v *Vector[T]) Cap() int { return int(v.capLeft + v.capRight) }

// LockType reports the current priority admitted into the vector's critical
// section, 0 if no thread is inside it.
func (v *Vector[T]) LockType() int32 { return v.lock.lockType() }

// checkInvariant1 enforces 0 <= begin <= end <= capLeft+capRight, returning
// ErrVectorCorrupted if begin > end was observed.
func (v *Vector[T]) checkInvariant1() error {
	if v.begin > v.end {
		return ErrVectorCorrupted
	}

	return nil
}

// Destroy releases the vector's slots and marks the vector undefined for
// further use. If secure-wipe is enabled, every live element is wiped first,
// in by-reference mode too (there the default wipe zeroes the pointee, as on
// removal); the pointees of a by-reference vector are never freed.
func (v *Vector[T]) Destroy() error {
	return withLock(&v.lock, PriorityPrimitive, func() error {
		if v.destroyed {
			return ErrUndefinedVector
		}

		if v.IsSecureWipe() {
			for i := v.begin; i < v.end; i++ {
				wipeSlot(v.slotPtr(i), v.wipeFn, v.IsByReference())
			}
		}

		v.slots = nil
		v.destroyed = true

		return nil
	})
}

func (v *Vector[T]) checkAlive() error {
	if v.destroyed {
		return ErrUndefinedVector
	}

	return nil
}

// slotPtr returns the address of the physical slot backing absolute index i.
// For circular vectors i is folded modulo initCapacity; for all other
// vectors i indexes the arena directly.
func (v *Vector[T]) slotPtr(i uint64) *T {
	if v.IsCircular() {
		return &v.slots[i%v.initCapacity]
	}

	return &v.slots[i]
}

// Get returns a copy of (by-value) or the handle stored at (by-reference)
// the element at logical index i.
func (v *Vector[T]) Get(i int) (T, error) {
	var zero T

	err := withLock(&v.lock, PriorityPrimitive, func() error {
		if aerr := v.checkAlive(); aerr != nil {
			return aerr
		}

		if i < 0 || uint64(i) >= v.size() {
			return ErrIndexOutOfBounds
		}

		zero = *v.slotPtr(v.begin + uint64(i))

		return nil
	})

	return zero, err
}

// size is the unlocked, internal version of Len used by callers that
// already hold the vector's lock.
func (v *Vector[T]) size() uint64 { return v.end - v.begin }

// PutAt overwrites the element at logical index i without changing size.
// Out-of-bounds behavior mirrors circular-mode modulo folding or strict
// failure.
func (v *Vector[T]) PutAt(i int, value T) error {
	return withLock(&v.lock, PriorityPrimitive, func() error {
		return v.putAtLocked(i, value)
	})
}

func (v *Vector[T]) putAtLocked(i int, value T) error {
	if err := v.checkAlive(); err != nil {
		return err
	}

	if v.IsCircular() {
		idx := v.begin + uint64(i)
		if i < 0 {
			return ErrIndexOutOfBounds
		}

		slot := v.slotPtr(idx)
		if v.IsSecureWipe() {
			wipeSlot(slot, v.wipeFn, v.IsByReference())
		}

		*slot = value

		return nil
	}

	if i < 0 || uint64(i) >= v.size() {
		return ErrIndexOutOfBounds
	}

	slot := v.slotPtr(v.begin + uint64(i))
	if v.IsSecureWipe() {
		wipeSlot(slot, v.wipeFn, v.IsByReference())
	}

	*slot = value

	return nil
}
