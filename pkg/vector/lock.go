package vector

import "sync"

// Priority tiers for the three-level locking scheme.
const (
	// PriorityPrimitive covers push, pop, put, get, add-at, remove-at,
	// delete-at, swap, rotate and apply.
	PriorityPrimitive int32 = 1

	// PriorityComposite covers operations that internally call
	// priority-1 operations: add-ordered, copy, insert-range, move-range,
	// merge.
	PriorityComposite int32 = 2

	// PriorityUser labels a caller-initiated "freeze the vector for a
	// sequence of operations" lock. No method of this package takes the
	// lock at this priority.
	PriorityUser int32 = 3
)

// priorityLock is the vector's single exclusion primitive. mu provides the
// real mutual exclusion, taken with TryLock: a caller that cannot obtain mu
// observes ErrRaceCondition rather than blocking. typ records which
// priority currently holds the lock, for diagnostic reporting via
// LockType() only -- it never gates admission.
//
// There is no priority-based re-entrance: every call to enter, from any
// goroutine including one that already holds mu, contends for mu on equal
// footing. A goroutine that needs to run a composite operation (AddOrdered,
// Copy, InsertRange, MoveRange, Merge) built out of primitive-style logic
// must call that logic directly through its unexported *Locked form (e.g.
// insertAtLocked, removeAtLocked, searchLocked) from inside the composite's
// own critical section, rather than re-invoke the public, locking method --
// the public methods are for callers that do not already hold the lock.
type priorityLock struct {
	mu    sync.Mutex // the actual exclusion primitive
	admin sync.Mutex // protects typ only, held very briefly
	typ   int32      // lock_type: 0 unlocked, else the priority currently admitted
}

// enter attempts to admit a caller at the given priority. It returns
// whether this call is the one that actually took mu (and therefore must
// release it), and an error if the lock was contended and could not be
// admitted.
func (l *priorityLock) enter(priority int32) (acquiredMu bool, err error) {
	if !lockingEnabled.Load() {
		return false, nil
	}

	if !l.mu.TryLock() {
		return false, ErrRaceCondition
	}

	l.admin.Lock()
	l.typ = priority
	l.admin.Unlock()

	return true, nil
}

// exit releases the lock. Only the call that actually acquired mu may
// release it.
func (l *priorityLock) exit(acquiredMu bool) {
	if !acquiredMu {
		return
	}

	l.admin.Lock()
	l.typ = 0
	l.admin.Unlock()

	l.mu.Unlock()
}

// lockType reports the current admitted priority, 0 if no thread is inside
// the vector's critical section.
func (l *priorityLock) lockType() int32 {
	l.admin.Lock()
	defer l.admin.Unlock()

	return l.typ
}

// withLock runs fn as the critical section for a public operation at the
// given priority, guaranteeing release on every exit path including panics.
func withLock(l *priorityLock, priority int32, fn func() error) error {
	acquired, err := l.enter(priority)
	if err != nil {
		return err
	}

	defer l.exit(acquired)

	return fn()
}
