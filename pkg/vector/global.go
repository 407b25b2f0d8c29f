package vector

import "sync/atomic"

// lockingEnabled is a single process-wide boolean that toggles locking on or
// off for every vector, for single-threaded use. Every vector shares it;
// flipping it off turns every withLock call into a fast, uncontended no-op.
var lockingEnabled atomic.Bool //nolint:gochecknoglobals // intentional process-wide switch

func init() {
	lockingEnabled.Store(true)
}

// DisableGlobalLocking turns off priority locking for every vector in the
// process. Intended for single-threaded callers that want to skip the
// (small but nonzero) locking overhead; it is not meant to be toggled back
// and forth from multiple goroutines.
func DisableGlobalLocking() {
	lockingEnabled.Store(false)
}

// EnableGlobalLocking restores the default locking behavior.
func EnableGlobalLocking() {
	lockingEnabled.Store(true)
}
