// Package vector implements a general-purpose dynamic array with
// bidirectional growth, an optional fixed-capacity circular mode, optional
// priority-locked thread safety, secure wiping of removed elements, and a
// by-reference vs. by-value storage discipline chosen at construction.
//
// A Vector[T] grows and shrinks at both ends in amortized O(1), unlike a
// classical append-only slice which only grows cheaply at the tail. Capacity
// is tracked as two independent halves, capLeft and capRight, so a run of
// front-inserts does not force an O(n) shift of the whole backing store.
package vector
