// Package queue holds the in-memory show queue and the operations that drive
// it.
//
// A Queue is an ordered, mutable sequence of Show records. Insertion order is
// preserved until the caller explicitly sorts. Titles are lookup keys but are
// not unique: Remove and Search act on the first exact, case-sensitive match.
//
// Add enforces the accepted ranges for episodes and rating. Replace does not,
// so callers loading previously persisted data get exactly what was stored.
// Failed operations never leave the queue partially modified.
//
// The queue does no locking; it has a single owner at a time.
package queue
