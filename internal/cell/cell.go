// Package cell provides raw single-value storage for ring buffer slots.
//
// A Cell holds zero or one value without tracking which of the two states
// it is in; the owner decides that with its own bookkeeping (for the mpsc
// ring, the per-slot readiness flag). Nothing runs implicitly when a cell
// is overwritten or abandoned, so a slot can cycle between empty and full
// independent of the cell's own lifetime.
package cell

// Cell is a storage slot for a single value of type T.
//
// Cell is not safe for concurrent use; callers must ensure that at most
// one goroutine accesses a given cell at a time.
type Cell[T any] struct {
	v T
}

// Put stores v in the cell, replacing any previous value.
func (c *Cell[T]) Put(v T) {
	c.v = v
}

// Take moves the stored value out of the cell. The cell is reset to the
// zero value so it does not pin references the caller has taken ownership of.
func (c *Cell[T]) Take() T {
	v := c.v
	var zero T
	c.v = zero
	return v
}

// Drop discards the stored value without returning it, releasing any
// references it held.
func (c *Cell[T]) Drop() {
	var zero T
	c.v = zero
}
