package view

// Row returns row i as a slice of exactly RowLen elements, or (nil, false)
// when i is out of range. Absence is a normal outcome, not an error — this is
// the checked counterpart of Index.
// Complexity: O(1), zero allocations.
func (v View[T]) Row(i int) ([]T, bool) {
	lo, hi, ok := rowSpan(i, v.rowLen, v.stride, len(v.buf))
	if !ok {
		return nil, false
	}

	return v.buf[lo:hi:hi], true
}

// Index returns row i, trusting the caller that i is in range.
// An out-of-range index is a contract violation and panics; the returned
// slice is capacity-capped so no path through it reaches adjacent memory.
// Complexity: O(1), zero allocations.
func (v View[T]) Index(i int) []T {
	lo, hi, ok := rowSpan(i, v.rowLen, v.stride, len(v.buf))
	if !ok {
		panic(panicRowOutOfRange)
	}

	return v.buf[lo:hi:hi]
}

// Next produces the next row of a single-pass, forward-only iteration:
// the first RowLen elements of the remaining buffer, after which the buffer
// is advanced by Stride (clamped to empty past the end). Once fewer than
// RowLen elements remain — or, for zero-length rows, once nothing remains —
// Next reports exhaustion, and keeps reporting it.
//
// Iteration is destructive: it advances the view's own stored buffer, so
// Row/Index on a partially iterated view see the advanced cursor. Copy the
// View value first to iterate without disturbing the original.
// Complexity: O(1) per call, zero allocations.
func (v *View[T]) Next() ([]T, bool) {
	if len(v.buf) < v.rowLen || len(v.buf) == 0 {
		return nil, false
	}
	row := v.buf[:v.rowLen:v.rowLen]
	if v.stride < len(v.buf) {
		v.buf = v.buf[v.stride:]
	} else {
		v.buf = v.buf[len(v.buf):]
	}

	return row, true
}
