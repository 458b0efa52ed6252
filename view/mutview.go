package view

// ensure asserts that this handle currently holds exclusivity.
// Violations are programmer errors: using a view that has been released, or
// using a view while a Reborrow of it is outstanding.
func (m *MutView[T]) ensure() {
	if m.released {
		panic(panicReleased)
	}
	if m.lent {
		panic(panicLent)
	}
}

// Row returns row i for reading, or (nil, false) when i is out of range.
// Identical contract to View.Row.
// Complexity: O(1), zero allocations.
func (m *MutView[T]) Row(i int) ([]T, bool) {
	m.ensure()
	lo, hi, ok := rowSpan(i, m.rowLen, m.stride, len(m.buf))
	if !ok {
		return nil, false
	}

	return m.buf[lo:hi:hi], true
}

// RowMut returns row i for writing, or (nil, false) when i is out of range.
// Writes land in the backing buffer immediately; there is no buffering.
// Complexity: O(1), zero allocations.
func (m *MutView[T]) RowMut(i int) ([]T, bool) {
	m.ensure()
	lo, hi, ok := rowSpan(i, m.rowLen, m.stride, len(m.buf))
	if !ok {
		return nil, false
	}

	return m.buf[lo:hi:hi], true
}

// Index returns row i for reading, trusting the caller that i is in range;
// out-of-range panics. Trusted counterpart of Row.
// Complexity: O(1), zero allocations.
func (m *MutView[T]) Index(i int) []T {
	m.ensure()
	lo, hi, ok := rowSpan(i, m.rowLen, m.stride, len(m.buf))
	if !ok {
		panic(panicRowOutOfRange)
	}

	return m.buf[lo:hi:hi]
}

// IndexMut returns row i for writing, trusting the caller that i is in range;
// out-of-range panics. Trusted counterpart of RowMut.
// Complexity: O(1), zero allocations.
func (m *MutView[T]) IndexMut(i int) []T {
	m.ensure()
	lo, hi, ok := rowSpan(i, m.rowLen, m.stride, len(m.buf))
	if !ok {
		panic(panicRowOutOfRange)
	}

	return m.buf[lo:hi:hi]
}

// Downgrade returns an immutable View over the same memory and the same
// (rowLen, stride). The MutView is neither consumed nor invalidated; take as
// many sequential downgrades as needed. The caller must not write through
// the MutView while still reading through a downgraded View.
// Complexity: O(1).
func (m *MutView[T]) Downgrade() View[T] {
	m.ensure()

	return View[T]{stride: m.stride, rowLen: m.rowLen, buf: m.buf}
}

// Reborrow lends exclusivity to a new, shorter-lived MutView over the same
// memory and parameters. Until the returned handle is Released, every
// operation on this view panics — at any moment exactly one live MutView
// addresses the region.
// Complexity: O(1).
func (m *MutView[T]) Reborrow() *MutView[T] {
	m.ensure()
	m.lent = true

	return &MutView[T]{stride: m.stride, rowLen: m.rowLen, buf: m.buf, parent: m}
}

// Release returns exclusivity to the parent this handle was reborrowed from
// and deadens the handle: further use panics. Releasing a root view (one not
// produced by Reborrow) is a no-op. Releasing while this handle has its own
// outstanding Reborrow panics — loans unwind innermost-first.
// Complexity: O(1).
func (m *MutView[T]) Release() {
	if m.parent == nil {
		return
	}
	m.ensure()
	m.parent.lent = false
	m.parent = nil
	m.buf = nil
	m.released = true
}

// RowLen returns the number of elements exposed per row.
// Complexity: O(1).
func (m *MutView[T]) RowLen() int { return m.rowLen }

// Stride returns the number of elements between consecutive row starts.
// Complexity: O(1).
func (m *MutView[T]) Stride() int { return m.stride }

// Len returns the length of the backing buffer.
// Complexity: O(1).
func (m *MutView[T]) Len() int { return len(m.buf) }

// Rows returns the number of addressable rows.
// Complexity: O(1).
func (m *MutView[T]) Rows() int {
	if m.stride <= 0 || m.rowLen > len(m.buf) {
		return 0
	}

	return (len(m.buf)-m.rowLen)/m.stride + 1
}
