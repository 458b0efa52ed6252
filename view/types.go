// Package view defines the two view types and their shared addressing rule.
//
// Both types resolve a row the same way: for row index i the origin is
// i*stride and the row region is the half-open range [origin, origin+rowLen)
// of the backing buffer. Every operation is that single computation plus a
// bounds check.

package view

// View is an immutable two-dimensional view over a borrowed buffer.
// It owns nothing; copying a View copies a three-word header, and each copy
// carries an independent iteration cursor (see Next).
type View[T any] struct {
	stride int // elements between the start of consecutive rows
	rowLen int // elements exposed per row
	buf    []T // borrowed backing storage; advanced destructively by Next
}

// MutView is an exclusive two-dimensional view over a borrowed buffer.
// Exactly one live MutView may address a region at a time: Reborrow lends
// exclusivity to a derived handle and every operation on the original panics
// until the loan is released. MutView is handed out by pointer only, so the
// borrow state is shared rather than silently duplicated.
type MutView[T any] struct {
	stride   int
	rowLen   int
	buf      []T
	parent   *MutView[T] // set on reborrowed handles; nil on the root
	lent     bool        // an outstanding Reborrow exists
	released bool        // this handle was released back to its parent
}

// rowSpan maps a row index onto [lo, hi) within a buffer of length n, or
// reports the index unaddressable. stride is positive by construction, so
// i ≤ (n-rowLen)/stride bounds i*stride without overflow; an index large
// enough to overflow is therefore out of range, never wrapped in-bounds.
// A zero-value view (stride 0) has no addressable rows.
func rowSpan(i, rowLen, stride, n int) (lo, hi int, ok bool) {
	if i < 0 || stride <= 0 || rowLen > n || i > (n-rowLen)/stride {
		return 0, 0, false
	}
	lo = i * stride

	return lo, lo + rowLen, true
}

// RowLen returns the number of elements exposed per row.
// Complexity: O(1).
func (v View[T]) RowLen() int { return v.rowLen }

// Stride returns the number of elements between consecutive row starts.
// Complexity: O(1).
func (v View[T]) Stride() int { return v.stride }

// Len returns the length of the remaining backing buffer.
// Complexity: O(1).
func (v View[T]) Len() int { return len(v.buf) }

// Rows returns the number of addressable rows: the count of indices i for
// which i*stride+rowLen fits the remaining buffer.
// Complexity: O(1).
func (v View[T]) Rows() int {
	if v.stride <= 0 || v.rowLen > len(v.buf) {
		return 0
	}

	return (len(v.buf)-v.rowLen)/v.stride + 1
}
