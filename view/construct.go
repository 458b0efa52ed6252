package view

import (
	"fmt"
	"math"
)

// validateShape guards explicit-mode construction. A non-positive stride
// (the iteration cursor could never advance) or a negative row length is a
// programmer error and panics; a zero row length is legal and yields empty
// rows.
func validateShape(rowLen, stride int) {
	if stride <= 0 {
		panic(panicBadStride)
	}
	if rowLen < 0 {
		panic(panicBadRowLen)
	}
}

// gridErrorf wraps ErrDimensionMismatch with constructor context.
func gridErrorf(fn string, width, height int) error {
	return fmt.Errorf("view.%s(%d,%d): %w", fn, width, height, ErrDimensionMismatch)
}

// partitions reports whether a buffer of length n splits into exactly
// width rows of height elements. width*height is checked against overflow:
// a product that overflows cannot equal any real buffer length.
func partitions(n, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width > math.MaxInt/height {
		return false
	}

	return n == width*height
}

// Of constructs an immutable View with the given row length and stride.
// Construction always succeeds for a valid shape; trailing elements that do
// not fill a complete row are unreachable through the view, not an error.
// Complexity: O(1), zero allocations.
func Of[T any](buf []T, rowLen, stride int) View[T] {
	validateShape(rowLen, stride)

	return View[T]{stride: stride, rowLen: rowLen, buf: buf}
}

// MutOf constructs an exclusive MutView with the given row length and stride.
// The caller must not touch buf through any other path while the view or any
// handle derived from it is in use. Same shape rules as Of.
// Complexity: O(1).
func MutOf[T any](buf []T, rowLen, stride int) *MutView[T] {
	validateShape(rowLen, stride)

	return &MutView[T]{stride: stride, rowLen: rowLen, buf: buf}
}

// Grid constructs an immutable View by validating dimensions: it succeeds
// only if len(buf) == width*height exactly, and is then equivalent to
// Of(buf, height, height) — width rows of height contiguous elements, no
// padding. Non-positive or mismatched dimensions return ErrDimensionMismatch;
// validated construction never panics and never partially constructs.
// Complexity: O(1), zero allocations.
func Grid[T any](buf []T, width, height int) (View[T], error) {
	if !partitions(len(buf), width, height) {
		return View[T]{}, gridErrorf("Grid", width, height)
	}

	return View[T]{stride: height, rowLen: height, buf: buf}, nil
}

// MutGrid constructs an exclusive MutView by validating dimensions, with the
// same contract as Grid.
// Complexity: O(1).
func MutGrid[T any](buf []T, width, height int) (*MutView[T], error) {
	if !partitions(len(buf), width, height) {
		return nil, gridErrorf("MutGrid", width, height)
	}

	return &MutView[T]{stride: height, rowLen: height, buf: buf}, nil
}
