// Package view: sentinel errors and panic-message constants.
// Checked operations return sentinels (match with errors.Is); trusted
// operations and constructors panic on programmer errors, always with one of
// the named constants below. No magic strings.

package view

import "errors"

// ErrDimensionMismatch is returned by Grid/MutGrid when the buffer length
// does not equal width*height exactly (including overflowing or non-positive
// dimensions). Validated construction never panics and never partially
// constructs a view.
var ErrDimensionMismatch = errors.New("view: buffer length does not match width*height")

// Panic messages for the trusted channel and for constructor contract
// violations (programmer errors).
const (
	panicRowOutOfRange = "view: row index out of range"
	panicBadStride     = "view: stride must be positive"
	panicBadRowLen     = "view: row length must be non-negative"
	panicLent          = "view: mutable view used while lent out via Reborrow"
	panicReleased      = "view: mutable view used after Release"
)
