// Package view provides zero-copy, two-dimensional views over a flat,
// caller-owned buffer: row-major indexed access, mutation and row iteration
// with no copying and no allocation.
//
// What:
//
//   - View[T] wraps a borrowed []T with a row length and a stride (elements
//     between row starts; stride ≥ row length expresses padding or gaps).
//   - MutView[T] is the exclusive counterpart: mutable rows, Downgrade to a
//     read view, Reborrow to lend a shorter-lived exclusive handle.
//   - Construction is either explicit (Of/MutOf: any row length & stride,
//     incomplete trailing rows are simply unreachable) or validated
//     (Grid/MutGrid: the buffer must exactly partition into width rows of
//     height elements).
//
// Why:
//
//   - Image planes, DP matrices, tile maps: one flat allocation, many rows.
//   - Strided access: every other row, windows with gaps — a naive reshape
//     into [][]T cannot express these and costs an allocation per row.
//   - Handing a routine mutable access to a region without giving up the
//     buffer: Reborrow locks the original until the loan is released.
//
// Complexity:
//
//   - Row / RowMut / Index / IndexMut / Next: O(1), zero allocations.
//   - Of / MutOf / Grid / MutGrid / Downgrade / Reborrow: O(1).
//
// Error channels (kept strictly apart):
//
//   - Checked: Row/RowMut return (row, false) for out-of-range indices;
//     Grid/MutGrid return ErrDimensionMismatch. Absence is a normal outcome.
//   - Trusted: Index/IndexMut panic on out-of-range indices — a contract
//     violation is a programmer error, and an out-of-bounds access never
//     reads or writes adjacent memory.
//
// Iteration is single-pass and destructive: Next advances the view's own
// cursor, so a partially iterated view reflects the advanced cursor under
// subsequent Row/Index. View is a value type — copy it first to keep an
// untouched origin.
package view
