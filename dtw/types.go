// Package dtw defines options, modes and sentinel errors for Dynamic Time Warping.
package dtw

import "errors"

// Sentinel errors for DTW operations.
var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")
	// ErrBadInput indicates a nonsensical option value (e.g. Window < -1).
	ErrBadInput = errors.New("dtw: invalid option value")
	// ErrPathNeedsMatrix indicates that path recovery requires MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — one flat (n+1)×(m+1) buffer viewed as n+1 rows.
//     Allows distance + full backtrace of the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows — one flat 2×(m+1) buffer viewed as two alternating rows.
//     Memory: O(m), no path recovery.
//
//   - NoMemory — a single row updated in place with a diagonal carry.
//     Memory: O(m), no path recovery.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota
	// TwoRows mode: keep only the current and previous row.
	TwoRows
	// NoMemory mode: keep a single row, updated in place.
	NoMemory
)

// Coord is one step of a warping path: indices into the first (I) and
// second (J) input sequence.
type Coord struct {
	I, J int
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — Sakoe–Chiba band: maximum |i-j| allowed. -1 disables
//     the constraint, 0 restricts alignment to the diagonal, values below
//     -1 are rejected with ErrBadInput.
//   - SlopePenalty — additional cost for insertion/deletion steps
//     (controls locality bias); 0 makes warping free.
//   - ReturnPath   — if true, DTW backtracks and returns the optimal
//     warping path. Requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix, TwoRows or NoMemory storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the canonical configuration: unlimited window,
// no slope penalty, distance only, FullMatrix storage.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}
