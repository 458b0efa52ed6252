// Package gridgraph provides utilities to treat a flat grid of integer cell
// values as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of “land” cells
//   - Shortest-path expansions between components
//
// Cells with value < LandThreshold are “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"fmt"

	"github.com/mintlu8/slice2d/view"
)

// New constructs a GridGraph over a flat row-major buffer of width*height
// cells. The buffer is borrowed, not copied: the caller must not mutate it
// while the GridGraph is in use.
// Returns ErrEmptyGrid if width or height is not positive,
// ErrBadDimensions if the buffer length does not equal width*height.
// Complexity: O(1) time and memory.
func New(cells []int, width, height int, opts GridOptions) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	v, err := view.Grid(cells, height, width)
	if err != nil {
		return nil, fmt.Errorf("gridgraph.New(%dx%d, len %d): %w", width, height, len(cells), ErrBadDimensions)
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           width,
		Height:          height,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		cells:           v,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Value returns the cell value at (x,y). The row is fetched through the
// trusted view index; callers must pass in-bounds coordinates.
// Complexity: O(1).
func (gg *GridGraph) Value(x, y int) int {
	return gg.cells.Index(y)[x]
}

// Row exposes grid row y as a zero-copy slice of Width elements, or
// (nil, false) when y is out of range.
// Complexity: O(1).
func (gg *GridGraph) Row(y int) ([]int, bool) {
	return gg.cells.Row(y)
}

// isLand reports whether the cell at (x,y) meets the land threshold.
// Complexity: O(1).
func (gg *GridGraph) isLand(x, y int) bool {
	return gg.Value(x, y) >= gg.LandThreshold
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
