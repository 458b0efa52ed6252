// Package gridgraph treats a flat, row-major grid of cells as a graph,
// enabling component analysis and minimal-cost “island” expansions — all
// addressed through a zero-copy view, never a [][]int copy.
//
// What:
//
//   - GridGraph borrows a flat []int buffer and reads it through a
//     view.View[int] with one row per grid row.
//   - Identifies connected components (“islands”) of cells with
//     value ≥ LandThreshold.
//   - Computes minimal conversions (0-1 BFS) to connect two island sets.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//   - The grid usually already lives in one flat allocation (tile maps,
//     heightmaps); analyzing it should not duplicate it.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)   (d = 4 or 8 neighbors).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: requested dimensions have no rows or no columns.
//   - ErrBadDimensions: buffer length does not equal width×height.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//
// The grid borrows the caller's buffer for its lifetime; the caller must not
// mutate the buffer while analyses run.
package gridgraph
