// Package gridgraph defines core types and options for grid analysis over
// zero-copy views.
package gridgraph

import (
	"github.com/mintlu8/slice2d/view"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a flat row-major grid as a graph. Width and Height define
// dimensions; cells is a validated view with Height rows of Width elements
// over the caller's buffer — nothing is copied. Conn and LandThreshold are
// set from GridOptions during construction; neighborOffsets is precomputed
// for adjacency traversals.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	LandThreshold   int
	cells           view.View[int]
	neighborOffsets [][2]int
}
