// File: dtw/example_test.go
package dtw_test

import (
	"fmt"

	"github.com/mintlu8/slice2d/dtw"
)

////////////////////////////////////////////////////////////////////////////////
// Example: distance and path
////////////////////////////////////////////////////////////////////////////////

// ExampleDTW aligns a sequence against a stretched copy of itself: the
// repeated element is absorbed by one deletion step, so the distance is zero
// and the path shows where the warp happened.
//
// Complexity: O(N·M) time, O(N·M) memory (FullMatrix)
func ExampleDTW() {
	a := []float64{0, 1, 2}
	b := []float64{0, 1, 1, 2}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%g\npath=%v\n", dist, path)

	// Output:
	// distance=0
	// path=[{0 0} {1 1} {1 2} {2 3}]
}

////////////////////////////////////////////////////////////////////////////////
// Example: distance only, rolling storage
////////////////////////////////////////////////////////////////////////////////

// ExampleDTW_twoRows computes a distance with O(M) memory: the DP state is a
// flat two-row buffer, no path recovery.
//
// Complexity: O(N·M) time, O(M) memory
func ExampleDTW_twoRows() {
	a := []float64{1, 2, 3}
	b := []float64{2, 3, 4}
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows

	dist, _, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%g\n", dist)

	// Output:
	// distance=2
}
