// Package dtw computes Dynamic Time Warping (DTW) distances between numeric
// time series, with optional alignment path and memory optimizations. The DP
// matrix lives in one flat buffer addressed through zero-copy views — one
// allocation regardless of matrix size.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  It's widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - FullMatrix mode: exact O(N·M) time & memory, supports path backtrace
//   - TwoRows mode: O(M) memory via a two-row flat buffer
//   - NoMemory mode: O(M) memory, single row updated in place
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	import "github.com/mintlu8/slice2d/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10        // Sakoe–Chiba band ±10
//	opts.SlopePenalty = 0.5 // penalty for 1×2 vs 2×1 steps
//	opts.ReturnPath = true  // also return warp path
//
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
//
// See examples in example_test.go.
package dtw
