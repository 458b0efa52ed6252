// Package slice2d is a zero-copy toolkit for treating flat, contiguous
// buffers as two-dimensional grids — views first, algorithms on top.
//
// 🚀 What is slice2d?
//
//	A small, allocation-free library that brings together:
//		• view      — immutable & exclusive 2D views over a borrowed []T,
//		  parameterized by row length and stride (padding & gaps welcome)
//		• gridgraph — connected components and minimal-cost island expansion
//		  over a grid addressed through a view, never a [][]int copy
//		• dtw       — Dynamic Time Warping whose DP matrix lives in one flat
//		  buffer, rows carved out by views
//
// ✨ Why choose slice2d?
//
//   - Zero-copy – a view is three words; no reshaping, no reallocation
//   - Two error channels – checked lookups return absence, trusted indexing
//     panics on contract violation, never reads adjacent memory
//   - Borrow discipline – a MutView is exclusive; Downgrade shares reads,
//     Reborrow lends a shorter-lived handle and locks the original
//   - Pure Go – no cgo, generics over any element type
//
// Quick ASCII example, row length 2 with stride 3 over 7 elements:
//
//	[ 1 2 | 3 ][ 4 5 | 6 ] 7
//	  row0  gap  row1  gap incomplete
//
// rows surface as [1 2] and [4 5]; 3, 6 and the trailing 7 never do.
//
//	go get github.com/mintlu8/slice2d
package slice2d
