package dtw

import (
	"math"

	"github.com/mintlu8/slice2d/view"
)

// DTW — Dynamic Time Warping
//
// Algorithm Outline (FullMatrix):
//  1. Let n = len(a), m = len(b). Lay out an (n+1)×(m+1) DP matrix D in one
//     flat buffer, rows addressed through a mutable view.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n, j = 1..m:
//     out-of-window cells (|i-j| > Window, when constrained) get +∞;
//     otherwise
//     cost  = |a[i-1] - b[j-1]|
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = cost + min(ins, del, match)
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) to (1,1) through a downgraded
//     (read-only) view, preferring the diagonal predecessor on ties.
//
// TwoRows keeps a flat 2×(m+1) buffer with alternating row views; NoMemory
// keeps a single row with a diagonal carry. Both produce the same distance
// as FullMatrix and no path.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows, NoMemory)

// DTW computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error); path is nil unless opts.ReturnPath.
// A nil opts means DefaultOptions.
//
// Errors: ErrEmptyInput, ErrBadInput (Window < -1 or unknown MemoryMode),
// ErrPathNeedsMatrix (ReturnPath without FullMatrix).
func DTW(a, b []float64, opts *Options) (distance float64, path []Coord, err error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return 0, nil, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	switch o.MemoryMode {
	case FullMatrix:
		return fullMatrix(a, b, o)
	case TwoRows:
		return twoRows(a, b, o)
	case NoMemory:
		return noMemory(a, b, o)
	default:
		return 0, nil, ErrBadInput
	}
}

// inWindow reports whether cell (i,j) lies inside the Sakoe–Chiba band.
func inWindow(i, j, w int) bool {
	if w < 0 {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= w
}

// fullMatrix fills the complete DP matrix and optionally backtracks the path.
func fullMatrix(a, b []float64, o Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	// One allocation: (n+1) rows of (m+1), contiguous.
	dp := view.MutOf(make([]float64, (n+1)*(m+1)), m+1, m+1)
	first := dp.IndexMut(0)
	for j := 1; j <= m; j++ {
		first[j] = inf
	}
	for i := 1; i <= n; i++ {
		prev := dp.Index(i - 1)
		curr := dp.IndexMut(i)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !inWindow(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min3(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
		}
	}

	ro := dp.Downgrade()
	distance := ro.Index(n)[m]
	if !o.ReturnPath || math.IsInf(distance, 1) {
		return distance, nil, nil
	}

	return distance, backtrack(ro, n, m), nil
}

// backtrack reconstructs the optimal warping path from (n,m) down to (1,1),
// preferring the diagonal predecessor on ties.
func backtrack(d view.View[float64], n, m int) []Coord {
	inf := math.Inf(1)
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		match, ins, del := inf, inf, inf
		if i > 1 && j > 1 {
			match = d.Index(i - 1)[j-1]
		}
		if i > 1 {
			ins = d.Index(i - 1)[j]
		}
		if j > 1 {
			del = d.Index(i)[j-1]
		}
		switch {
		case match <= ins && match <= del:
			i, j = i-1, j-1
		case ins <= del:
			i--
		default:
			j--
		}
	}
	// reverse in place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// twoRows runs the same recurrence over a flat 2×(m+1) buffer, the current
// and previous row alternating between the two view rows.
func twoRows(a, b []float64, o Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := view.MutOf(make([]float64, 2*(m+1)), m+1, m+1)
	first := dp.IndexMut(0)
	first[0] = 0
	for j := 1; j <= m; j++ {
		first[j] = inf
	}
	for i := 1; i <= n; i++ {
		prev := dp.Index((i - 1) % 2)
		curr := dp.IndexMut(i % 2)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !inWindow(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min3(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
		}
	}

	return dp.Index(n % 2)[m], nil, nil
}

// noMemory runs the recurrence over a single row with a diagonal carry.
func noMemory(a, b []float64, o Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}
	for i := 1; i <= n; i++ {
		diag := row[0] // D[i-1][j-1] carry
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j] // D[i-1][j] before overwrite
			if !inWindow(i, j, o.Window) {
				row[j] = inf
			} else {
				cost := math.Abs(a[i-1] - b[j-1])
				row[j] = cost + min3(up+o.SlopePenalty, row[j-1]+o.SlopePenalty, diag)
			}
			diag = up
		}
	}

	return row[m], nil, nil
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
