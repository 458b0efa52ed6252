package view_test

import (
	"testing"

	"github.com/mintlu8/slice2d/view"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Checked lookup and trusted indexing
//----------------------------------------------------------------------------//

// TestView_RowAndIndex walks the 3×3 grid over [1..9]: Row and Index agree
// on every in-range row, Row reports absence past the end, Index panics.
func TestView_RowAndIndex(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v, err := view.Grid(buf, 3, 3)
	require.NoError(t, err)

	want := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	for i, w := range want {
		row, ok := v.Row(i)
		require.True(t, ok, "row %d must exist", i)
		require.Equal(t, w, row)
		require.Equal(t, w, v.Index(i))
	}

	_, ok := v.Row(3)
	require.False(t, ok, "row 3 of a 3-row grid must be absent")
	_, ok = v.Row(-1)
	require.False(t, ok, "negative index must be absent")

	require.Panics(t, func() { v.Index(3) })
	require.Panics(t, func() { v.Index(-1) })
}

// TestView_StridedAddressing checks the addressing identity
// Row(i)[k] == buf[i*stride+k] for a padded layout (stride > row length).
func TestView_StridedAddressing(t *testing.T) {
	const rowLen, stride = 2, 3
	buf := []int{10, 11, 12, 13, 14, 15, 16, 17, 18}
	v := view.Of(buf, rowLen, stride)

	for i := 0; i < v.Rows(); i++ {
		row, ok := v.Row(i)
		require.True(t, ok)
		require.Len(t, row, rowLen)
		for k := 0; k < rowLen; k++ {
			require.Equal(t, buf[i*stride+k], row[k], "Row(%d)[%d]", i, k)
		}
	}
}

// TestView_RowCapacityCapped ensures a returned row cannot reach the padding
// behind it: appending to the row must reallocate, not overwrite buf.
func TestView_RowCapacityCapped(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6}
	v := view.Of(buf, 2, 3)

	row, ok := v.Row(0)
	require.True(t, ok)
	require.Equal(t, 2, cap(row))

	_ = append(row, 99)
	require.Equal(t, 3, buf[2], "append past a row must not clobber the gap element")
}

// TestView_ZeroValue ensures a zero View (say, kept after an ignored Grid
// error) behaves as empty rather than crashing.
func TestView_ZeroValue(t *testing.T) {
	var v view.View[int]
	require.Equal(t, 0, v.Rows())
	_, ok := v.Row(0)
	require.False(t, ok)
	_, ok = v.Next()
	require.False(t, ok)
	require.Panics(t, func() { v.Index(0) })
}

//----------------------------------------------------------------------------//
// Iteration
//----------------------------------------------------------------------------//

// TestView_IterateContiguous replays the 3×3 scenario: three rows in order,
// then sticky exhaustion on every further call.
func TestView_IterateContiguous(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v, err := view.Grid(buf, 3, 3)
	require.NoError(t, err)

	want := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	for _, w := range want {
		row, ok := v.Next()
		require.True(t, ok)
		require.Equal(t, w, row)
	}
	for call := 0; call < 3; call++ {
		_, ok := v.Next()
		require.False(t, ok, "exhaustion must be sticky (call %d)", call)
	}
}

// TestView_IterateStrided verifies gaps and incomplete-tail discard: row
// length 2, stride 3 over [1..7] yields [1,2] and [4,5] only — 3 and 6 fall
// in gaps, the trailing 7 is an incomplete row.
func TestView_IterateStrided(t *testing.T) {
	v := view.Of([]int{1, 2, 3, 4, 5, 6, 7}, 2, 3)

	var got [][]int
	for row, ok := v.Next(); ok; row, ok = v.Next() {
		got = append(got, row)
	}
	require.Equal(t, [][]int{{1, 2}, {4, 5}}, got)
}

// TestView_IterationIsDestructive pins down the cursor coupling: after one
// Next, Row(0) on the same view addresses what used to be row 1, while a
// value copy taken beforehand still sees the original origin.
func TestView_IterationIsDestructive(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v, err := view.Grid(buf, 3, 3)
	require.NoError(t, err)
	origin := v // independent cursor; copying a View copies its header

	row, ok := v.Next()
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3}, row)
	require.Equal(t, 2, v.Rows(), "one row consumed")

	shifted, ok := v.Row(0)
	require.True(t, ok)
	require.Equal(t, []int{4, 5, 6}, shifted, "indexing follows the advanced cursor")

	first, ok := origin.Row(0)
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3}, first, "the copy is untouched")
}
