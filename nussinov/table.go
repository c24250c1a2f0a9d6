package nussinov

// Table is the n×n DP score matrix. Cell (i, j) with i <= j holds the
// maximum pairing score attainable inside the subsequence [i..j]; reads
// outside that triangle resolve to 0 through At, which encodes the
// empty-interval boundary convention of the recurrence.
//
// A Table is written once by Fill and read-only afterwards.
type Table struct {
	n     int
	cells []int
}

// newTable allocates an n×n table; all cells start at 0, which already
// covers the base cases table[i][i] = 0 and table[i][i-1] = 0.
func newTable(n int) *Table {
	return &Table{n: n, cells: make([]int, n*n)}
}

// Len returns the table dimension n.
func (t *Table) Len() int { return t.n }

// At returns the score of cell (i, j), resolving any empty or
// out-of-range interval (j < 0 or j < i) to 0. Callers never need to
// guard their indices against the lower boundary.
func (t *Table) At(i, j int) int {
	if j < 0 || j < i {
		return 0
	}

	return t.cells[i*t.n+j]
}

// set writes cell (i, j); fill-internal, i <= j always holds.
func (t *Table) set(i, j, score int) {
	t.cells[i*t.n+j] = score
}
