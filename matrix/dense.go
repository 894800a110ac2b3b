// SPDX-License-Identifier: MIT

// Package matrix - Dense: exact-integer row matrix & safe accessors.
//
// Purpose:
//   - Provide the "resizable row matrix" storage used by simplex tableaux and
//     parameter contexts: rows are appended, truncated and swapped far more
//     often than they are indexed randomly.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Use Row(i) on hot paths; it returns the live row (mutations are visible).
//   - Use At(i,j) when a detached copy of one entry is wanted.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c); AddRow: O(c) amortized.

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"       // method tag used in error wrappers
	ctxSet    = "Set"      // method tag used in error wrappers
	ctxAddRow = "AddRow"   // method tag used in error wrappers
	ctxSwap   = "SwapRows" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an exact-integer matrix stored as a slice of rows.
//   - c holds the column count shared by every row.
//   - rows holds the rows; len(rows[i]) == c for every i.
type Dense struct {
	rows []Row // row storage (each row owns its entries)
	c    int   // column count (>= 0)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero rows.
//
// Behavior highlights:
//   - Empty shapes (0×k, k×0, 0×0) are legal: tableaux start empty and grow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Dense{rows: make([]Row, rows), c: cols}
	for i := range m.rows {
		m.rows[i] = NewRow(cols)
	}

	return m, nil
}

// NewDenseFromRows builds a matrix from int64 literals; every row must have
// the same length. Returns ErrDimensionMismatch on ragged input.
func NewDenseFromRows(vals [][]int64) (*Dense, error) {
	cols := 0
	if len(vals) > 0 {
		cols = len(vals[0])
	}
	m := &Dense{rows: make([]Row, 0, len(vals)), c: cols}
	for i, v := range vals {
		if len(v) != cols {
			return nil, denseErrorf(ctxAddRow, i, len(v), ErrDimensionMismatch)
		}
		m.rows = append(m.rows, RowOf(v...))
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return len(m.rows) }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// inBounds reports whether (i,j) addresses an existing entry.
func (m *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < len(m.rows) && j >= 0 && j < m.c
}

// At returns a copy of the entry (i,j).
// Errors: ErrOutOfRange (wrapped with coordinates).
func (m *Dense) At(i, j int) (*big.Int, error) {
	if !m.inBounds(i, j) {
		return nil, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return new(big.Int).Set(m.rows[i][j]), nil
}

// Set assigns v to the entry (i,j); v is copied.
// Errors: ErrOutOfRange (wrapped with coordinates).
func (m *Dense) Set(i, j int, v *big.Int) error {
	if !m.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.rows[i][j].Set(v)

	return nil
}

// SetInt64 is Set with an int64 value.
func (m *Dense) SetInt64(i, j int, v int64) error {
	if !m.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.rows[i][j].SetInt64(v)

	return nil
}

// Row returns the live row i. Mutations through the returned Row are
// visible in m. Panics on out-of-range i (hot path, programmer error).
func (m *Dense) Row(i int) Row { return m.rows[i] }

// AddRow appends a deep copy of r.
// Errors: ErrDimensionMismatch when len(r) != Cols().
// Complexity: O(c) amortized.
func (m *Dense) AddRow(r Row) error {
	if len(r) != m.c {
		return denseErrorf(ctxAddRow, len(m.rows), len(r), ErrDimensionMismatch)
	}
	m.rows = append(m.rows, r.Clone())

	return nil
}

// AddZeroRows appends n zero rows.
func (m *Dense) AddZeroRows(n int) {
	for k := 0; k < n; k++ {
		m.rows = append(m.rows, NewRow(m.c))
	}
}

// AddZeroColumns appends n zero columns at the end of every row.
// Complexity: O(r*n).
func (m *Dense) AddZeroColumns(n int) {
	if n <= 0 {
		return
	}
	for i, r := range m.rows {
		for k := 0; k < n; k++ {
			r = append(r, new(big.Int))
		}
		m.rows[i] = r
	}
	m.c += n
}

// EraseToEnd drops every row with index >= n. n beyond Rows() is a no-op.
func (m *Dense) EraseToEnd(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(m.rows) {
		return
	}
	for i := n; i < len(m.rows); i++ {
		m.rows[i] = nil
	}
	m.rows = m.rows[:n]
}

// SwapRows exchanges rows i and j in O(1).
// Errors: ErrOutOfRange.
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.rows) {
		return denseErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// Clone returns a deep copy of m.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{rows: make([]Row, len(m.rows)), c: m.c}
	for i, r := range m.rows {
		out.rows[i] = r.Clone()
	}

	return out
}

// Equal reports whether m and o have the same shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.c != o.c || len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var b strings.Builder
	for _, r := range m.rows {
		b.WriteString("[")
		b.WriteString(r.String())
		b.WriteString("]\n")
	}

	return b.String()
}
