// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the exact-integer Dense matrix.
package matrix_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/katalvlaran/lvpip/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a *Dense from literals or fails the test.
func mustDense(t *testing.T, vals [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(vals)
	require.NoError(t, err)

	return m
}

// TestNewDenseShapes checks that empty shapes are legal and negatives are not.
func TestNewDenseShapes(t *testing.T) {
	m, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, big.NewInt(1)), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetInt64(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(0, 5), matrix.ErrOutOfRange)

	require.NoError(t, m.SetInt64(1, 1, 9))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(9), v.Int64())

	// At hands out a detached copy
	v.SetInt64(0)
	w, _ := m.At(1, 1)
	require.Equal(t, int64(9), w.Int64())
}

func TestGrowShrinkSwap(t *testing.T) {
	m := mustDense(t, [][]int64{{1, 2}, {3, 4}})

	src := matrix.RowOf(5, 6)
	require.NoError(t, m.AddRow(src))
	src[0].SetInt64(99) // AddRow copied the row
	require.Equal(t, "5 6", m.Row(2).String())
	require.ErrorIs(t, m.AddRow(matrix.RowOf(1)), matrix.ErrDimensionMismatch)

	m.AddZeroColumns(1)
	require.Equal(t, 3, m.Cols())
	require.Equal(t, "1 2 0", m.Row(0).String())

	m.AddZeroRows(2)
	require.Equal(t, 5, m.Rows())
	require.True(t, m.Row(4).IsZero())

	require.NoError(t, m.SwapRows(0, 2))
	require.Equal(t, "5 6 0", m.Row(0).String())

	m.EraseToEnd(3)
	require.Equal(t, 3, m.Rows())
	m.EraseToEnd(10) // no-op
	require.Equal(t, 3, m.Rows())
}

// TestCloneEqual ensures Clone() returns a deep copy that does not share storage.
func TestCloneEqual(t *testing.T) {
	m := mustDense(t, [][]int64{{1, -2}, {0, 7}})
	c := m.Clone()
	require.True(t, m.Equal(c))

	c.Row(0)[0].SetInt64(3)
	require.False(t, m.Equal(c))
	require.Equal(t, "[1 -2]\n[0 7]\n", m.String())
}

func TestDenseASCIIRoundTrip(t *testing.T) {
	m := mustDense(t, [][]int64{{1, -2, 3}, {0, 7, -123456789012}})
	var b strings.Builder
	require.NoError(t, m.ASCIIDump(&b))
	require.Equal(t, "2 x 3\n1 -2 3\n0 7 -123456789012\n", b.String())

	back, err := matrix.ASCIILoad(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.True(t, m.Equal(back))

	var b2 strings.Builder
	require.NoError(t, back.ASCIIDump(&b2))
	require.Equal(t, b.String(), b2.String())
}

func TestLoadDenseMalformed(t *testing.T) {
	for _, in := range []string{"", "2 y 3", "1 x 2 4", "1 x 1 abc", "-1 x 2"} {
		_, err := matrix.LoadDense(matrix.NewTokenizer(strings.NewReader(in)))
		require.Error(t, err, in)
	}
	_, err := matrix.LoadDense(matrix.NewTokenizer(strings.NewReader("2 y 3")))
	require.ErrorIs(t, err, matrix.ErrBadDump)
}

func TestTokenizerTypedReaders(t *testing.T) {
	tk := matrix.NewTokenizer(strings.NewReader("true false maybe 12 x"))
	b, err := tk.Bool()
	require.NoError(t, err)
	require.True(t, b)
	b, err = tk.Bool()
	require.NoError(t, err)
	require.False(t, b)
	_, err = tk.Bool()
	require.ErrorIs(t, err, matrix.ErrBadDump)
	n, err := tk.Int()
	require.NoError(t, err)
	require.Equal(t, 12, n)
	require.ErrorIs(t, tk.Expect("y"), matrix.ErrBadDump)
	_, err = tk.Next()
	require.ErrorIs(t, err, matrix.ErrBadDump)
}
