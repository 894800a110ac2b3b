// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Row kernels.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvpip/matrix"
	"github.com/stretchr/testify/require"
)

// TestRowCloneIndependence ensures Clone() never aliases entries.
func TestRowCloneIndependence(t *testing.T) {
	r := matrix.RowOf(1, 2, 3)
	c := r.Clone()
	c[0].SetInt64(42)

	require.Equal(t, int64(1), r[0].Int64()) // receiver untouched
	require.Equal(t, int64(42), c[0].Int64())
	require.True(t, r.Clone().Equal(r))
}

func TestRowGCD(t *testing.T) {
	cases := []struct {
		name string
		row  matrix.Row
		seed int64
		want int64
	}{
		{"all zero no seed", matrix.RowOf(0, 0), 0, 0},
		{"seed only", matrix.RowOf(0, 0), -6, 6},
		{"mixed signs", matrix.RowOf(-4, 6, 0, 10), 0, 2},
		{"seed shrinks", matrix.RowOf(6, 12), 4, 2},
		{"coprime", matrix.RowOf(3, 5), 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.row.GCD(big.NewInt(tc.seed)).Int64())
		})
	}
}

func TestRowNormalize(t *testing.T) {
	r := matrix.RowOf(-4, 6, 0, 10)
	r.Normalize()
	require.True(t, r.Equal(matrix.RowOf(-2, 3, 0, 5)))

	// normalizing twice is the same as once
	r.Normalize()
	require.True(t, r.Equal(matrix.RowOf(-2, 3, 0, 5)))

	z := matrix.RowOf(0, 0)
	z.Normalize()
	require.True(t, z.IsZero())
}

func TestRowArithmetic(t *testing.T) {
	r := matrix.RowOf(1, 2)
	require.NoError(t, r.AddMul(matrix.RowOf(3, -1), big.NewInt(2)))
	require.True(t, r.Equal(matrix.RowOf(7, 0)))

	require.NoError(t, r.Sub(matrix.RowOf(1, 1)))
	require.True(t, r.Equal(matrix.RowOf(6, -1)))

	r.Scale(big.NewInt(-3))
	require.True(t, r.Equal(matrix.RowOf(-18, 3)))

	require.NoError(t, r.ExactDiv(big.NewInt(3)))
	require.True(t, r.Equal(matrix.RowOf(-6, 1)))

	r.Negate()
	require.Equal(t, "6 -1", r.String())

	require.ErrorIs(t, r.ExactDiv(big.NewInt(0)), matrix.ErrZeroDivisor)
	require.ErrorIs(t, r.AddMul(matrix.RowOf(1), big.NewInt(1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, r.Sub(matrix.RowOf(1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, r.CopyFrom(matrix.RowOf(1)), matrix.ErrDimensionMismatch)
}
