// SPDX-License-Identifier: MIT

// Package pip - compatibility check of a parametric constraint with a context.
//
// Purpose:
//   - Decide whether ctx ∪ {cnst >= 0} admits a non-negative integer point.
//
// Implementation:
//   - Stage 1: every parameter is a basic (column) variable at 0; every
//     context row is a non-basic variable with its own scaling factor.
//   - Stage 2: dual simplex; pivot on a row with a negative constant using
//     the lexicographically minimal positive column.
//   - Stage 3: on a rational vertex, add one Gomory cut per fractional
//     non-basic parameter and continue; an integral vertex answers true.
//   - A row with a negative constant and no positive entry answers false.
//
// Notes:
//   - A non-zero step limit bounds pivots plus cut rounds; an exhausted
//     check answers true.
package pip

import (
	"math/big"

	"github.com/katalvlaran/lvpip/matrix"
)

// compatibilityCheck reports whether ctx and cnst >= 0 have a common
// non-negative integer solution. ctx is not modified.
func compatibilityCheck(ctx *matrix.Dense, cnst matrix.Row, limit int) bool {
	s := ctx.Clone()
	debugAssert(s.AddRow(cnst) == nil, "compatibilityCheck: row width mismatch")
	numRows, numCols := s.Rows(), s.Cols()
	numVars := numCols - 1

	scaling := make([]*big.Int, numRows)
	for i := range scaling {
		scaling[i] = big.NewInt(1)
	}
	basis := make([]bool, 0, numVars+numRows)
	mapping := make([]int, 0, numVars+numRows)
	varRow := make([]int, 0, numRows)
	varColumn := make([]int, 0, numCols)
	varColumn = append(varColumn, -1) // column 0 is the constant term
	for j := 1; j <= numVars; j++ {
		basis = append(basis, true)
		mapping = append(mapping, j)
		varColumn = append(varColumn, j-1)
	}
	for i := 0; i < numRows; i++ {
		basis = append(basis, false)
		mapping = append(mapping, i)
		varRow = append(varRow, i+numVars)
	}

	mult, g, factor := new(big.Int), new(big.Int), new(big.Int)
	for steps := 0; ; steps++ {
		if limit > 0 && steps >= limit {
			return true
		}

		// Pivot row i and column j.
		i, j := -1, 0
		for r := 0; r < numRows; r++ {
			row := s.Row(r)
			if row[0].Sign() >= 0 {
				continue
			}
			c, ok := findLexicoMinimumColumn(s, mapping, basis, row, 1)
			if !ok {
				return false
			}
			if j == 0 || columnLower(s, mapping, basis, s.Row(i), j, row, c, s.Row(i)[0], row[0]) {
				i, j = r, c
			}
		}

		if j == 0 {
			allInteger := true
			for v := 0; v < numVars; v++ {
				if basis[v] {
					continue
				}
				r := mapping[v]
				if !divisible(s.Row(r)[0], scaling[r]) {
					allInteger = false
					break
				}
			}
			if allInteger {
				return true
			}
			for v := 0; v < numVars; v++ {
				if basis[v] {
					continue
				}
				r := mapping[v]
				d := scaling[r]
				if divisible(s.Row(r)[0], d) {
					continue
				}
				varRow = append(varRow, len(mapping))
				basis = append(basis, false)
				mapping = append(mapping, numRows)
				row := s.Row(r)
				cut := matrix.NewRow(numCols)
				for c := range cut {
					cut[c] = modPositive(row[c], d)
				}
				cut[0].Sub(cut[0], d)
				debugAssert(s.AddRow(cut) == nil, "compatibilityCheck: row width mismatch")
				scaling = append(scaling, new(big.Int).Set(d))
				numRows++
			}

			continue
		}

		for r := 0; r < numRows; r++ {
			rowNormalize(s.Row(r), scaling[r])
		}

		varJ, varI := varColumn[j], varRow[i]
		basis[varJ] = false
		mapping[varJ] = i
		basis[varI] = true
		mapping[varI] = j
		varColumn[j] = varI
		varRow[i] = varJ

		// Replace row i with the unit row of the entering column; p keeps the pivot row.
		p := s.Row(i).Clone()
		unit := s.Row(i)
		for c := range unit {
			unit[c].SetInt64(0)
		}
		unit[j].SetInt64(1)
		sij := new(big.Int).Set(p[j])
		scalingI := new(big.Int).Set(scaling[i])
		scaling[i].SetInt64(1)

		for c := 0; c < numCols; c++ {
			if c == j || p[c].Sign() == 0 {
				continue
			}
			for k := 0; k < numRows; k++ {
				row := s.Row(k)
				mult.Mul(row[j], p[c])
				if !divisible(mult, sij) {
					g.GCD(nil, nil, new(big.Int).Abs(mult), sij)
					factor.Quo(sij, g)
					row.Scale(factor)
					mult.Mul(mult, factor)
					scaling[k].Mul(scaling[k], factor)
				}
				row[c].Sub(row[c], new(big.Int).Quo(mult, sij))
			}
		}
		if sij.Cmp(scalingI) != 0 {
			for k := 0; k < numRows; k++ {
				row := s.Row(k)
				mult.Mul(row[j], scalingI)
				if !divisible(mult, sij) {
					g.GCD(nil, nil, new(big.Int).Abs(mult), sij)
					factor.Quo(sij, g)
					row.Scale(factor)
					scaling[k].Mul(scaling[k], factor)
					mult.Mul(mult, factor)
				}
				row[j].Quo(mult, sij)
			}
		}
	}
}
