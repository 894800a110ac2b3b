// SPDX-License-Identifier: MIT

// Package matrix offers exact-integer row matrices for simplex-style solvers.
//
// The matrix package provides:
//
//   - Row: a resizable row of arbitrary-precision integers (*big.Int) with
//     gcd normalization, exact division and scaling kernels.
//   - Dense: an ordered sequence of Rows sharing one column count, with O(1)
//     amortized row append, zero-row/zero-column growth, truncation and swaps.
//   - ASCII dump/load helpers (DumpWriter, Tokenizer) shared by the packages
//     that persist solver state in tagged key/value text.
//
// Every entry is owned by exactly one row: Clone, AddRow and the loaders
// always deep-copy, so no two rows ever alias the same *big.Int.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set/Row: O(1); AddRow: O(c) amortized;
//     AddZeroColumns: O(r*k); Clone/Equal: O(r*c).
package matrix
