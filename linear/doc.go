// SPDX-License-Identifier: MIT

// Package linear provides the exact linear-constraint front-end of lvpip.
//
// It defines:
//
//   - Variable - a space dimension (A, B, ..., Z, A1, B1, ...).
//   - Expression - an inhomogeneous term plus one *big.Int coefficient per dimension.
//   - Constraint - an Expression compared with zero (=, >=, >).
//   - System - an ordered constraint sequence.
//   - VariablesSet - an ordered set of dimensions (used to mark parameters).
//
// All arithmetic is exact. Expressions are mutable builders: AddTerm, Add,
// Sub, Scale and Negate modify the receiver and return it for chaining;
// use Clone to keep an untouched copy.
//
// Quick example:
//
//	x, n := linear.Variable(0), linear.Variable(1)
//	c := linear.GreaterOrEqual(linear.NewExpression(0).AddTerm(x, 2), n.Expr())
//	fmt.Println(c) // 2*A - B >= 0
package linear
