// SPDX-License-Identifier: MIT

// Package lvpip is an exact parametric integer programming toolkit: it
// computes the lexicographic minimum of integer variables as a piecewise
// affine function of integer parameters.
//
// What is lvpip?
//
//	A pure Go library built on math/big that brings together:
//		• Exact integer matrices with a shared-denominator row algebra
//		• Linear expressions, constraints and variable sets
//		• A parametric dual simplex with Gomory cuts and context splitting
//		• Solution trees with artificial parameters (floor divisions)
//		• Deterministic ascii dumps and a human-readable tree printer
//
// Under the hood, everything is organized under three subpackages:
//
//	linear/ - Variable, Expression, Constraint, System, VariablesSet
//	matrix/ - exact-integer Row / Dense and the ascii dump tokenizer
//	pip/    - Problem, solution tree (SolutionNode, DecisionNode), solver
//
// and one command:
//
//	cmd/pipsolve - solve a YAML problem description from the command line
//
// Quick example: the smallest x with 2x >= n is
//
//	Parameter C = (B) div 2
//	{B - C}
//
// i.e. x = n - floor(n/2) for every n >= 0.
//
//	go get github.com/katalvlaran/lvpip/pip
package lvpip
