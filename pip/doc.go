// SPDX-License-Identifier: MIT

// Package pip solves parametric integer programs exactly.
//
// A Problem has a space of dimensions, a subset of which are parameters; the
// remaining dimensions are variables. Every dimension is implicitly
// non-negative. Solving computes, for every integer parameter point
// admitted by the parametric constraints, the lexicographically minimal
// integer point of the variables, as a tree:
//
//   - *DecisionNode tests parametric constraints and branches;
//   - *SolutionNode carries the variables as affine functions of the
//     parameters, possibly involving artificial parameters q = floor(e/d);
//   - a nil Node means "no solution" (printed as _|_).
//
// Algorithm (Feautrier's PIP):
//
//   - dual simplex on a parametric tableau with exact integer arithmetic and
//     a shared positive denominator;
//   - the sign of every parametric row is analysed against the current
//     parameter context, using an integer compatibility check;
//   - rows of undetermined sign either become context tautologies or split
//     the node into two branches;
//   - fractional vertices are cut with (parametric) Gomory cuts, introducing
//     artificial parameters that are reused when structurally equal.
//
// Quick example:
//
//	x, n := linear.Variable(0), linear.Variable(1)
//	pb := pip.NewProblem(2, linear.NewVariablesSet(n))
//	_ = pb.AddConstraint(linear.GreaterOrEqual(linear.NewExpression(0).AddTerm(x, 2), n.Expr()))
//	status, _ := pb.Solve()
//	_ = pb.PrintSolution(os.Stdout)
//
// Determinism:
//   - No map iteration and no randomness; two solves of the same problem
//     produce byte-identical dumps.
//
// Tracing:
//   - WithLogger installs a logrus.FieldLogger; pivots, cuts, artificial
//     parameters, tautologies and splits are logged at Debug level.
package pip
