// SPDX-License-Identifier: MIT

// Package pip - ASCII dump/load of problems and solution trees.
//
// Determinism:
//   - Field order is fixed; dump → load → dump is byte identical.
//
// Layout (per node):
//
//	constraints_            <linear.System dump>
//	artificial_parameters( n )
//	denominator d           <linear.Expression dump>   (n times)
//
// A solution node continues with its tableau and bookkeeping vectors, a
// decision node with "true_child:" and "false_child:" followed by
// DECISION, SOLUTION or BOTTOM and the child dump.
package pip

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/matrix"
)

const (
	tokDecision = "DECISION"
	tokSolution = "SOLUTION"
	tokBottom   = "BOTTOM"
)

var stateTokens = map[problemState]string{
	statePartiallySatisfiable: "PARTIALLY_SATISFIABLE",
	stateUnsatisfiable:        "UNSATISFIABLE",
	stateOptimized:            "OPTIMIZED",
}

// ASCIIDump writes the complete state of p to w.
func (p *Problem) ASCIIDump(w io.Writer) error {
	d := matrix.NewDumpWriter(w)
	d.Printf("space_dimension %d\n", p.dim)
	dims := p.params.Dims()
	d.Printf("parameters %d", len(dims))
	for _, x := range dims {
		d.Printf(" %d", x)
	}
	d.Printf("\ninput_cs ")
	p.constraints.Dump(d)
	d.Printf("first_pending_constraint %d\n", p.firstPending)
	d.Printf("status %s\n", stateTokens[p.state])
	d.Printf("cutting_strategy %s\n", p.opts.cutting)
	d.Printf("pivot_row_strategy %s\n", p.opts.pivotRow)
	d.Printf("big_parameter_dimension %d\n", p.bigParameter)
	if p.initialCtx == nil {
		d.Printf("initial_context none\n")
	} else {
		d.Printf("initial_context ")
		p.initialCtx.Dump(d)
	}
	d.Printf("solution ")
	dumpChild(d, p.root)
	d.Printf("\n")

	return d.Err()
}

func dumpChild(d *matrix.DumpWriter, n Node) {
	switch n := n.(type) {
	case *SolutionNode:
		d.Printf("%s", tokSolution)
		n.dump(d)
	case *DecisionNode:
		d.Printf("%s", tokDecision)
		n.dump(d)
	default:
		d.Printf("%s", tokBottom)
	}
}

func (b *nodeBase) dump(d *matrix.DumpWriter) {
	d.Printf("\nconstraints_\n")
	b.constraints.Dump(d)
	d.Printf("\nartificial_parameters( %d )\n", len(b.artificials))
	for _, ap := range b.artificials {
		d.Printf("\ndenominator %s\n", ap.den.String())
		ap.expr.Dump(d)
	}
}

func (dn *DecisionNode) dump(d *matrix.DumpWriter) {
	dn.nodeBase.dump(d)
	d.Printf("\ntrue_child: ")
	dumpChild(d, dn.trueChild)
	d.Printf("\nfalse_child: ")
	dumpChild(d, dn.falseChild)
}

func dumpInts(d *matrix.DumpWriter, name string, xs []int) {
	d.Printf("%s %d", name, len(xs))
	for _, x := range xs {
		d.Printf(" %d", x)
	}
}

func (n *SolutionNode) dump(d *matrix.DumpWriter) {
	n.nodeBase.dump(d)
	d.Printf("\ntableau\n")
	d.Printf("denominator %s\nvariables ", n.tab.den.String())
	n.tab.s.Dump(d)
	d.Printf("parameters ")
	n.tab.t.Dump(d)

	d.Printf("\nbasis %d", len(n.basis))
	for _, b := range n.basis {
		d.Printf(" %t", b)
	}
	d.Printf("\n")
	dumpInts(d, "mapping", n.mapping)
	d.Printf("\n")
	dumpInts(d, "var_row", n.varRow)
	d.Printf("\n")
	dumpInts(d, "var_column", n.varColumn)
	d.Printf("\nspecial_equality_row %d\n", n.specialEqualityRow)
	d.Printf("big_dimension %d\n", n.bigDimension)
	d.Printf("sign %d", len(n.sign))
	for _, s := range n.sign {
		d.Printf(" %s", s)
	}
	d.Printf("\nsolution %d\n", len(n.solution))
	for _, e := range n.solution {
		e.Dump(d)
	}
	d.Printf("\nsolution_valid %t\n", n.solutionValid)
	dumpInts(d, "bound_parameters", n.params)
	d.Printf("\n")
}

// ---------- loaders ----------

// loader wraps the tokenizer so any failure carries ErrBadDump.
type loader struct {
	t   *matrix.Tokenizer
	err error
}

func (l *loader) fail(err error) {
	if l.err == nil && err != nil {
		l.err = fmt.Errorf("%w: %w", ErrBadDump, err)
	}
}

func (l *loader) expect(tok string) {
	if l.err == nil {
		l.fail(l.t.Expect(tok))
	}
}

func (l *loader) next() string {
	if l.err != nil {
		return ""
	}
	s, err := l.t.Next()
	l.fail(err)

	return s
}

func (l *loader) int() int {
	if l.err != nil {
		return 0
	}
	v, err := l.t.Int()
	l.fail(err)

	return v
}

func (l *loader) count() int {
	v := l.int()
	if v < 0 {
		l.fail(fmt.Errorf("negative count %d", v))
		return 0
	}

	return v
}

func (l *loader) ints(name string) []int {
	l.expect(name)
	n := l.count()
	var xs []int
	for i := 0; i < n && l.err == nil; i++ {
		xs = append(xs, l.int())
	}

	return xs
}

func (l *loader) bool() bool {
	if l.err != nil {
		return false
	}
	v, err := l.t.Bool()
	l.fail(err)

	return v
}

func (l *loader) dense() *matrix.Dense {
	if l.err != nil {
		return nil
	}
	m, err := matrix.LoadDense(l.t)
	l.fail(err)

	return m
}

func (l *loader) system() linear.System {
	if l.err != nil {
		return nil
	}
	s, err := linear.LoadSystem(l.t)
	l.fail(err)

	return s
}

func (l *loader) expression() *linear.Expression {
	if l.err != nil {
		return nil
	}
	e, err := linear.LoadExpression(l.t)
	l.fail(err)

	return e
}

// LoadProblem reads a problem written by Problem.ASCIIDump. opts provide
// what the dump does not carry (logger, limits); the strategies come from the dump.
// Errors: ErrBadDump.
func LoadProblem(r io.Reader, opts ...Option) (*Problem, error) {
	l := &loader{t: matrix.NewTokenizer(r)}
	p := &Problem{opts: gatherOptions(opts...)}

	l.expect("space_dimension")
	p.dim = l.count()
	for _, x := range l.ints("parameters") {
		if x >= p.dim {
			l.fail(fmt.Errorf("parameter %d outside dimension %d", x, p.dim))
		}
		p.params.Insert(linear.Variable(x))
	}
	l.expect("input_cs")
	p.constraints = l.system()
	l.expect("first_pending_constraint")
	p.firstPending = l.count()
	if p.firstPending > len(p.constraints) {
		l.fail(fmt.Errorf("first pending constraint %d beyond %d", p.firstPending, len(p.constraints)))
	}
	l.expect("status")
	tok := l.next()
	found := false
	for st, s := range stateTokens {
		if s == tok {
			p.state, found = st, true
		}
	}
	if !found {
		l.fail(fmt.Errorf("unknown status %q", tok))
	}
	l.expect("cutting_strategy")
	if c, err := ParseCuttingStrategy(l.next()); err == nil {
		p.opts.cutting = c
	} else {
		l.fail(err)
	}
	l.expect("pivot_row_strategy")
	if s, err := ParsePivotRowStrategy(l.next()); err == nil {
		p.opts.pivotRow = s
	} else {
		l.fail(err)
	}
	l.expect("big_parameter_dimension")
	p.bigParameter = l.int()
	l.expect("initial_context")
	if tok := l.next(); tok != "none" && l.err == nil {
		rows, err := strconv.Atoi(tok)
		if err != nil {
			l.fail(fmt.Errorf("%q is not a row count", tok))
		} else {
			p.initialCtx = l.denseTail(rows)
		}
	}
	l.expect("solution")
	p.root = l.child()
	if l.err != nil {
		return nil, l.err
	}
	if !nodeOK(p.root) {
		return nil, fmt.Errorf("%w: %w", ErrBadDump, ErrBrokenTree)
	}

	return p, nil
}

// denseTail reads "x <cols>" and the rows of a matrix whose row count was
// already consumed.
func (l *loader) denseTail(rows int) *matrix.Dense {
	l.expect("x")
	cols := l.count()
	if rows < 0 {
		l.fail(fmt.Errorf("negative row count %d", rows))
	}
	if l.err != nil {
		return nil
	}
	m, _ := matrix.NewDense(0, cols)
	for i := 0; i < rows && l.err == nil; i++ {
		row := matrix.NewRow(cols)
		for j := range row {
			v, err := l.t.BigInt()
			if err != nil {
				l.fail(err)
				return nil
			}
			row[j] = v
		}
		debugAssert(m.AddRow(row) == nil, "loader.denseTail: row width mismatch")
	}

	return m
}

func (l *loader) child() Node {
	switch tok := l.next(); tok {
	case tokBottom:
		return nil
	case tokSolution:
		return l.solutionNode()
	case tokDecision:
		return l.decisionNode()
	default:
		l.fail(fmt.Errorf("unknown node kind %q", tok))
		return nil
	}
}

func (l *loader) nodeBase(b *nodeBase) {
	l.expect("constraints_")
	b.constraints = l.system()
	l.expect("artificial_parameters(")
	n := l.count()
	l.expect(")")
	for i := 0; i < n && l.err == nil; i++ {
		l.expect("denominator")
		den := l.bigPositive()
		e := l.expression()
		if l.err != nil {
			return
		}
		b.artificials = append(b.artificials, ArtificialParameter{expr: e, den: den})
	}
}

func (l *loader) bigPositive() *big.Int {
	if l.err != nil {
		return nil
	}
	v, err := l.t.BigInt()
	if err == nil && v.Sign() <= 0 {
		err = fmt.Errorf("non-positive denominator %s", v)
	}
	l.fail(err)

	return v
}

func (l *loader) decisionNode() Node {
	dn := &DecisionNode{}
	l.nodeBase(&dn.nodeBase)
	l.expect("true_child:")
	dn.trueChild = l.child()
	l.expect("false_child:")
	dn.falseChild = l.child()

	return dn
}

func (l *loader) solutionNode() Node {
	n := &SolutionNode{}
	l.nodeBase(&n.nodeBase)
	l.expect("tableau")
	l.expect("denominator")
	n.tab.den = l.bigPositive()
	l.expect("variables")
	n.tab.s = l.dense()
	l.expect("parameters")
	n.tab.t = l.dense()

	l.expect("basis")
	nb := l.count()
	for i := 0; i < nb && l.err == nil; i++ {
		n.basis = append(n.basis, l.bool())
	}
	n.mapping = l.ints("mapping")
	n.varRow = l.ints("var_row")
	n.varColumn = l.ints("var_column")
	l.expect("special_equality_row")
	n.specialEqualityRow = l.int()
	l.expect("big_dimension")
	n.bigDimension = l.int()
	l.expect("sign")
	ns := l.count()
	for i := 0; i < ns && l.err == nil; i++ {
		tok := l.next()
		s, ok := parseRowSign(tok)
		if !ok {
			l.fail(fmt.Errorf("unknown row sign %q", tok))
		}
		n.sign = append(n.sign, s)
	}
	l.expect("solution")
	nsol := l.count()
	for i := 0; i < nsol && l.err == nil; i++ {
		n.solution = append(n.solution, l.expression())
	}
	l.expect("solution_valid")
	n.solutionValid = l.bool()
	n.params = l.ints("bound_parameters")
	if l.err != nil {
		return nil
	}

	return n
}
