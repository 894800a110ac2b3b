// SPDX-License-Identifier: MIT

package pip

import (
	"io"
	"strings"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/matrix"
)

const printIndent = "  "

// PrintSolution solves p if needed and writes the solution tree in
// human-readable form:
//
//	Parameter D = (B + 1) div 2
//	if -B >= -5 then
//	  {0}
//	else
//	  {B - 5}
//
// An empty solution prints as "_|_".
func (p *Problem) PrintSolution(w io.Writer) error {
	if _, err := p.Solve(); err != nil {
		return err
	}
	pr := treePrinter{d: matrix.NewDumpWriter(w), p: p}
	pr.node(p.Solution(), 0, p.dim)

	return pr.d.Err()
}

type treePrinter struct {
	d *matrix.DumpWriter
	p *Problem
}

func (pr treePrinter) line(level int, s string) {
	pr.d.Printf("%s%s\n", strings.Repeat(printIndent, level), s)
}

func conjunction(cs linear.System) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}

	return strings.Join(parts, " and ")
}

// node prints n at the given level; nextDim is the dimension of the next
// artificial parameter.
func (pr treePrinter) node(n Node, level, nextDim int) {
	if n == nil {
		pr.line(level, "_|_")
		return
	}
	b := n.base()
	for _, ap := range b.artificials {
		pr.line(level, "Parameter "+linear.Variable(nextDim).String()+" = "+ap.String())
		nextDim++
	}

	switch m := n.(type) {
	case *DecisionNode:
		pr.line(level, "if "+conjunction(m.constraints)+" then")
		pr.node(m.trueChild, level+1, nextDim)
		pr.line(level, "else")
		pr.node(m.falseChild, level+1, nextDim)
	case *SolutionNode:
		inner := level
		if len(m.constraints) > 0 {
			pr.line(level, "if "+conjunction(m.constraints)+" then")
			inner++
		}
		pr.line(inner, pr.values(m))
		if len(m.constraints) > 0 {
			pr.line(level, "else")
			pr.line(level+1, "_|_")
		}
	}
}

// values formats the problem variables of leaf as "{e1, e2}".
func (pr treePrinter) values(leaf *SolutionNode) string {
	var parts []string
	for d := 0; d < pr.p.dim; d++ {
		v := linear.Variable(d)
		if pr.p.params.Contains(v) {
			continue
		}
		e, err := leaf.ParametricValues(v)
		if err != nil {
			parts = append(parts, "?")
			continue
		}
		parts = append(parts, e.String())
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
