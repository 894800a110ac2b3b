// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/big"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/pip"
)

type solveArgs struct {
	file        string
	cutting     string
	pivotRow    string
	cutLimit    int
	compatLimit int
	dump        bool
	point       map[string]int64
}

func addSolverFlags(fs *pflag.FlagSet, a *solveArgs) {
	fs.StringVarP(&a.file, "file", "f", "", "YAML problem description")
	fs.StringVar(&a.cutting, "cutting", "", "cutting strategy: first, deepest or all (default from file)")
	fs.StringVar(&a.pivotRow, "pivot-row", "", "pivot row strategy: first or max-column (default from file)")
	fs.IntVar(&a.cutLimit, "cut-limit", pip.DefaultCutLimit, "maximum number of cuts, 0 for unbounded")
	fs.IntVar(&a.compatLimit, "compat-limit", pip.DefaultCompatibilityStepLimit, "maximum steps of one compatibility check, 0 for unbounded")
	fs.BoolVar(&a.dump, "dump", false, "write the ascii dump instead of the solution tree")
	fs.StringToInt64Var(&a.point, "at", nil, "evaluate at a parameter point, e.g. --at 1=4,3=0")
}

func (a *solveArgs) options() ([]pip.Option, error) {
	if a.cutLimit < 0 || a.compatLimit < 0 {
		return nil, errors.New("limits must be >= 0")
	}
	opts := []pip.Option{
		pip.WithLogger(log.StandardLogger()),
		pip.WithCutLimit(a.cutLimit),
		pip.WithCompatibilityStepLimit(a.compatLimit),
	}
	if a.cutting != "" {
		c, err := pip.ParseCuttingStrategy(a.cutting)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pip.WithCuttingStrategy(c))
	}
	if a.pivotRow != "" {
		s, err := pip.ParsePivotRowStrategy(a.pivotRow)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pip.WithPivotRowStrategy(s))
	}

	return opts, nil
}

func newSolveCmd() *cobra.Command {
	a := &solveArgs{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a parametric integer program",
		Long: `Solve computes the lexicographic minimum of the problem variables as
        a function of the parameters and prints the solution tree.

        $ pipsolve solve -f problem.yaml
        $ pipsolve solve -f problem.yaml --at 1=7
        `,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd.OutOrStdout(), a)
		},
	}
	addSolverFlags(cmd.Flags(), a)
	if err := cmd.MarkFlagRequired("file"); err != nil {
		log.Fatalf("Failed to mark `file` flag for `solve` subcommand as required")
	}

	return cmd
}

func runSolve(w io.Writer, a *solveArgs) error {
	opts, err := a.options()
	if err != nil {
		return err
	}
	pf, err := readProblemFile(a.file)
	if err != nil {
		return err
	}
	p, err := pf.build(opts...)
	if err != nil {
		return err
	}

	log.WithField("file", a.file).Debug("solving")
	st, err := p.Solve()
	if err != nil {
		return errors.Wrap(err, "solve")
	}
	log.WithField("status", st.String()).Info("solved")
	if st == pip.GaveUp {
		return errors.Errorf("solver gave up after %d cuts", a.cutLimit)
	}

	switch {
	case a.dump:
		return errors.Wrap(p.ASCIIDump(w), "dump")
	case len(a.point) > 0:
		return evaluate(w, p, a.point)
	default:
		return errors.Wrap(p.PrintSolution(w), "print")
	}
}

// evaluate prints "name = value" for each problem variable at point, whose
// keys are parameter dimensions.
func evaluate(w io.Writer, p *pip.Problem, point map[string]int64) error {
	at := make(map[linear.Variable]*big.Int, len(point))
	for k, v := range point {
		d, err := strconv.Atoi(k)
		if err != nil {
			return errors.Wrapf(err, "parameter %q", k)
		}
		at[linear.Variable(d)] = big.NewInt(v)
	}
	vals, ok, err := p.Evaluate(at)
	if err != nil {
		return errors.Wrap(err, "evaluate")
	}
	if !ok {
		_, err = fmt.Fprintln(w, "_|_")
		return err
	}
	vars := make([]int, 0, len(vals))
	for v := range vals {
		vars = append(vars, int(v))
	}
	sort.Ints(vars)
	for _, d := range vars {
		v := linear.Variable(d)
		if _, err := fmt.Fprintf(w, "%s = %s\n", v, vals[v]); err != nil {
			return err
		}
	}

	return nil
}
