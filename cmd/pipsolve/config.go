// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/pip"
)

// problemFile is the on-disk description of a problem.
//
//	dimensions: 2
//	parameters: [1]
//	constraints:
//	  - coefficients: [2, -1]   # 2*A - B
//	    constant: 0
//	    kind: ">="
type problemFile struct {
	Dimensions       int              `json:"dimensions"`
	Parameters       []int            `json:"parameters"`
	BigParameter     *int             `json:"big_parameter,omitempty"`
	CuttingStrategy  string           `json:"cutting_strategy,omitempty"`
	PivotRowStrategy string           `json:"pivot_row_strategy,omitempty"`
	Constraints      []constraintFile `json:"constraints"`
}

type constraintFile struct {
	Coefficients []int64 `json:"coefficients"`
	Constant     int64   `json:"constant"`
	Kind         string  `json:"kind"`
}

func readProblemFile(path string) (*problemFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var pf problemFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return &pf, nil
}

// build turns the file into a problem; opts come from the command line and
// override the strategies named in the file.
func (pf *problemFile) build(opts ...pip.Option) (*pip.Problem, error) {
	if pf.Dimensions < 0 {
		return nil, errors.Errorf("negative dimensions %d", pf.Dimensions)
	}
	var params linear.VariablesSet
	for _, d := range pf.Parameters {
		if d < 0 || d >= pf.Dimensions {
			return nil, errors.Errorf("parameter %d outside dimensions %d", d, pf.Dimensions)
		}
		params.Insert(linear.Variable(d))
	}

	var fileOpts []pip.Option
	if pf.CuttingStrategy != "" {
		c, err := pip.ParseCuttingStrategy(pf.CuttingStrategy)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		fileOpts = append(fileOpts, pip.WithCuttingStrategy(c))
	}
	if pf.PivotRowStrategy != "" {
		s, err := pip.ParsePivotRowStrategy(pf.PivotRowStrategy)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		fileOpts = append(fileOpts, pip.WithPivotRowStrategy(s))
	}
	p := pip.NewProblem(pf.Dimensions, params, append(fileOpts, opts...)...)

	for i, cf := range pf.Constraints {
		kind := linear.NonStrictInequality
		if cf.Kind != "" {
			k, err := linear.ParseKind(cf.Kind)
			if err != nil {
				return nil, errors.Wrapf(err, "constraint %d", i)
			}
			kind = k
		}
		e := linear.NewExpression(cf.Constant)
		for d, c := range cf.Coefficients {
			e.AddTerm(linear.Variable(d), c)
		}
		if err := p.AddConstraint(linear.NewConstraint(e, kind)); err != nil {
			return nil, errors.Wrapf(err, "constraint %d", i)
		}
	}
	if pf.BigParameter != nil {
		if err := p.SetBigParameterDimension(*pf.BigParameter); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return p, nil
}
