// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpip/linear"
	"github.com/katalvlaran/lvpip/pip"
)

const halvingYAML = `
dimensions: 2
parameters: [1]
constraints:
  - coefficients: [2, -1]
    constant: 0
    kind: ">="
`

func writeProblem(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestBuildProblem(t *testing.T) {
	pf, err := readProblemFile(writeProblem(t, `
dimensions: 3
parameters: [2]
big_parameter: 2
cutting_strategy: deepest
constraints:
  - coefficients: [1, 1, -1]
  - coefficients: [0, 1]
    constant: -2
    kind: "="
`))
	require.NoError(t, err)
	p, err := pf.build()
	require.NoError(t, err)

	require.Equal(t, 3, p.SpaceDimension())
	require.True(t, p.ParameterSpaceDimensions().Contains(linear.Variable(2)))
	require.Equal(t, 2, p.BigParameterDimension())
	require.Equal(t, pip.CuttingDeepest, p.CuttingStrategy())
	cs := p.Constraints()
	require.Len(t, cs, 2)
	require.Equal(t, "A + B - C >= 0", cs[0].String())
	require.Equal(t, "B = 2", cs[1].String())

	// Command line options win over the file.
	p, err = pf.build(pip.WithCuttingStrategy(pip.CuttingAll))
	require.NoError(t, err)
	require.Equal(t, pip.CuttingAll, p.CuttingStrategy())
}

func TestBuildProblemErrors(t *testing.T) {
	cases := map[string]string{
		"parameter range": "dimensions: 1\nparameters: [3]\n",
		"bad kind":        "dimensions: 1\nconstraints:\n  - coefficients: [1]\n    kind: \"<\"\n",
		"strict":          "dimensions: 1\nconstraints:\n  - coefficients: [1]\n    kind: \">\"\n",
		"not a parameter": "dimensions: 2\nparameters: [1]\nbig_parameter: 0\n",
		"bad strategy":    "dimensions: 1\ncutting_strategy: best\n",
	}
	for name, content := range cases {
		pf, err := readProblemFile(writeProblem(t, content))
		require.NoError(t, err, name)
		_, err = pf.build()
		require.Error(t, err, name)
	}

	_, err := readProblemFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	_, err = readProblemFile(writeProblem(t, "dimensions: [oops"))
	require.Error(t, err)
}

func TestRunSolve(t *testing.T) {
	path := writeProblem(t, halvingYAML)

	var out bytes.Buffer
	require.NoError(t, runSolve(&out, &solveArgs{file: path}))
	require.Equal(t, "Parameter C = (B) div 2\n{B - C}\n", out.String())

	out.Reset()
	require.NoError(t, runSolve(&out, &solveArgs{file: path, point: map[string]int64{"1": 7}}))
	require.Equal(t, "A = 4\n", out.String())

	out.Reset()
	require.NoError(t, runSolve(&out, &solveArgs{file: path, dump: true}))
	require.True(t, strings.HasPrefix(out.String(), "space_dimension 2\n"))
	_, err := pip.LoadProblem(strings.NewReader(out.String()))
	require.NoError(t, err)

	require.Error(t, runSolve(&out, &solveArgs{file: path, cutting: "best"}))
	require.Error(t, runSolve(&out, &solveArgs{file: path, cutLimit: -1}))
	require.Error(t, runSolve(&out, &solveArgs{file: path, point: map[string]int64{"x": 1}}))
}

func TestRootCommand(t *testing.T) {
	path := writeProblem(t, halvingYAML)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"solve", "-f", path, "--cutting", "all", "--at", "1=3"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "A = 2\n")
}
