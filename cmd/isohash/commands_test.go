// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	// Path 1-0-2 centred on vertex 1, and the same path centred on vertex 0.
	a := writeFixture(t, dir, "a.csv", "0,1,0\n1,0,1\n0,1,0\n")
	b := writeFixture(t, dir, "b.csv", "0,1,1\n1,0,0\n1,0,0\n")
	c := writeFixture(t, dir, "c.csv", "0,1,1\n1,0,1\n1,1,0\n")
	d := writeFixture(t, dir, "d.csv", "0,1\n1,0\n")

	out, err := execute(t, "compare", a, b, "--kind", "edge", "--rounds", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "kind:      edge")
	assert.Contains(t, out, "match:     true")

	out, err = execute(t, "compare", a, c)
	require.NoError(t, err)
	assert.Contains(t, out, "match:     false")

	out, err = execute(t, "compare", a, d, "-k", "walk")
	require.NoError(t, err)
	assert.Contains(t, out, "vertex counts differ (3 vs 2)")
}

func TestCompareCommandErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.csv", "0,1\n1,0\n")
	bad := writeFixture(t, dir, "bad.csv", "0,2\n1,0\n")

	_, err := execute(t, "compare", a, bad)
	assert.Error(t, err)

	_, err = execute(t, "compare", a, a, "--kind", "triangle")
	assert.Error(t, err)

	_, err = execute(t, "compare", a, filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	_, err = execute(t, "compare", a)
	assert.Error(t, err)
}

func TestScenariosCommand(t *testing.T) {
	out, err := execute(t, "scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "overflow_undirected_isomorphic")
	assert.Contains(t, out, "100..3900")
}

func TestRunCommandUnknownScenario(t *testing.T) {
	_, err := execute(t, "run", "--scenario", "nope", "--output", t.TempDir())
	assert.Error(t, err)
}

func TestRunCommandWritesReports(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFixture(t, dir, "config.yaml", `run:
  trials_override: 1
logging:
  level: error
`)
	out := filepath.Join(dir, "out")

	_, err := execute(t, "run", "-c", cfgPath, "-s", "undirected_isomorphic", "-o", out, "--seed", "5")
	require.NoError(t, err)

	for _, name := range []string{"undirected_isomorphic.csv", "summary.yaml", "metrics.prom"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
}
