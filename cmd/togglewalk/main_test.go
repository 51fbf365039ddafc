package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBatch = "3\n2\n2 2\n3\n2 3\n1 1\n2\n1 1\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSolveCommand(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "metrics.prom")
	out, err := execute(t, "solve", "-c", "-l", "1,2", "--metrics-file", metrics, writeInput(t, sampleBatch))
	require.NoError(t, err)
	assert.Equal(t, "Case #1: 1\nCase #2: 3\n", out)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `togglewalk_cases_total{outcome="reached"} 2`)
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "graph", "--case", "2", "--trace", "2", writeInput(t, sampleBatch))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `n1 -- "L" --> n2`)
	assert.Contains(t, out, "class n1 current;")
}

func TestGraphCommand_MissingCase(t *testing.T) {
	_, err := execute(t, "graph", "--case", "9", writeInput(t, sampleBatch))
	assert.Error(t, err)
}

func TestGenCommand(t *testing.T) {
	out, err := execute(t, "gen", "--cases", "2", "--nodes", "3", "--seed", "7")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+2*(1+3))
	assert.Equal(t, "2", lines[0])
	assert.Equal(t, "4", lines[1])
}

func TestGenCommand_NegativeCases(t *testing.T) {
	_, err := execute(t, "gen", "--cases=-1", "--nodes", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--cases")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "togglewalk version")
}
