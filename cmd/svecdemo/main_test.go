package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-shortvec/queue"
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

func TestRun(t *testing.T) {
	out, err := execute(t, "run")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "1.000000 1.000000 1.000000 1.000000", lines[0])
	assert.Equal(t, "1.000000 2.000000 3.000000 1.000000 1.000000 1.000000 1.000000 4.000000", lines[1])
	assert.Equal(t, "4.000000 12.000000 24.000000 4.000000 4.000000 4.000000 4.000000 40.000000", lines[3])
	assert.Equal(t, "-1 0 0 -1 -1 -1 -1 -1", lines[6])
	assert.Equal(t, "2.000000 6.000000 12.000000 2.000000", lines[7])
	assert.Equal(t, "2.000000 12.000000 6.000000 2.000000", lines[8])
	assert.Equal(t, "2.000000 6.000000 6.000000 2.000000", lines[9])
	assert.Equal(t, "6.000000 6.000000 6.000000 2.000000", lines[10])
}

func TestRunFormat(t *testing.T) {
	out, err := execute(t, "run", "--format", "%g")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1 1 1 1\n1 2 3 1 1 1 1 4\n"), out)
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "--json")
	require.NoError(t, err)

	var steps []struct {
		Label string    `json:"label"`
		Lanes []float64 `json:"lanes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, 11)
	assert.Equal(t, "cos(v2)<sin(v2)", steps[6].Label)
	assert.Equal(t, []float64{-1, 0, 0, -1, -1, -1, -1, -1}, steps[6].Lanes)
	assert.Equal(t, []float64{6, 6, 6, 2}, steps[10].Lanes)
}

func TestExampleCancelled(t *testing.T) {
	q := queue.New()
	defer q.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	steps, err := example(ctx, q)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, steps)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "--cases", filepath.Join("..", "..", "internal", "cases", "testdata"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "0 failed")
}

func TestCheckFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cases:
  - name: wrong
    kind: add
    a: [1, 2]
    b: [3, 4]
    expect: [0, 0]
`), 0o644))

	out, err := execute(t, "check", path)
	require.Error(t, err)
	var cErr codedError
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, exitCasesFailed, cErr.code)
	assert.Contains(t, out, "FAIL wrong")
	assert.Contains(t, out, "0 passed, 1 failed")

	_, err = execute(t, "check")
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, exitError, cErr.code)

	_, err = execute(t, "check", filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, exitError, cErr.code)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", "--json")
	require.NoError(t, err)

	var r infoReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, []int{1, 2, 3, 4, 8, 16}, r.Widths)
	assert.NotEmpty(t, r.Level)

	out, err = execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "SIMD level:")
}
