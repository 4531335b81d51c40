package cases

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestdata(t *testing.T) {
	cs, err := LoadAll("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, cs)

	for _, r := range RunAll(cs) {
		t.Run(r.Case.Name, func(t *testing.T) {
			if !r.Passed() {
				t.Errorf("%s: %s", r.Case.Path, r.Diff)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeFile(t, "c.yaml", `
cases:
  - name: sum
    kind: add
    a: [1, 2]
    b: [3, 4]
    expect: [4, 6]
`)
	cs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "float64", cs[0].Type)
	assert.Equal(t, path, cs[0].Path)
	assert.Equal(t, KindAdd, cs[0].Kind)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", "cases:\n  - kind: add\n", "missing name"},
		{"unknown kind", "cases:\n  - name: x\n    kind: divide\n", `unknown kind "divide"`},
		{"unknown type", "cases:\n  - name: x\n    kind: add\n    type: complex64\n", `unsupported type "complex64"`},
		{"unknown error", "cases:\n  - name: x\n    kind: add\n    error: boom\n", `unknown error "boom"`},
		{"bad yaml", "cases: [", "c.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "c.yaml", tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunReportsFailures(t *testing.T) {
	rs := RunAll([]Case{
		{Name: "wrong sum", Kind: KindAdd, A: []float64{1, 2}, B: []float64{3, 4}, Expect: []float64{4, 7}},
		{Name: "missing error", Kind: KindAdd, A: []float64{1, 2}, B: []float64{3, 4}, Error: "width_mismatch"},
		{Name: "unexpected error", Kind: KindAdd, A: []float64{1, 2}, B: []float64{3, 4, 5, 6}},
		{Name: "int fma", Kind: KindFMA, Type: "int32", A: []float64{1}, B: []float64{1}, C: []float64{1}, Expect: []float64{2}},
		{Name: "ok", Kind: KindMul, Type: "uint8", A: []float64{2, 3}, B: []float64{4, 5}, Expect: []float64{8, 15}},
	})
	failed := Failed(rs)
	require.Len(t, failed, 4)
	assert.Contains(t, failed[0].Diff, "lanes mismatch")
	assert.Contains(t, failed[1].Diff, "expected width_mismatch error, got none")
	assert.Contains(t, failed[2].Diff, "unexpected error")
	assert.Contains(t, failed[3].Diff, "fma needs a float lane type")
	assert.True(t, rs[4].Passed())
}

func TestLoadAllDirectory(t *testing.T) {
	dir := t.TempDir()
	body := "cases:\n  - name: %s\n    kind: splat\n    width: 2\n    a: [1]\n    expect: [1, 1]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte(fmt.Sprintf(body, "second")), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(fmt.Sprintf(body, "first")), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	cs, err := LoadAll(dir)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "first", cs[0].Name)
	assert.Equal(t, "second", cs[1].Name)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
