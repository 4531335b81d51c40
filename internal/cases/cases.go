// Package cases loads YAML conformance cases and evaluates them against svec.
package cases

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/samber/lo"
	yaml "gopkg.in/yaml.v3"
)

// Kind selects the operation a case exercises.
type Kind string

const (
	KindConstruct     Kind = "construct"
	KindSplat         Kind = "splat"
	KindFMA           Kind = "fma"
	KindAdd           Kind = "add"
	KindMul           Kind = "mul"
	KindLess          Kind = "less"
	KindSwizzleAssign Kind = "swizzle_assign"
	KindLoHi          Kind = "lo_hi"
)

var kinds = []Kind{
	KindConstruct, KindSplat, KindFMA, KindAdd, KindMul, KindLess, KindSwizzleAssign, KindLoHi,
}

// File is the top-level layout of a case file.
type File struct {
	Cases []Case `yaml:"cases"`
}

// Case is a single conformance scenario.
type Case struct {
	// Name identifies the case in reports.
	Name string `yaml:"name"`

	// Kind is the operation under test.
	Kind Kind `yaml:"kind"`

	// Type is the lane type: float32, float64 (default), int32 or uint8.
	Type string `yaml:"type,omitempty"`

	// Width is the requested lane count for construct and splat.
	Width int `yaml:"width,omitempty"`

	// Parts are constructor parts: a one-element part is a scalar, anything
	// longer is a vector.
	Parts [][]float64 `yaml:"parts,omitempty"`

	// A, B and C are operand lanes.
	A []float64 `yaml:"a,omitempty"`
	B []float64 `yaml:"b,omitempty"`
	C []float64 `yaml:"c,omitempty"`

	// Target and Source are the lane indices of a swizzle assignment on A.
	Target []int `yaml:"target,omitempty"`
	Source []int `yaml:"source,omitempty"`

	// Expect is the expected result lanes.
	Expect []float64 `yaml:"expect,omitempty"`

	// ExpectMask is the expected comparison result.
	ExpectMask []bool `yaml:"expect_mask,omitempty"`

	// Error names the expected failure, e.g. "lane_count" or "odd_width".
	Error string `yaml:"error,omitempty"`

	// Tolerance is the allowed absolute difference per lane. Zero means exact.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// Path is the file the case was loaded from.
	Path string `yaml:"-"`
}

// Load reads the cases in a YAML file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i := range f.Cases {
		c := &f.Cases[i]
		c.Path = path
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("%s: case %d: %w", path, i, err)
		}
	}
	return f.Cases, nil
}

// LoadAll loads every path in order. Directories contribute their *.yaml and
// *.yml files in lexical order.
func LoadAll(paths ...string) ([]Case, error) {
	var all []Case
	for _, p := range paths {
		files, err := expand(p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			cs, err := Load(f)
			if err != nil {
				return nil, err
			}
			all = append(all, cs...)
		}
	}
	return all, nil
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	files := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		ext := filepath.Ext(e.Name())
		return filepath.Join(path, e.Name()), !e.IsDir() && (ext == ".yaml" || ext == ".yml")
	})
	slices.Sort(files)
	return files, nil
}

func (c *Case) validate() error {
	if c.Name == "" {
		return errors.New("missing name")
	}
	if !slices.Contains(kinds, c.Kind) {
		return fmt.Errorf("%s: unknown kind %q", c.Name, c.Kind)
	}
	if c.Type == "" {
		c.Type = "float64"
	}
	if _, ok := runners[c.Type]; !ok {
		return fmt.Errorf("%s: unsupported type %q", c.Name, c.Type)
	}
	if c.Error != "" {
		if _, ok := sentinels[c.Error]; !ok {
			return fmt.Errorf("%s: unknown error %q (want one of %v)", c.Name, c.Error, errorNames())
		}
	}
	return nil
}

// Result is the outcome of running one case.
type Result struct {
	Case Case

	// Lanes and Mask are the values produced, if any.
	Lanes []float64
	Mask  []bool

	// Err is the error the operation produced, including recovered panics.
	Err error

	// Diff describes the mismatch when the case fails.
	Diff string
}

// Passed reports whether the case met its expectation.
func (r Result) Passed() bool { return r.Diff == "" }

// Run evaluates a case.
func Run(c Case) Result {
	if c.Type == "" {
		c.Type = "float64"
	}
	r := Result{Case: c}
	run, ok := runners[c.Type]
	if !ok {
		r.Diff = fmt.Sprintf("unsupported type %q", c.Type)
		return r
	}
	r.Lanes, r.Mask, r.Err = run(c)
	r.Diff = check(c, r)
	return r
}

// RunAll evaluates cases in order.
func RunAll(cs []Case) []Result {
	return lo.Map(cs, func(c Case, _ int) Result { return Run(c) })
}

// Failed returns the results that did not pass.
func Failed(rs []Result) []Result {
	return lo.Filter(rs, func(r Result, _ int) bool { return !r.Passed() })
}

func check(c Case, r Result) string {
	if c.Error != "" {
		if r.Err == nil {
			return fmt.Sprintf("expected %s error, got none", c.Error)
		}
		if !errors.Is(r.Err, sentinels[c.Error]) {
			return fmt.Sprintf("expected %s error, got %v", c.Error, r.Err)
		}
		return ""
	}
	if r.Err != nil {
		return fmt.Sprintf("unexpected error: %v", r.Err)
	}
	if c.ExpectMask != nil {
		if d := cmp.Diff(c.ExpectMask, r.Mask); d != "" {
			return "mask mismatch (-want +got):\n" + d
		}
	}
	if c.Expect != nil {
		if d := cmp.Diff(c.Expect, r.Lanes, cmpopts.EquateApprox(0, c.Tolerance), cmpopts.EquateNaNs()); d != "" {
			return "lanes mismatch (-want +got):\n" + d
		}
	}
	return ""
}
