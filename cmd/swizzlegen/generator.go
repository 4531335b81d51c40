// Copyright 2025 go-shortvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

// laneNames are the mnemonic names of the first four lanes.
var laneNames = []string{"x", "y", "z", "w"}

// Generator renders the generated svec source files.
type Generator struct {
	OutputDir string
	Package   string
	MaxWidth  int
}

// Files lists the generated file names in the order Run writes them.
func (g *Generator) Files() []string {
	return []string{"lanes_gen.go", "swizzles_gen.go"}
}

// Run renders every file and writes it to OutputDir, returning the paths
// written.
func (g *Generator) Run() ([]string, error) {
	var written []string
	for _, name := range g.Files() {
		src, err := g.Render(name)
		if err != nil {
			return written, err
		}
		path := filepath.Join(g.OutputDir, name)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Render returns the formatted contents of one generated file.
func (g *Generator) Render(name string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by swizzlegen. DO NOT EDIT.\n\npackage %s\n\n", g.Package)

	switch name {
	case "lanes_gen.go":
		g.emitLanes(&buf)
	case "swizzles_gen.go":
		g.emitSwizzles(&buf)
	default:
		return nil, fmt.Errorf("unknown generated file %q", name)
	}

	out, err := imports.Process(name, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return out, nil
}

func (g *Generator) emitLanes(buf *bytes.Buffer) {
	for _, recv := range []string{"v Vec[T]", "s Swizzle[T]"} {
		self := recv[:1]
		for i, name := range laneNames {
			fmt.Fprintf(buf, "func (%s) %s() T { return %s.Lane(%d) }\n", recv, strings.ToUpper(name), self, i)
		}
		for _, i := range lo.Range(g.MaxWidth) {
			fmt.Fprintf(buf, "func (%s) S%d() T { return %s.Lane(%d) }\n", recv, i, self, i)
		}
		buf.WriteString("\n")
	}
}

func (g *Generator) emitSwizzles(buf *bytes.Buffer) {
	for length := 2; length <= len(laneNames); length++ {
		for _, tuple := range Tuples(length) {
			args := lo.Map(tuple, func(i int, _ int) string { return fmt.Sprint(i) })
			fmt.Fprintf(buf, "func (v *Vec[T]) %s() Swizzle[T] { return v.Swizzle(%s) }\n",
				SwizzleName(tuple), strings.Join(args, ", "))
		}
		buf.WriteString("\n")
	}
}

// SwizzleName returns the method name of an xyzw index tuple, e.g. WZYX.
func SwizzleName(tuple []int) string {
	return strings.ToUpper(strings.Join(lo.Map(tuple, func(i int, _ int) string {
		return laneNames[i]
	}), ""))
}

// Tuples returns every index tuple of the given length over the four named
// lanes, in xyzw-lexicographic order.
func Tuples(length int) [][]int {
	if length == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, prefix := range Tuples(length - 1) {
		for i := range laneNames {
			t := make([]int, len(prefix), len(prefix)+1)
			copy(t, prefix)
			out = append(out, append(t, i))
		}
	}
	return out
}
