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

// Command swizzlegen generates the named lane accessors and xyzw swizzle
// methods of package svec.
//
// Usage:
//
//	swizzlegen -output ./svec -pkg svec
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/swizzlegen -output . -pkg svec
//
// Two files are written:
//  1. lanes_gen.go with X, Y, Z, W and S0..S<max-width-1> on Vec and Swizzle
//  2. swizzles_gen.go with every xyzw swizzle of 2 to 4 lanes on *Vec
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputDir = flag.String("output", ".", "Output directory (default: current directory)")
	pkgName   = flag.String("pkg", "svec", "Output package name")
	maxWidth  = flag.Int("max-width", 16, "Number of numbered lane accessors (S0..S<max-width-1>)")
)

func main() {
	flag.Parse()

	if *maxWidth < 4 {
		fmt.Fprintf(os.Stderr, "Error: -max-width must be at least 4\n")
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Package:   *pkgName,
		MaxWidth:  *maxWidth,
	}

	written, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, f := range written {
		fmt.Printf("Successfully generated %s\n", f)
	}
}
