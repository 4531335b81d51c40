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

package svec

import (
	"os"
	"strconv"
)

// DispatchLevel describes the widest vector instruction set the CPU offers.
// Vec arithmetic is portable Go either way; the level is reported so callers
// can log where their numbers were produced.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD extensions were detected or SVEC_NO_SIMD is set.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	hasFMA       bool
)

// CurrentLevel returns the detected instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the detected instruction set,
// for example "avx2", "neon" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HasHardwareFMA reports whether the CPU has a fused multiply-add instruction.
// FMA is correctly rounded either way; without hardware support math.FMA
// takes a slower software path.
func HasHardwareFMA() bool {
	return hasFMA
}

// NoSimdEnv checks if the SVEC_NO_SIMD environment variable is set.
// When set, detection is skipped and the scalar level is reported.
func NoSimdEnv() bool {
	val := os.Getenv("SVEC_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	hasFMA = false
}
