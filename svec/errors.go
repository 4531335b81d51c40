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
	"errors"
	"fmt"
)

var (
	// ErrWidth is returned when a lane count is not one of 1, 2, 3, 4, 8, 16.
	ErrWidth = errors.New("svec: unsupported vector width")

	// ErrLaneCount is returned when the parts supplied to a constructor do
	// not add up to the requested width.
	ErrLaneCount = errors.New("svec: lane count mismatch")

	// ErrLaneRange reports access to a lane past the end of a vector.
	ErrLaneRange = errors.New("svec: lane index out of range")

	// ErrWidthMismatch reports an elementwise operation or assignment on
	// operands of different widths.
	ErrWidthMismatch = errors.New("svec: operand width mismatch")

	// ErrOddWidth reports Lo, Hi, Even or Odd on a vector whose width cannot
	// be halved.
	ErrOddWidth = errors.New("svec: width cannot be halved")
)

// Shape errors on arithmetic and lane access are programming errors, so they
// panic with a wrapped sentinel instead of returning.

func checkLane(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: lane %d of %d", ErrLaneRange, i, n))
	}
}

func checkSameWidth(a, b int) {
	if a != b {
		panic(fmt.Errorf("%w: %d vs %d lanes", ErrWidthMismatch, a, b))
	}
}

func checkHalvable(n int) {
	if n < 2 || n%2 != 0 {
		panic(fmt.Errorf("%w: %d lanes", ErrOddWidth, n))
	}
}

func mustWidth(n int) {
	if !ValidWidth(n) {
		panic(fmt.Errorf("%w: %d", ErrWidth, n))
	}
}
