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

// Package geom provides geometric functions over svec vectors: dot and cross
// products, lengths, distances and normalization.
package geom

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-shortvec/svec"
)

// Dot computes the dot product (inner product) of two vectors.
// The result is the sum of element-wise products: Σ(a[i] * b[i]).
//
// Example:
//
//	a := svec.MustOf[float32](1, 2, 3)
//	b := svec.MustOf[float32](4, 5, 6)
//	result := geom.Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func Dot[T svec.Floats](a, b svec.Vec[T]) T {
	return svec.ReduceSum(svec.Mul(a, b))
}

// Cross computes the cross product of two 3- or 4-lane vectors. For 4-lane
// inputs the w lane is ignored and the result's w lane is zero.
func Cross[T svec.Floats](a, b svec.Vec[T]) svec.Vec[T] {
	n := a.NumLanes()
	if n != b.NumLanes() {
		panic(fmt.Errorf("%w: %d vs %d lanes", svec.ErrWidthMismatch, n, b.NumLanes()))
	}
	if n != 3 && n != 4 {
		panic(fmt.Errorf("%w: cross product of %d lanes", svec.ErrWidth, n))
	}
	r := svec.Zero[T](n)
	r.Set(0, a.Y()*b.Z()-a.Z()*b.Y())
	r.Set(1, a.Z()*b.X()-a.X()*b.Z())
	r.Set(2, a.X()*b.Y()-a.Y()*b.X())
	return r
}

// Length returns the Euclidean norm of v.
func Length[T svec.Floats](v svec.Vec[T]) T {
	return T(math.Sqrt(float64(Dot(v, v))))
}

// Distance returns the Euclidean distance between a and b.
func Distance[T svec.Floats](a, b svec.Vec[T]) T {
	return Length(svec.Sub(a, b))
}

// Normalize scales v to unit length. The zero vector is returned unchanged.
func Normalize[T svec.Floats](v svec.Vec[T]) svec.Vec[T] {
	l := Length(v)
	if l == 0 {
		return v
	}
	return svec.DivScalar(v, l)
}
