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

import "math"

// This file provides the elementwise arithmetic operations. Binary operations
// require operands of the same width and panic with ErrWidthMismatch
// otherwise; the *Scalar forms broadcast a single value to every lane.

func binary[T Lanes](a, b Vec[T], op func(x, y T) T) Vec[T] {
	checkSameWidth(a.n, b.n)
	r := Vec[T]{n: a.n}
	for i := range a.n {
		r.data[i] = op(a.data[i], b.data[i])
	}
	return r
}

func unary[T Lanes](v Vec[T], op func(x T) T) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = op(v.data[i])
	}
	return r
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
// Integer division by zero panics, as it does for Go scalars.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x / y })
}

// Mod computes the element-wise remainder of integer division.
func Mod[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x % y })
}

// AddScalar adds s to every lane.
func AddScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return Add(v, Splat(v.n, s))
}

// SubScalar subtracts s from every lane.
func SubScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return Sub(v, Splat(v.n, s))
}

// MulScalar multiplies every lane by s.
func MulScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return Mul(v, Splat(v.n, s))
}

// DivScalar divides every lane by s.
func DivScalar[T Lanes](v Vec[T], s T) Vec[T] {
	return Div(v, Splat(v.n, s))
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return -x })
}

// Abs computes absolute value. Unsigned lanes are returned unchanged.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return max(x, y) })
}

// Clamp limits every lane to [lo, hi].
func Clamp[T Lanes](v Vec[T], lo, hi T) Vec[T] {
	return unary(v, func(x T) T { return min(max(x, lo), hi) })
}

// FMA performs fused multiply-add: a*b + c with a single rounding.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	checkSameWidth(a.n, b.n)
	checkSameWidth(a.n, c.n)
	r := Vec[T]{n: a.n}
	for i := range a.n {
		r.data[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return r
}

// MulAdd is an alias for FMA with the common a.MulAdd(b, c) argument order.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = min(m, v.data[i])
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = max(m, v.data[i])
	}
	return m
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x & y })
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x | y })
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x ^ y })
}

// Not performs element-wise bitwise NOT (ones complement).
func Not[T Integers](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return ^x })
}

// ShiftLeft performs element-wise left shift by a constant number of bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	return unary(v, func(x T) T { return x << bits })
}

// ShiftRight performs element-wise right shift by a constant number of bits.
// For signed integers, this is arithmetic shift (sign-extended).
// For unsigned integers, this is logical shift (zero-filled).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	return unary(v, func(x T) T { return x >> bits })
}
