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

package math

import (
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-shortvec/svec"
)

func map1[T svec.Floats](v svec.Vec[T], f func(float64) float64) svec.Vec[T] {
	r := v
	for i := range v.NumLanes() {
		r.Set(i, T(f(float64(v.Lane(i)))))
	}
	return r
}

func map2[T svec.Floats](a, b svec.Vec[T], f func(x, y float64) float64) svec.Vec[T] {
	checkWidths(a.NumLanes(), b.NumLanes())
	r := a
	for i := range a.NumLanes() {
		r.Set(i, T(f(float64(a.Lane(i)), float64(b.Lane(i)))))
	}
	return r
}

func checkWidths(a, b int) {
	if a != b {
		panic(fmt.Errorf("%w: %d vs %d lanes", svec.ErrWidthMismatch, a, b))
	}
}

// Sin computes sin(x) for each lane.
func Sin[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Sin) }

// Cos computes cos(x) for each lane.
func Cos[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Cos) }

// Tan computes tan(x) for each lane.
func Tan[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Tan) }

// Asin computes asin(x) for each lane.
func Asin[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Asin) }

// Acos computes acos(x) for each lane.
func Acos[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Acos) }

// Atan computes atan(x) for each lane.
func Atan[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Atan) }

// Atan2 computes atan2(y, x) for each lane.
func Atan2[T svec.Floats](y, x svec.Vec[T]) svec.Vec[T] { return map2(y, x, stdmath.Atan2) }

// SinCos computes sin(x) and cos(x) for each lane.
func SinCos[T svec.Floats](v svec.Vec[T]) (sin, cos svec.Vec[T]) {
	sin, cos = v, v
	for i := range v.NumLanes() {
		s, c := stdmath.Sincos(float64(v.Lane(i)))
		sin.Set(i, T(s))
		cos.Set(i, T(c))
	}
	return sin, cos
}

// Sinh computes sinh(x) for each lane.
func Sinh[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Sinh) }

// Cosh computes cosh(x) for each lane.
func Cosh[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Cosh) }

// Tanh computes tanh(x) for each lane.
func Tanh[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Tanh) }

// Asinh computes asinh(x) for each lane.
func Asinh[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Asinh) }

// Acosh computes acosh(x) for each lane.
func Acosh[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Acosh) }

// Atanh computes atanh(x) for each lane.
func Atanh[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Atanh) }

// Exp computes e^x for each lane.
func Exp[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Exp) }

// Exp2 computes 2^x for each lane.
func Exp2[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Exp2) }

// Exp10 computes 10^x for each lane.
func Exp10[T svec.Floats](v svec.Vec[T]) svec.Vec[T] {
	return map1(v, func(x float64) float64 { return stdmath.Pow(10, x) })
}

// Expm1 computes e^x - 1 for each lane, accurately near zero.
func Expm1[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Expm1) }

// Log computes the natural logarithm of each lane.
func Log[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Log) }

// Log2 computes log₂(x) for each lane.
func Log2[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Log2) }

// Log10 computes log₁₀(x) for each lane.
func Log10[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Log10) }

// Log1p computes ln(1 + x) for each lane, accurately near zero.
func Log1p[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Log1p) }

// Pow computes base^exp element-wise.
func Pow[T svec.Floats](base, exp svec.Vec[T]) svec.Vec[T] { return map2(base, exp, stdmath.Pow) }

// Sqrt computes the square root of each lane.
func Sqrt[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Sqrt) }

// Rsqrt computes 1/sqrt(x) for each lane.
func Rsqrt[T svec.Floats](v svec.Vec[T]) svec.Vec[T] {
	return map1(v, func(x float64) float64 { return 1 / stdmath.Sqrt(x) })
}

// Cbrt computes the cube root of each lane.
func Cbrt[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Cbrt) }

// Erf computes the error function of each lane.
func Erf[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Erf) }

// Erfc computes the complementary error function 1 - erf(x) of each lane.
func Erfc[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Erfc) }

// Hypot computes sqrt(x² + y²) element-wise without undue overflow.
func Hypot[T svec.Floats](x, y svec.Vec[T]) svec.Vec[T] { return map2(x, y, stdmath.Hypot) }

// Floor rounds each lane toward negative infinity.
func Floor[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Floor) }

// Ceil rounds each lane toward positive infinity.
func Ceil[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Ceil) }

// Round rounds each lane to the nearest integer, halves away from zero.
func Round[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Round) }

// Trunc rounds each lane toward zero.
func Trunc[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Trunc) }

// Fabs computes |x| for each lane.
func Fabs[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, stdmath.Abs) }

// Copysign returns lanes with the magnitude of x and the sign of y.
func Copysign[T svec.Floats](x, y svec.Vec[T]) svec.Vec[T] { return map2(x, y, stdmath.Copysign) }

// Fmod computes the floating-point remainder of x/y, with the sign of x.
func Fmod[T svec.Floats](x, y svec.Vec[T]) svec.Vec[T] { return map2(x, y, stdmath.Mod) }

// Fdim computes max(x-y, 0) element-wise.
func Fdim[T svec.Floats](x, y svec.Vec[T]) svec.Vec[T] { return map2(x, y, stdmath.Dim) }

// Fmin returns the element-wise minimum, preferring the non-NaN operand.
func Fmin[T svec.Floats](x, y svec.Vec[T]) svec.Vec[T] { return map2(x, y, fmin) }

// Fmax returns the element-wise maximum, preferring the non-NaN operand.
func Fmax[T svec.Floats](x, y svec.Vec[T]) svec.Vec[T] { return map2(x, y, fmax) }

func fmin(x, y float64) float64 {
	switch {
	case stdmath.IsNaN(x):
		return y
	case stdmath.IsNaN(y):
		return x
	}
	return stdmath.Min(x, y)
}

func fmax(x, y float64) float64 {
	switch {
	case stdmath.IsNaN(x):
		return y
	case stdmath.IsNaN(y):
		return x
	}
	return stdmath.Max(x, y)
}

// FMA performs fused multiply-add: a*b + c with a single rounding.
func FMA[T svec.Floats](a, b, c svec.Vec[T]) svec.Vec[T] { return svec.FMA(a, b, c) }
