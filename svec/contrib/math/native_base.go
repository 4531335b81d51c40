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
	stdmath "math"

	"github.com/ajroetker/go-shortvec/svec"
)

// Constants for the native functions
const (
	piOver2 = 1.5707963267948966
	piOver4 = 0.7853981633974483

	expInvLn2 = 1.4426950408889634
	expLn2Hi  = 0.6931471803691238
	expLn2Lo  = 1.9082149292705877e-10

	expOverflow  = 709.782712893384
	expUnderflow = -708.3964185322641
)

// rangeReduce reduces x to [-π/4, π/4] and returns the reduced value and the
// quadrant (0-3).
func rangeReduce(x float64) (reduced float64, quadrant int) {
	// Reduce to [-π, π]
	if x > stdmath.Pi || x < -stdmath.Pi {
		k := stdmath.Round(x / (2 * stdmath.Pi))
		x -= k * 2 * stdmath.Pi
	}

	if x >= 0 {
		switch {
		case x <= piOver4:
			return x, 0
		case x <= 3*piOver4:
			return piOver2 - x, 1
		default:
			return x - stdmath.Pi, 2
		}
	}
	switch {
	case x >= -piOver4:
		return x, 0
	case x >= -3*piOver4:
		return -piOver2 - x, 3
	default:
		return x + stdmath.Pi, 2
	}
}

// sinPoly and cosPoly are Taylor polynomials valid on [-π/4, π/4].
func sinPoly(r float64) float64 {
	r2 := r * r
	return r * (1 + r2*(-0.16666666666666666+r2*(0.008333333333333333+r2*(-0.0001984126984126984+r2*2.7557319223985893e-06))))
}

func cosPoly(r float64) float64 {
	r2 := r * r
	return 1 + r2*(-0.5+r2*(0.041666666666666664+r2*(-0.001388888888888889+r2*2.48015873015873e-05)))
}

func nativeSin(x float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return stdmath.NaN()
	}
	r, q := rangeReduce(x)
	switch q {
	case 0:
		return sinPoly(r)
	case 1:
		return cosPoly(r)
	case 2:
		return -sinPoly(r)
	default:
		return -cosPoly(r)
	}
}

func nativeCos(x float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return stdmath.NaN()
	}
	r, q := rangeReduce(x)
	switch q {
	case 0:
		return cosPoly(r)
	case 1:
		return sinPoly(r)
	case 2:
		return -cosPoly(r)
	default:
		return -sinPoly(r)
	}
}

func nativeExp(x float64) float64 {
	switch {
	case stdmath.IsNaN(x):
		return x
	case x > expOverflow:
		return stdmath.Inf(1)
	case x < expUnderflow:
		return 0
	}

	// x = k*ln(2) + r, |r| <= ln(2)/2
	k := stdmath.Round(x * expInvLn2)
	r := x - k*expLn2Hi - k*expLn2Lo

	// e^r ≈ 1 + r + r²/2! + ... + r⁷/7!
	p := 1 + r*(1+r*(0.5+r*(1.0/6+r*(1.0/24+r*(1.0/120+r*(1.0/720+r/5040))))))
	return stdmath.Ldexp(p, int(k))
}

// NativeSin computes sin(x) for each lane with a polynomial after reduction
// to [-π/4, π/4]. Accuracy degrades for |x| far beyond 2π.
func NativeSin[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, nativeSin) }

// NativeCos computes cos(x) for each lane; see NativeSin.
func NativeCos[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, nativeCos) }

// NativeExp computes e^x for each lane with a degree-7 polynomial after
// reduction by powers of two.
func NativeExp[T svec.Floats](v svec.Vec[T]) svec.Vec[T] { return map1(v, nativeExp) }
