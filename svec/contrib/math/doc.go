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

// Package math provides per-lane math functions for svec vectors.
//
// Every function applies its scalar counterpart independently to each lane
// and returns a new vector of the same width; there is no cross-lane
// interaction. Binary functions require operands of equal width.
//
// # Precise Functions
//
// Computed in float64 with the standard library and rounded once to the lane
// type:
//
//   - Trigonometric: Sin, Cos, Tan, Asin, Acos, Atan, Atan2, SinCos
//   - Hyperbolic: Sinh, Cosh, Tanh, Asinh, Acosh, Atanh
//   - Exponential and logarithmic: Exp, Exp2, Exp10, Expm1, Log, Log2,
//     Log10, Log1p, Pow
//   - Roots: Sqrt, Rsqrt, Cbrt, Hypot
//   - Error function: Erf, Erfc
//   - Rounding and sign: Floor, Ceil, Round, Trunc, Fabs, Copysign
//   - Arithmetic: Fmod, Fdim, Fmin, Fmax, FMA
//
// # Common Functions
//
// Degrees, Radians, Mix, Step, Smoothstep, Sign.
//
// # Native Functions
//
// NativeSin, NativeCos and NativeExp trade accuracy (about 1e-6 relative) for
// a short polynomial after range reduction.
package math
